// Package service is the stateless façade the HTTP layer talks to. It
// forwards calls to the repositories and layers a pass-through TTL cache
// over point reads; list reads always hit the backend.
package service

import (
	"context"

	"go-salesforce-cart/cache"
	"go-salesforce-cart/models"
	"go-salesforce-cart/repository"
)

// SalesforceService bundles the three entity repositories. It is constructed
// once in main and injected into the controllers.
type SalesforceService struct {
	accounts *repository.AccountRepository
	contacts *repository.ContactRepository
	carts    *repository.CartRepository
	cache    *cache.Cache
}

// New builds the service. cache may be nil to disable caching.
func New(accounts *repository.AccountRepository, contacts *repository.ContactRepository, carts *repository.CartRepository, c *cache.Cache) *SalesforceService {
	return &SalesforceService{accounts: accounts, contacts: contacts, carts: carts, cache: c}
}

// Account operations

func (s *SalesforceService) CreateAccount(ctx context.Context, in models.CreateAccountInput) (*models.Account, error) {
	return s.accounts.Create(ctx, in)
}

func (s *SalesforceService) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	var cached models.Account
	if s.cache.Get(ctx, accountKey(id), &cached) {
		return &cached, nil
	}
	account, err := s.accounts.FindByID(ctx, id)
	if err == nil && account != nil {
		s.cache.Set(ctx, accountKey(id), account)
	}
	return account, err
}

func (s *SalesforceService) ListAccounts(ctx context.Context, limit, offset int64) ([]models.Account, error) {
	return s.accounts.FindAll(ctx, limit, offset)
}

func (s *SalesforceService) UpdateAccount(ctx context.Context, id string, in models.UpdateAccountInput) (*models.Account, error) {
	s.cache.Del(ctx, accountKey(id))
	return s.accounts.Update(ctx, id, in)
}

func (s *SalesforceService) DeleteAccount(ctx context.Context, id string) (bool, error) {
	s.cache.Del(ctx, accountKey(id))
	return s.accounts.Delete(ctx, id)
}

// Contact operations

func (s *SalesforceService) CreateContact(ctx context.Context, in models.CreateContactInput) (*models.Contact, error) {
	return s.contacts.Create(ctx, in)
}

func (s *SalesforceService) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	var cached models.Contact
	if s.cache.Get(ctx, contactKey(id), &cached) {
		return &cached, nil
	}
	contact, err := s.contacts.FindByID(ctx, id)
	if err == nil && contact != nil {
		s.cache.Set(ctx, contactKey(id), contact)
	}
	return contact, err
}

func (s *SalesforceService) ListContacts(ctx context.Context, limit, offset int64) ([]models.Contact, error) {
	return s.contacts.FindAll(ctx, limit, offset)
}

func (s *SalesforceService) GetContactsByAccount(ctx context.Context, accountID string) ([]models.Contact, error) {
	return s.contacts.FindByAccountID(ctx, accountID)
}

func (s *SalesforceService) UpdateContact(ctx context.Context, id string, in models.UpdateContactInput) (*models.Contact, error) {
	s.cache.Del(ctx, contactKey(id))
	return s.contacts.Update(ctx, id, in)
}

func (s *SalesforceService) DeleteContact(ctx context.Context, id string) (bool, error) {
	s.cache.Del(ctx, contactKey(id))
	return s.contacts.Delete(ctx, id)
}

// Cart operations

func (s *SalesforceService) CreateCart(ctx context.Context, in models.CreateCartInput) (*models.Cart, error) {
	return s.carts.Create(ctx, in)
}

func (s *SalesforceService) GetCart(ctx context.Context, id string) (*models.Cart, error) {
	var cached models.Cart
	if s.cache.Get(ctx, cartKey(id), &cached) {
		return &cached, nil
	}
	cart, err := s.carts.FindByID(ctx, id)
	if err == nil && cart != nil {
		s.cache.Set(ctx, cartKey(id), cart)
	}
	return cart, err
}

func (s *SalesforceService) ListCarts(ctx context.Context, limit, offset int64) ([]models.Cart, error) {
	return s.carts.FindAll(ctx, limit, offset)
}

func (s *SalesforceService) GetCartsByAccount(ctx context.Context, accountID string) ([]models.Cart, error) {
	return s.carts.FindByAccountID(ctx, accountID)
}

func (s *SalesforceService) AddToCart(ctx context.Context, cartID string, in models.AddItemInput) (*models.Cart, error) {
	s.cache.Del(ctx, cartKey(cartID))
	return s.carts.AddItem(ctx, cartID, in)
}

func (s *SalesforceService) RemoveFromCart(ctx context.Context, cartID string, in models.RemoveItemInput) (*models.Cart, error) {
	s.cache.Del(ctx, cartKey(cartID))
	return s.carts.RemoveItem(ctx, cartID, in)
}

func (s *SalesforceService) DeleteCart(ctx context.Context, id string) (bool, error) {
	s.cache.Del(ctx, cartKey(id))
	return s.carts.Delete(ctx, id)
}

func accountKey(id string) string { return "account:" + id }
func contactKey(id string) string { return "contact:" + id }
func cartKey(id string) string    { return "cart:" + id }
