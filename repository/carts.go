package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"go-salesforce-cart/models"
	"go-salesforce-cart/storage"
)

const cartsCollection = "salesforce_carts"

// CartRepository persists carts and applies the aggregate's item operations.
//
// AddItem and RemoveItem are read-modify-write cycles with no transaction
// around them: two concurrent mutations of the same cart both read the same
// prior state and the second write wins. That lost-update hazard is part of
// the documented contract and is deliberately not papered over here.
type CartRepository struct {
	col storage.Collection
}

// NewCartRepository builds the repository over the given backend.
func NewCartRepository(store storage.Store) *CartRepository {
	return &CartRepository{col: store.Collection(cartsCollection)}
}

// Create stores a new empty cart.
func (r *CartRepository) Create(ctx context.Context, in models.CreateCartInput) (*models.Cart, error) {
	now := time.Now().UTC()
	cart := &models.Cart{
		ID:        uuid.NewString(),
		AccountID: in.AccountID,
		Items:     make([]models.CartItem, 0),
		Subtotal:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.col.InsertOne(ctx, cart.ID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// FindByID returns nil when no cart has the given id.
func (r *CartRepository) FindByID(ctx context.Context, id string) (*models.Cart, error) {
	var cart models.Cart
	err := r.col.FindByID(ctx, id, &cart)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// FindAll returns up to limit carts starting at offset.
func (r *CartRepository) FindAll(ctx context.Context, limit, offset int64) ([]models.Cart, error) {
	carts := make([]models.Cart, 0)
	if err := r.col.Find(ctx, nil, limit, offset, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

// FindByAccountID returns every cart referencing the account.
func (r *CartRepository) FindByAccountID(ctx context.Context, accountID string) ([]models.Cart, error) {
	carts := make([]models.Cart, 0)
	filter := map[string]interface{}{"accountId": accountID}
	if err := r.col.Find(ctx, filter, 0, 0, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

// AddItem merges the item into the cart and persists the updated items,
// subtotal and UpdatedAt. Returns nil when the cart does not exist; a missing
// cart is the only failure short of a backend error.
func (r *CartRepository) AddItem(ctx context.Context, cartID string, in models.AddItemInput) (*models.Cart, error) {
	cart, err := r.FindByID(ctx, cartID)
	if err != nil || cart == nil {
		return nil, err
	}
	cart.ApplyAddItem(in)
	if err := r.persist(ctx, cart); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops the matching line and persists the cart. Removing an
// unknown productId is a silent no-op that still re-persists the cart and
// bumps UpdatedAt. Returns nil when the cart does not exist.
func (r *CartRepository) RemoveItem(ctx context.Context, cartID string, in models.RemoveItemInput) (*models.Cart, error) {
	cart, err := r.FindByID(ctx, cartID)
	if err != nil || cart == nil {
		return nil, err
	}
	cart.ApplyRemoveItem(in.ProductID)
	if err := r.persist(ctx, cart); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return cart, nil
}

// Delete removes the cart and reports whether it existed.
func (r *CartRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.DeleteByID(ctx, id)
}

func (r *CartRepository) persist(ctx context.Context, cart *models.Cart) error {
	return r.col.ReplaceByID(ctx, cart.ID, cart)
}
