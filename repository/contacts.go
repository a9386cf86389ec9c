package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"go-salesforce-cart/models"
	"go-salesforce-cart/storage"
)

const contactsCollection = "salesforce_contacts"

// ContactRepository persists contacts.
type ContactRepository struct {
	col storage.Collection
}

// NewContactRepository builds the repository over the given backend.
func NewContactRepository(store storage.Store) *ContactRepository {
	return &ContactRepository{col: store.Collection(contactsCollection)}
}

// Create assigns a fresh id and timestamps and stores the contact. The
// accountId is not checked against existing accounts.
func (r *ContactRepository) Create(ctx context.Context, in models.CreateContactInput) (*models.Contact, error) {
	now := time.Now().UTC()
	contact := &models.Contact{
		ID:         uuid.NewString(),
		AccountID:  in.AccountID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		Title:      in.Title,
		Department: in.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.col.InsertOne(ctx, contact.ID, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// FindByID returns nil when no contact has the given id.
func (r *ContactRepository) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	var contact models.Contact
	err := r.col.FindByID(ctx, id, &contact)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// FindAll returns up to limit contacts starting at offset.
func (r *ContactRepository) FindAll(ctx context.Context, limit, offset int64) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)
	if err := r.col.Find(ctx, nil, limit, offset, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// FindByAccountID returns every contact referencing the account.
func (r *ContactRepository) FindByAccountID(ctx context.Context, accountID string) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)
	filter := map[string]interface{}{"accountId": accountID}
	if err := r.col.Find(ctx, filter, 0, 0, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// Update merges the provided fields over the existing record and bumps
// UpdatedAt. Returns nil when the contact does not exist.
func (r *ContactRepository) Update(ctx context.Context, id string, in models.UpdateContactInput) (*models.Contact, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if in.AccountID != nil {
		existing.AccountID = *in.AccountID
	}
	if in.FirstName != nil {
		existing.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		existing.LastName = *in.LastName
	}
	if in.Email != nil {
		existing.Email = *in.Email
	}
	if in.Phone != nil {
		existing.Phone = *in.Phone
	}
	if in.Title != nil {
		existing.Title = *in.Title
	}
	if in.Department != nil {
		existing.Department = *in.Department
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := r.col.ReplaceByID(ctx, id, existing); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return existing, nil
}

// Delete removes the contact and reports whether it existed.
func (r *ContactRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.DeleteByID(ctx, id)
}
