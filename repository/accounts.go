// Package repository implements per-entity persistence over storage.Store.
// Absence is signaled with nil/false results, never errors; only unexpected
// backend failures propagate as errors.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"go-salesforce-cart/models"
	"go-salesforce-cart/storage"
)

const accountsCollection = "salesforce_accounts"

// AccountRepository persists accounts.
type AccountRepository struct {
	col storage.Collection
}

// NewAccountRepository builds the repository over the given backend.
func NewAccountRepository(store storage.Store) *AccountRepository {
	return &AccountRepository{col: store.Collection(accountsCollection)}
}

// Create assigns a fresh id and timestamps and stores the account.
func (r *AccountRepository) Create(ctx context.Context, in models.CreateAccountInput) (*models.Account, error) {
	now := time.Now().UTC()
	account := &models.Account{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Industry:       in.Industry,
		AccountNumber:  in.AccountNumber,
		Website:        in.Website,
		Phone:          in.Phone,
		BillingAddress: in.BillingAddress,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := r.col.InsertOne(ctx, account.ID, account); err != nil {
		return nil, err
	}
	return account, nil
}

// FindByID returns nil when no account has the given id.
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	err := r.col.FindByID(ctx, id, &account)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// FindAll returns up to limit accounts starting at offset.
func (r *AccountRepository) FindAll(ctx context.Context, limit, offset int64) ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	if err := r.col.Find(ctx, nil, limit, offset, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Update merges the provided fields over the existing record and bumps
// UpdatedAt. Returns nil when the account does not exist.
func (r *AccountRepository) Update(ctx context.Context, id string, in models.UpdateAccountInput) (*models.Account, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.Industry != nil {
		existing.Industry = *in.Industry
	}
	if in.AccountNumber != nil {
		existing.AccountNumber = *in.AccountNumber
	}
	if in.Website != nil {
		existing.Website = *in.Website
	}
	if in.Phone != nil {
		existing.Phone = *in.Phone
	}
	if in.BillingAddress != nil {
		existing.BillingAddress = in.BillingAddress
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

// Delete removes the account and reports whether it existed.
func (r *AccountRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.DeleteByID(ctx, id)
}
