package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-salesforce-cart/models"
	"go-salesforce-cart/storage"
)

const usersCollection = "users"

// UserRepository persists API users for the auth endpoints.
type UserRepository struct {
	col storage.Collection
}

// NewUserRepository builds the repository over the given backend.
func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{col: store.Collection(usersCollection)}
}

// Create stores a user. The password must already be hashed by the caller.
func (r *UserRepository) Create(ctx context.Context, email, hashedPassword, name string) (*models.User, error) {
	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  hashedPassword,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.col.InsertOne(ctx, user.ID, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByEmail returns nil when no user has the given email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users := make([]models.User, 0)
	filter := map[string]interface{}{"email": email}
	if err := r.col.Find(ctx, filter, 1, 0, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}
