package models

import "time"

// Contact is a person optionally attached to an account. The accountId is a
// soft reference: deleting an account leaves its contacts in place.
type Contact struct {
	ID         string    `bson:"id" json:"id"`
	AccountID  string    `bson:"accountId,omitempty" json:"accountId,omitempty"`
	FirstName  string    `bson:"firstName" json:"firstName"`
	LastName   string    `bson:"lastName" json:"lastName"`
	Email      string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Title      string    `bson:"title,omitempty" json:"title,omitempty"`
	Department string    `bson:"department,omitempty" json:"department,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateContactInput carries the fields accepted when creating a contact.
type CreateContactInput struct {
	AccountID  string `json:"accountId,omitempty"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Title      string `json:"title,omitempty"`
	Department string `json:"department,omitempty"`
}

// UpdateContactInput carries a partial update. Nil fields are left untouched.
type UpdateContactInput struct {
	AccountID  *string `json:"accountId,omitempty"`
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Title      *string `json:"title,omitempty"`
	Department *string `json:"department,omitempty"`
}
