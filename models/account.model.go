package models

import "time"

// Address is a postal address attached to an account.
type Address struct {
	Street     string `bson:"street,omitempty" json:"street,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

// Account is a business account record.
type Account struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Industry       string    `bson:"industry,omitempty" json:"industry,omitempty"`
	AccountNumber  string    `bson:"accountNumber,omitempty" json:"accountNumber,omitempty"`
	Website        string    `bson:"website,omitempty" json:"website,omitempty"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	BillingAddress *Address  `bson:"billingAddress,omitempty" json:"billingAddress,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateAccountInput carries the fields accepted when creating an account.
type CreateAccountInput struct {
	Name           string   `json:"name"`
	Industry       string   `json:"industry,omitempty"`
	AccountNumber  string   `json:"accountNumber,omitempty"`
	Website        string   `json:"website,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	BillingAddress *Address `json:"billingAddress,omitempty"`
}

// UpdateAccountInput carries a partial update. Nil fields are left untouched.
type UpdateAccountInput struct {
	Name           *string  `json:"name,omitempty"`
	Industry       *string  `json:"industry,omitempty"`
	AccountNumber  *string  `json:"accountNumber,omitempty"`
	Website        *string  `json:"website,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	BillingAddress *Address `json:"billingAddress,omitempty"`
}
