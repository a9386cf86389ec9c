package models

import "time"

// User is an API user created through registration. The password is stored
// bcrypt-hashed; handlers must never encode a User into a response directly,
// they return the id/email/name subset instead.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"password"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
