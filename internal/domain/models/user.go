// internal/domain/models/user.go
package models

import "time"

// Role values a user account can hold. Every first-time sign-in starts as
// RolePending until an admin promotes the account.
const (
	RolePending = "pending"
	RoleUser    = "user"
	RoleAdmin   = "admin"
)

// User is an account record in the users collection.
//
// The _id is the opaque token supplied by the identity provider (Google
// subject or a UUIDv5 from the dev-login path), not a Mongo ObjectID, so a
// re-created record for the same external identity keeps the same key. Email
// is the natural lookup key and carries a unique index.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role" json:"role"` // pending | user | admin
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
