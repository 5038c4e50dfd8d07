// ABOUTME: User model for the care tracker.
// ABOUTME: Emails are normalized to lower case; password hashes never leave storage.
package models

import "time"

// User is an account in the local store. The password hash is deliberately
// not part of this struct; it stays inside the storage layer.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
