package domain

import "time"

// Admin models the single authenticated principal type in the system.
// PasswordHash is write-only from the API's perspective and must never be
// serialized back to a caller.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
