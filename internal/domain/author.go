package domain

import "time"

// Author is the user identity a post belongs to. It is attached at
// creation from the caller's authenticated session and never reassigned.
type Author struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
