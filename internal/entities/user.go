package entities

import "time"

// User represents a user row in the database
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Name      *string   `json:"name"`
	Bio       *string   `json:"bio"`
	Location  *string   `json:"location"`
	Website   *string   `json:"website"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
