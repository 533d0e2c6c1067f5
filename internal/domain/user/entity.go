package user

import "time"

// User is an account keyed by its login identifier (email or phone)
type User struct {
	ID         int64     `json:"id" db:"id"`
	Identifier string    `json:"identifier" db:"identifier"`
	Channel    string    `json:"channel" db:"channel"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
