package model

import "time"

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // The bcrypt hash is never exposed in JSON responses.
	CreatedAt time.Time `json:"created_at"`
}
