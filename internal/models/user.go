package models

import "time"

type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	UserName     *string    `json:"user_name"`
	PasswordHash string     `json:"-"`
	FirstName    *string    `json:"first_name"`
	Name         *string    `json:"name"`
	Birth        *time.Time `json:"birth"`
	Height       *float64   `json:"height"`
	Weight       *float64   `json:"weight"`
	Sexe         *string    `json:"sexe"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
