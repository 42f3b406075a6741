package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is one workout on one date. The UUID is the only identifier
// ever exposed to clients; the serial ID stays internal.
type Session struct {
	ID        int64     `json:"-"`
	UUID      uuid.UUID `json:"uuid"`
	UserID    int64     `json:"-"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
