package models

import "time"

// Base contains common columns for all tables. IDs are auto-incrementing
// integers; GORM sets CreatedAt on insert and refreshes UpdatedAt on
// every save.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
