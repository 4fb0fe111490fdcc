package models

import "time"

// Client profiles are maintained by the client registry; scheduling only
// reads them.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:150;not null" json:"name"`
	Email *string `gorm:"size:150" json:"email"`
	Phone *string `gorm:"size:30" json:"phone"`
	Photo *string `gorm:"size:255" json:"photo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
