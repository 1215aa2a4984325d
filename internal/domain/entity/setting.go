package entity

import (
	"time"

	"github.com/google/uuid"
)

// Setting is a site-wide key/value pair such as a phone number or opening hours.
type Setting struct {
	ID          uuid.UUID `json:"id"`
	KeyName     string    `json:"key_name"`
	KeyValue    string    `json:"key_value"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
