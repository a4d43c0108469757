package model

import "time"

// Metadata holds the timestamps the hotel API stamps on every document.
type Metadata struct {
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}
