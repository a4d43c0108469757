package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"staytrack/shared/model"
	"time"
)

const (
	ResourceName = "bookings"
	EntityName   = "booking"

	FieldID          = "_id"
	FieldGuest       = "guest"
	FieldRoom        = "room"
	FieldCheckIn     = "checkIn"
	FieldCheckOut    = "checkOut"
	FieldStatus      = "status"
	FieldTotalAmount = "totalAmount"

	StatusBooked     = "booked"
	StatusCheckedIn  = "checked-in"
	StatusCheckedOut = "checked-out"
	StatusCancelled  = "cancelled"
)

type Booking struct {
	ID          string    `json:"_id,omitempty"`
	Guest       Ref       `json:"guest"`
	Room        Ref       `json:"room"`
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"totalAmount"`
	model.Metadata
}

// Ref points at another document. The API sends it either as a bare id or,
// when populated, as the whole document; the document is kept as received.
type Ref struct {
	ID       string
	Document json.RawMessage
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*r = Ref{}
	case trimmed[0] == '"':
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return fmt.Errorf("failed to decode reference id: %w", err)
		}

		*r = Ref{ID: id}
	case trimmed[0] == '{':
		var doc struct {
			ID string `json:"_id"`
		}

		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return fmt.Errorf("failed to decode populated reference: %w", err)
		}

		*r = Ref{ID: doc.ID, Document: append(json.RawMessage(nil), trimmed...)}
	default:
		return fmt.Errorf("reference must be a string or an object, got %s", trimmed)
	}

	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if len(r.Document) > 0 {
		return r.Document, nil
	}

	if r.ID == "" {
		return []byte("null"), nil
	}

	return json.Marshal(r.ID)
}

func (r Ref) Populated() bool {
	return len(r.Document) > 0
}
