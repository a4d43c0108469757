package model

import "staytrack/shared/model"

const (
	ResourceName = "rooms"
	EntityName   = "room"

	FieldID         = "_id"
	FieldRoomNumber = "room_number"
	FieldType       = "type"
	FieldPrice      = "price"
	FieldStatus     = "status"

	TypeSingle = "single"
	TypeDouble = "double"
	TypeSuite  = "suite"

	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID         string  `json:"_id,omitempty"`
	RoomNumber string  `json:"room_number"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	model.Metadata
}

