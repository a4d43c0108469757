package dto

import (
	"staytrack/internal/domains/room/model"
	"staytrack/shared/resource"
)

type Draft struct {
	RoomNumber string  `json:"room_number" validate:"required,notblank,max=20"`
	Type       string  `json:"type"        validate:"required,oneof=single double suite"`
	Price      float64 `json:"price"       validate:"gte=0"`
	Status     string  `json:"status"      validate:"required,oneof=available occupied maintenance"`
}

func DefaultDraft() Draft {
	return Draft{
		Type:   model.TypeSingle,
		Status: model.StatusAvailable,
	}
}

func (d *Draft) FromModel(room model.Room) {
	d.RoomNumber = room.RoomNumber
	d.Type = room.Type
	d.Price = room.Price
	d.Status = room.Status
}

var Descriptor = resource.Descriptor[model.Room, Draft]{
	Name:     model.ResourceName,
	ID:       func(room model.Room) string { return room.ID },
	Defaults: DefaultDraft,
	ToDraft: func(room model.Room) Draft {
		var draft Draft
		draft.FromModel(room)

		return draft
	},
}
