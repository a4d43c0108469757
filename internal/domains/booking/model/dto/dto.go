package dto

import (
	"staytrack/internal/domains/booking/model"
	"staytrack/shared/resource"
	"staytrack/shared/timezone"
	"time"
)

const (
	defaultCheckInHour  = 14
	defaultCheckOutHour = 12
)

// Draft references guest and room by id. totalAmount is computed by the server
// and is never sent.
type Draft struct {
	Guest    string    `json:"guest"    validate:"required,notblank"`
	Room     string    `json:"room"     validate:"required,notblank"`
	CheckIn  time.Time `json:"checkIn"  validate:"required"`
	CheckOut time.Time `json:"checkOut" validate:"required,gtfield=CheckIn"`
	Status   string    `json:"status"   validate:"required,oneof=booked checked-in checked-out cancelled"`
}

// DefaultDraft proposes a one night stay starting today in the application timezone.
func DefaultDraft() Draft {
	now := timezone.Now()
	year, month, day := now.Date()
	checkIn := time.Date(year, month, day, defaultCheckInHour, 0, 0, 0, now.Location())

	return Draft{
		CheckIn:  checkIn,
		CheckOut: time.Date(year, month, day+1, defaultCheckOutHour, 0, 0, 0, now.Location()),
		Status:   model.StatusBooked,
	}
}

func (d *Draft) FromModel(booking model.Booking) {
	d.Guest = booking.Guest.ID
	d.Room = booking.Room.ID
	d.CheckIn = booking.CheckIn
	d.CheckOut = booking.CheckOut
	d.Status = booking.Status
}

var Descriptor = resource.Descriptor[model.Booking, Draft]{
	Name:     model.ResourceName,
	ID:       func(booking model.Booking) string { return booking.ID },
	Defaults: DefaultDraft,
	ToDraft: func(booking model.Booking) Draft {
		var draft Draft
		draft.FromModel(booking)

		return draft
	},
}
