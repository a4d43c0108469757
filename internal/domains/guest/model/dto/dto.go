package dto

import (
	"staytrack/internal/domains/guest/model"
	"staytrack/shared/resource"
)

// Draft is the editable part of a guest. Every field is required.
type Draft struct {
	FirstName string `json:"firstName" validate:"required,notblank,max=100"`
	LastName  string `json:"lastName"  validate:"required,notblank,max=100"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"phone"     validate:"required,notblank,max=30"`
	IDType    string `json:"idType"    validate:"required,oneof=passport driving_license national_id"`
	IDNumber  string `json:"idNumber"  validate:"required,notblank,max=50"`
}

func DefaultDraft() Draft {
	return Draft{IDType: model.IDTypePassport}
}

func (d *Draft) FromModel(guest model.Guest) {
	d.FirstName = guest.FirstName
	d.LastName = guest.LastName
	d.Email = guest.Email
	d.Phone = guest.Phone
	d.IDType = guest.IDType
	d.IDNumber = guest.IDNumber
}

var Descriptor = resource.Descriptor[model.Guest, Draft]{
	Name:     model.ResourceName,
	Envelope: model.ResourceName,
	ID:       func(guest model.Guest) string { return guest.ID },
	Defaults: DefaultDraft,
	ToDraft: func(guest model.Guest) Draft {
		var draft Draft
		draft.FromModel(guest)

		return draft
	},
}
