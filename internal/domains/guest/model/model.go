package model

import "staytrack/shared/model"

const (
	ResourceName = "guests"
	EntityName   = "guest"

	FieldID        = "_id"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldIDType    = "idType"
	FieldIDNumber  = "idNumber"

	IDTypePassport       = "passport"
	IDTypeDrivingLicense = "driving_license"
	IDTypeNationalID     = "national_id"
)

type Guest struct {
	ID        string `json:"_id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IDType    string `json:"idType"`
	IDNumber  string `json:"idNumber"`
	model.Metadata
}

