package dto

import "io"

type ConnectSubmissionInput struct {
	Name       string  `json:"name" binding:"required,max=100"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      *string `json:"phone"`
	Country    string  `json:"country" binding:"required,max=100"`
	City       *string `json:"city"`
	Profession *string `json:"profession"`
	Message    *string `json:"message"`
}

// PhotoFile represents an uploaded image file.
type PhotoFile struct {
	Reader   io.Reader
	FileName string
}

// MatrimonialInput carries biodata form fields. Caste and State are legacy
// aliases still sent by older frontend builds; they map onto Community and
// Region when the canonical field is absent.
type MatrimonialInput struct {
	Name               string  `form:"name" json:"name" binding:"required,max=100"`
	Email              string  `form:"email" json:"email" binding:"required,email"`
	Phone              *string `form:"phone" json:"phone"`
	Gender             *string `form:"gender" json:"gender"`
	DateOfBirth        *string `form:"date_of_birth" json:"date_of_birth"`
	Height             *string `form:"height" json:"height"`
	MaritalStatus      *string `form:"marital_status" json:"marital_status"`
	CountryOfResidence string  `form:"country_of_residence" json:"country_of_residence" binding:"required,max=100"`
	City               *string `form:"city" json:"city"`
	Community          *string `form:"community" json:"community"`
	Caste              *string `form:"caste" json:"caste"`
	Region             *string `form:"region" json:"region"`
	State              *string `form:"state" json:"state"`
	Education          *string `form:"education" json:"education"`
	Profession         *string `form:"profession" json:"profession"`
	Income             *string `form:"income" json:"income"`
	FatherName         *string `form:"father_name" json:"father_name"`
	MotherName         *string `form:"mother_name" json:"mother_name"`
	Siblings           *string `form:"siblings" json:"siblings"`
	PartnerPreferences *string `form:"partner_preferences" json:"partner_preferences"`
}
