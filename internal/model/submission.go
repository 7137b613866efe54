package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const StatusPending = "pending"

// ConnectSubmission is an SC/ST connect request. UserID is nullable, the
// form accepts anonymous submissions.
type ConnectSubmission struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name       string     `gorm:"size:100;not null" json:"name"`
	Email      string     `gorm:"size:100;not null" json:"email"`
	Phone      *string    `gorm:"size:30" json:"phone,omitempty"`
	Country    string     `gorm:"size:100;not null" json:"country"`
	City       *string    `gorm:"size:100" json:"city,omitempty"`
	Profession *string    `gorm:"size:100" json:"profession,omitempty"`
	Message    *string    `gorm:"type:text" json:"message,omitempty"`
	Status     string     `gorm:"size:30;not null;default:pending" json:"status"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (s *ConnectSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// MatrimonialProfile holds biodata, at most one row per user. The unique
// index on user_id backs the atomic upsert.
type MatrimonialProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name               string    `gorm:"size:100;not null" json:"name"`
	Email              string    `gorm:"size:100;not null" json:"email"`
	Phone              *string   `gorm:"size:30" json:"phone,omitempty"`
	Gender             *string   `gorm:"size:20" json:"gender,omitempty"`
	DateOfBirth        *string   `gorm:"size:20" json:"date_of_birth,omitempty"`
	Height             *string   `gorm:"size:20" json:"height,omitempty"`
	MaritalStatus      *string   `gorm:"size:30" json:"marital_status,omitempty"`
	CountryOfResidence string    `gorm:"size:100;not null" json:"country_of_residence"`
	City               *string   `gorm:"size:100" json:"city,omitempty"`
	Community          *string   `gorm:"size:100" json:"community,omitempty"`
	Region             *string   `gorm:"size:100" json:"region,omitempty"`
	Education          *string   `gorm:"size:150" json:"education,omitempty"`
	Profession         *string   `gorm:"size:150" json:"profession,omitempty"`
	Income             *string   `gorm:"size:100" json:"income,omitempty"`
	FatherName         *string   `gorm:"size:100" json:"father_name,omitempty"`
	MotherName         *string   `gorm:"size:100" json:"mother_name,omitempty"`
	Siblings           *string   `gorm:"type:text" json:"siblings,omitempty"`
	PartnerPreferences *string   `gorm:"type:text" json:"partner_preferences,omitempty"`
	PhotoURL           *string   `gorm:"type:text" json:"photo_url,omitempty"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *MatrimonialProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
