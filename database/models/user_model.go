package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account keyed by email. The email doubles as the login identity.
type User struct {
	Model
	Email        string `json:"email" gorm:"type:text;uniqueIndex;not null;"`
	PasswordHash string `json:"-" gorm:"type:text;"`
	Name         string `json:"name" gorm:"type:text;"`
	IsStaff      bool   `json:"isStaff" gorm:"default:false;not null;"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m User) TableName() string {
	return "users"
}

type Profile struct {
	Model
	UserID    uuid.UUID  `json:"userId" gorm:"type:uuid;uniqueIndex;not null;"`
	FirstName string     `json:"firstName" gorm:"type:text;"`
	LastName  string     `json:"lastName" gorm:"type:text;"`
	BirthDate *time.Time `json:"birthDate" gorm:"type:date;"`
}

func (m Profile) TableName() string {
	return "profiles"
}
