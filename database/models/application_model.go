package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusDenied   ApplicationStatus = "denied"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusDenied:
		return true
	}
	return false
}

// Regions is the fixed list of administrative regions an application can be
// filed from.
var Regions = []string{
	"Toshkent",
	"Samarqand",
	"Buxoro",
	"Farg'ona",
	"Andijon",
	"Namangan",
	"Qashqadaryo",
	"Surxondaryo",
	"Jizzax",
	"Sirdaryo",
	"Xorazm",
	"Navoiy",
	"Qoraqalpog'iston",
}

func ValidRegion(region string) bool {
	for _, r := range Regions {
		if r == region {
			return true
		}
	}
	return false
}

// Application is a submitted aid request. The slug is derived from the
// applicant's full name and made unique with a numeric suffix.
type Application struct {
	Model
	FullName       string            `json:"fullName" gorm:"type:text;not null;"`
	PhoneNumber    string            `json:"phoneNumber" gorm:"type:text;not null;"`
	BirthDate      time.Time         `json:"birthDate" gorm:"type:date;not null;"`
	PassportNumber string            `json:"passportNumber" gorm:"type:text;not null;"`
	Region         string            `json:"region" gorm:"type:text;not null;"`
	Location       string            `json:"location" gorm:"type:text;"`
	Description    string            `json:"description" gorm:"type:text;"`
	Status         ApplicationStatus `json:"status" gorm:"type:text;default:'pending';not null;"`
	DeniedReason   string            `json:"deniedReason" gorm:"type:text;"`
	Slug           string            `json:"slug" gorm:"type:text;uniqueIndex;not null;"`
	VideoURL       *string           `json:"videoUrl" gorm:"type:text;"`
	DocumentURL    *string           `json:"documentUrl" gorm:"type:text;"`

	CategoryID    uuid.UUID   `json:"categoryId" gorm:"type:uuid;not null;"`
	Category      Category    `json:"category" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE;"`
	SubcategoryID uuid.UUID   `json:"subcategoryId" gorm:"type:uuid;not null;"`
	Subcategory   Subcategory `json:"subcategory" gorm:"foreignKey:SubcategoryID;references:ID;constraint:OnDelete:CASCADE;"`

	Images []ApplicationImage `json:"images" gorm:"foreignKey:ApplicationID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m Application) TableName() string {
	return "applications"
}

func (m *Application) GetSlug() string {
	return m.Slug
}

func (m *Application) SetSlug(slug string) {
	m.Slug = slug
}

// ApplicationImage is a single photo attached to an application. Either a
// locally stored file path or the URL returned by the external image host is
// set - never neither.
type ApplicationImage struct {
	Model
	ApplicationID uuid.UUID `json:"applicationId" gorm:"type:uuid;not null;"`
	Image         *string   `json:"image" gorm:"type:text;"`
	ImageURL      *string   `json:"imageUrl" gorm:"type:text;"`
}

func (m ApplicationImage) TableName() string {
	return "application_images"
}
