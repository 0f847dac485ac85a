package models

// About is the single informational record behind the public about page.
// Only one row is expected to exist.
type About struct {
	Model
	MainTitle   string `json:"mainTitle" gorm:"type:text;not null;"`
	MainImage   string `json:"mainImage" gorm:"type:text;"`
	HeroTitle   string `json:"heroTitle" gorm:"type:text;"`
	Description string `json:"description" gorm:"type:text;"`
}

func (m About) TableName() string {
	return "abouts"
}
