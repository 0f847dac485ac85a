package models

type Blog struct {
	Model
	Title       string `json:"title" gorm:"type:text;not null;"`
	Description string `json:"description" gorm:"type:text;"`
	Content     string `json:"content" gorm:"type:text;"`
	Region      string `json:"region" gorm:"type:text;"`
	Image       string `json:"image" gorm:"type:text;"`
	Slug        string `json:"slug" gorm:"type:text;uniqueIndex;not null;"`
	// Hits counts how often the blog post was retrieved. It is incremented
	// atomically on every detail request.
	Hits int `json:"views" gorm:"default:0;not null;"`
}

func (m Blog) TableName() string {
	return "blogs"
}

func (m *Blog) GetSlug() string {
	return m.Slug
}

func (m *Blog) SetSlug(slug string) {
	m.Slug = slug
}
