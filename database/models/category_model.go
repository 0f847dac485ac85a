package models

// Category and Subcategory form the taxonomy applications are filed under.
// The relation is many-to-many: a subcategory like "medication" can live under
// multiple top-level categories.
type Category struct {
	Model
	Title         string        `json:"title" gorm:"type:text;uniqueIndex;not null;"`
	Image         string        `json:"image" gorm:"type:text;"`
	Subcategories []Subcategory `json:"subcategories" gorm:"many2many:category_subcategories;constraint:OnDelete:CASCADE;"`
}

func (m Category) TableName() string {
	return "categories"
}

type Subcategory struct {
	Model
	Title      string     `json:"title" gorm:"type:text;not null;"`
	Slug       string     `json:"slug" gorm:"type:text;uniqueIndex;not null;"`
	Categories []Category `json:"categories,omitempty" gorm:"many2many:category_subcategories;constraint:OnDelete:CASCADE;"`
}

func (m Subcategory) TableName() string {
	return "subcategories"
}

func (m *Subcategory) GetSlug() string {
	return m.Slug
}

func (m *Subcategory) SetSlug(slug string) {
	m.Slug = slug
}
