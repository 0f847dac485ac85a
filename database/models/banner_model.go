package models

type Banner struct {
	Model
	ImageURL string `json:"imageUrl" gorm:"type:text;not null;"`
	IsActive bool   `json:"isActive" gorm:"default:true;not null;"`
}

func (m Banner) TableName() string {
	return "banners"
}
