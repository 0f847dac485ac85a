package models

// ContactMessage is an entry in the public contact-us inbox.
type ContactMessage struct {
	Model
	FullName string `json:"fullName" gorm:"type:text;not null;"`
	Email    string `json:"email" gorm:"type:text;not null;"`
	Theme    string `json:"theme" gorm:"type:text;"`
	Message  string `json:"message" gorm:"type:text;not null;"`
	IsRead   bool   `json:"isRead" gorm:"default:false;not null;"`
}

func (m ContactMessage) TableName() string {
	return "contact_messages"
}
