package model

import "gorm.io/gorm"

// ContactSubmission is a message submitted through the public contact form.
type ContactSubmission struct {
	gorm.Model
	Name    string `json:"name" gorm:"size:255;not null"`
	Email   string `json:"email" gorm:"size:255;not null"`
	Phone   string `json:"phone" gorm:"size:50"`
	Message string `json:"message" gorm:"type:text;not null"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
