package model

import "gorm.io/gorm"

// SponsorEnquiry is an enquiry submitted through the public sponsorship form.
// Amount is optional; when present it has already been validated as positive.
type SponsorEnquiry struct {
	gorm.Model
	CompanyName      string   `json:"company_name" gorm:"size:255"`
	ContactName      string   `json:"contact_name" gorm:"size:255;not null"`
	Email            string   `json:"email" gorm:"size:255;not null"`
	Phone            string   `json:"phone" gorm:"size:50"`
	SponsorshipLevel string   `json:"sponsorship_level" gorm:"size:100"`
	Amount           *float64 `json:"amount" gorm:"type:decimal(10,2)"`
	Message          string   `json:"message" gorm:"type:text"`
}

func (SponsorEnquiry) TableName() string {
	return "sponsor_enquiries"
}
