package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TrainingSignup is a registration submitted through the public training form.
type TrainingSignup struct {
	gorm.Model
	FullName      string          `json:"full_name" gorm:"size:255;not null"`
	Email         string          `json:"email" gorm:"size:255;not null"`
	Phone         string          `json:"phone" gorm:"size:50;not null"`
	Location      string          `json:"location" gorm:"size:255"`
	PreferredDate *datatypes.Date `json:"preferred_date"`
	CourseType    string          `json:"course_type" gorm:"size:100"`
	Goals         string          `json:"goals" gorm:"type:text"`
}

func (TrainingSignup) TableName() string {
	return "training_signups"
}
