package model

import "time"

// NewsletterSubscription is one email's subscription state. A row is never
// duplicated per email: unsubscribing flips IsActive and stamps
// UnsubscribedAt, resubscribing reactivates the same row.
type NewsletterSubscription struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Email          string     `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Name           string     `json:"name" gorm:"size:255"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	SubscribedAt   time.Time  `json:"subscribed_at" gorm:"autoCreateTime"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}
