package email

import (
	"log"

	"brews_backend/internal/model"
)

// Noop is used when no Resend API key is configured. It logs the would-be
// notification and reports success.
type Noop struct{}

func (Noop) SendTrainingNotification(t *model.TrainingSignup) error {
	log.Printf("Email notifications disabled, skipping training notification for %s", t.Email)
	return nil
}

func (Noop) SendSponsorNotification(e *model.SponsorEnquiry) error {
	log.Printf("Email notifications disabled, skipping sponsor notification for %s", e.Email)
	return nil
}

func (Noop) SendContactNotification(s *model.ContactSubmission) error {
	log.Printf("Email notifications disabled, skipping contact notification for %s", s.Email)
	return nil
}
