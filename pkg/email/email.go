package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"brews_backend/internal/model"
	"brews_backend/pkg/config"
)

const defaultBaseURL = "https://api.resend.com"

// Notifier delivers admin notifications for accepted submissions. Delivery
// is best-effort: callers log a returned error and carry on.
type Notifier interface {
	SendTrainingNotification(s *model.TrainingSignup) error
	SendSponsorNotification(e *model.SponsorEnquiry) error
	SendContactNotification(s *model.ContactSubmission) error
}

// Service sends notification emails through the Resend API.
type Service struct {
	apiKey  string
	from    string
	adminTo string
	baseURL string
	client  *http.Client
}

type emailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	ReplyTo string `json:"reply_to,omitempty"`
}

func NewService(cfg config.EmailConfig) *Service {
	return &Service{
		apiKey:  cfg.ResendAPIKey,
		from:    cfg.From,
		adminTo: cfg.AdminEmail,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Service) send(replyTo, subject, body string) error {
	jsonData, err := json.Marshal(emailData{
		From:    s.from,
		To:      s.adminTo,
		Subject: subject,
		Text:    body,
		ReplyTo: replyTo,
	})
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	log.Printf("Notification email sent: %s", subject)
	return nil
}

func (s *Service) SendTrainingNotification(t *model.TrainingSignup) error {
	var b strings.Builder
	b.WriteString("New training registration received:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", t.FullName)
	fmt.Fprintf(&b, "Email: %s\n", t.Email)
	fmt.Fprintf(&b, "Phone: %s\n", t.Phone)
	fmt.Fprintf(&b, "Course: %s\n", t.CourseType)
	fmt.Fprintf(&b, "Message: %s\n", t.Goals)
	fmt.Fprintf(&b, "Time: %s\n", time.Now().Format("2006-01-02 15:04:05"))

	return s.send(t.Email, "New Training Registration - Brews of Opportunity", b.String())
}

func (s *Service) SendSponsorNotification(e *model.SponsorEnquiry) error {
	amount := 0.0
	if e.Amount != nil {
		amount = *e.Amount
	}

	var b strings.Builder
	b.WriteString("New sponsor enquiry received:\n\n")
	fmt.Fprintf(&b, "Company: %s\n", e.CompanyName)
	fmt.Fprintf(&b, "Contact: %s\n", e.ContactName)
	fmt.Fprintf(&b, "Email: %s\n", e.Email)
	fmt.Fprintf(&b, "Phone: %s\n", e.Phone)
	fmt.Fprintf(&b, "Sponsorship Level: %s\n", e.SponsorshipLevel)
	fmt.Fprintf(&b, "Amount: R%.2f\n", amount)
	fmt.Fprintf(&b, "Message: %s\n", e.Message)
	fmt.Fprintf(&b, "Time: %s\n", time.Now().Format("2006-01-02 15:04:05"))

	return s.send(e.Email, "New Sponsor Enquiry - Brews of Opportunity", b.String())
}

func (s *Service) SendContactNotification(sub *model.ContactSubmission) error {
	var b strings.Builder
	b.WriteString("New contact message received:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	fmt.Fprintf(&b, "Message: %s\n", sub.Message)
	fmt.Fprintf(&b, "Time: %s\n", time.Now().Format("2006-01-02 15:04:05"))

	return s.send(sub.Email, "New Contact Message - Brews of Opportunity", b.String())
}
