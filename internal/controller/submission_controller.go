package controller

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"brews_backend/internal/model"
	"brews_backend/pkg/response"
	"brews_backend/pkg/utils/validation"
)

// Dispatch routes a request on /api/submissions by its action query
// parameter. Validation failures are answered here; database errors are
// returned and become a 500 at the app's error handler.
func (ct *Controller) Dispatch(c *fiber.Ctx) error {
	switch c.Query("action") {
	case "training":
		return ct.handleTraining(c)
	case "sponsor":
		return ct.handleSponsor(c)
	case "contact":
		return ct.handleContact(c)
	case "newsletter":
		return ct.handleNewsletter(c)
	case "list":
		return ct.handleList(c)
	default:
		return response.Error(c, fiber.StatusNotFound, "Invalid endpoint")
	}
}

func (ct *Controller) handleTraining(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return response.Error(c, fiber.StatusMethodNotAllowed, "Method not allowed")
	}

	name := validation.SanitizeText(c.FormValue("name"))
	email := validation.SanitizeText(c.FormValue("email"))
	phone := validation.SanitizeText(c.FormValue("phone"))
	location := validation.SanitizeText(c.FormValue("location"))
	course := validation.SanitizeText(c.FormValue("course"))
	message := validation.SanitizeText(c.FormValue("message"))
	preferredDate := c.FormValue("preferred_date")

	if name == "" || email == "" || phone == "" {
		return response.Error(c, fiber.StatusBadRequest, "Name, email, and phone are required")
	}
	if !validation.IsValidEmail(email) {
		return response.Error(c, fiber.StatusBadRequest, "Invalid email address")
	}
	if !validation.IsValidPhone(phone) {
		return response.Error(c, fiber.StatusBadRequest, "Invalid phone number")
	}

	// A preferred date that does not parse as YYYY-MM-DD is stored as
	// absent rather than failing the whole submission.
	var dateValue *datatypes.Date
	if preferredDate != "" {
		if t, err := time.Parse("2006-01-02", preferredDate); err == nil {
			d := datatypes.Date(t)
			dateValue = &d
		}
	}

	signup := model.TrainingSignup{
		FullName:      name,
		Email:         email,
		Phone:         phone,
		Location:      location,
		PreferredDate: dateValue,
		CourseType:    course,
		Goals:         message,
	}

	result := ct.db.Create(&signup)
	if result.Error != nil {
		return fmt.Errorf("insert training signup: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return response.Error(c, fiber.StatusBadRequest, "Failed to submit registration")
	}

	if err := ct.notifier.SendTrainingNotification(&signup); err != nil {
		log.Printf("Could not send training notification email: %v", err)
	}

	return response.Success(c, nil, "Training registration submitted successfully")
}

func (ct *Controller) handleSponsor(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return response.Error(c, fiber.StatusMethodNotAllowed, "Method not allowed")
	}

	company := validation.SanitizeText(c.FormValue("company"))
	contactName := validation.SanitizeText(c.FormValue("contact_name"))
	email := validation.SanitizeText(c.FormValue("email"))
	phone := validation.SanitizeText(c.FormValue("phone"))
	level := validation.SanitizeText(c.FormValue("sponsorship_level"))
	amountRaw := c.FormValue("amount")
	message := validation.SanitizeText(c.FormValue("message"))

	if contactName == "" || email == "" {
		return response.Error(c, fiber.StatusBadRequest, "Contact name and email are required")
	}
	if !validation.IsValidEmail(email) {
		return response.Error(c, fiber.StatusBadRequest, "Invalid email address")
	}
	if !validation.IsValidPhone(phone) {
		return response.Error(c, fiber.StatusBadRequest, "Invalid phone number")
	}

	// Amount is optional but strict: a non-numeric or non-positive value
	// rejects the enquiry.
	var amountValue *float64
	if amountRaw != "" {
		v, err := strconv.ParseFloat(amountRaw, 64)
		if err != nil || v <= 0 {
			return response.Error(c, fiber.StatusBadRequest, "Invalid amount")
		}
		amountValue = &v
	}

	enquiry := model.SponsorEnquiry{
		CompanyName:      company,
		ContactName:      contactName,
		Email:            email,
		Phone:            phone,
		SponsorshipLevel: level,
		Amount:           amountValue,
		Message:          message,
	}

	result := ct.db.Create(&enquiry)
	if result.Error != nil {
		return fmt.Errorf("insert sponsor enquiry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return response.Error(c, fiber.StatusBadRequest, "Failed to submit enquiry")
	}

	if err := ct.notifier.SendSponsorNotification(&enquiry); err != nil {
		log.Printf("Could not send sponsor notification email: %v", err)
	}

	return response.Success(c, nil, "Sponsor enquiry submitted successfully")
}

func (ct *Controller) handleContact(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return response.Error(c, fiber.StatusMethodNotAllowed, "Method not allowed")
	}

	name := validation.SanitizeText(c.FormValue("name"))
	email := validation.SanitizeText(c.FormValue("email"))
	phone := validation.SanitizeText(c.FormValue("phone"))
	message := validation.SanitizeText(c.FormValue("message"))

	if name == "" || email == "" || message == "" {
		return response.Error(c, fiber.StatusBadRequest, "Name, email, and message are required")
	}
	if !validation.IsValidEmail(email) {
		return response.Error(c, fiber.StatusBadRequest, "Invalid email address")
	}
	// Phone is optional on the contact form: an absent phone skips the
	// format check, a supplied one must still pass it.
	if phone != "" && !validation.IsValidPhone(phone) {
		return response.Error(c, fiber.StatusBadRequest, "Invalid phone number")
	}

	submission := model.ContactSubmission{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
	}

	result := ct.db.Create(&submission)
	if result.Error != nil {
		return fmt.Errorf("insert contact submission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return response.Error(c, fiber.StatusBadRequest, "Failed to send message")
	}

	if err := ct.notifier.SendContactNotification(&submission); err != nil {
		log.Printf("Could not send contact notification email: %v", err)
	}

	return response.Success(c, nil, "Message sent successfully")
}
