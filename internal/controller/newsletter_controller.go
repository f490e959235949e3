package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"brews_backend/internal/model"
	"brews_backend/pkg/response"
	"brews_backend/pkg/utils/validation"
)

func (ct *Controller) handleNewsletter(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return response.Error(c, fiber.StatusMethodNotAllowed, "Method not allowed")
	}

	email := validation.SanitizeText(c.FormValue("email"))
	name := validation.SanitizeText(c.FormValue("name"))

	if email == "" {
		return response.Error(c, fiber.StatusBadRequest, "Email is required")
	}
	if !validation.IsValidEmail(email) {
		return response.Error(c, fiber.StatusBadRequest, "Invalid email address")
	}

	var existing model.NewsletterSubscription
	err := ct.db.Where("email = ? AND is_active = ?", email, true).First(&existing).Error
	if err == nil {
		return response.Success(c, nil, "Already subscribed")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check newsletter subscription: %w", err)
	}

	// Insert-or-reactivate keyed on the unique email column. Two racing
	// subscribes both land here; the upsert keeps the operation idempotent.
	// The stored name is not overwritten on reactivation.
	subscription := model.NewsletterSubscription{
		Email:    email,
		Name:     name,
		IsActive: true,
	}

	result := ct.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_active":       true,
			"unsubscribed_at": nil,
			"updated_at":      time.Now(),
		}),
	}).Create(&subscription)
	if result.Error != nil {
		return fmt.Errorf("insert newsletter subscription: %w", result.Error)
	}

	return response.Success(c, nil, "Successfully subscribed to newsletter")
}
