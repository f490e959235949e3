package controller

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"brews_backend/internal/model"
	"brews_backend/pkg/response"
)

var bearerPattern = regexp.MustCompile(`(?i)^Bearer\s+(.*)$`)

// apiToken extracts the caller's token from the Authorization header, falling
// back to the token query parameter.
func apiToken(c *fiber.Ctx) string {
	if auth := c.Get(fiber.HeaderAuthorization); auth != "" {
		if m := bearerPattern.FindStringSubmatch(auth); m != nil {
			return m[1]
		}
	}
	return c.Query("token")
}

// validAPIToken is intentionally permissive: a request carrying no token at
// all passes, only a token that does not match the configured one fails.
func (ct *Controller) validAPIToken(c *fiber.Ctx) bool {
	token := apiToken(c)
	return token == "" || token == ct.cfg.API.Token
}

// parseIntParam mirrors loose integer coercion for pagination input: an
// absent parameter takes the default, a non-numeric one coerces to 0.
func parseIntParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, _ := strconv.Atoi(raw)
	return n
}

func (ct *Controller) handleList(c *fiber.Ctx) error {
	if !ct.validAPIToken(c) {
		return response.Error(c, fiber.StatusUnauthorized, "Invalid API token")
	}

	submissionType := c.Query("type", "all")
	limit := parseIntParam(c.Query("limit"), 50)
	offset := parseIntParam(c.Query("offset"), 0)

	switch submissionType {
	case "training":
		var rows []model.TrainingSignup
		if err := ct.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
			return fmt.Errorf("list training signups: %w", err)
		}
		return response.Success(c, rows, "Success")

	case "sponsor":
		var rows []model.SponsorEnquiry
		if err := ct.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
			return fmt.Errorf("list sponsor enquiries: %w", err)
		}
		return response.Success(c, rows, "Success")

	case "contact":
		var rows []model.ContactSubmission
		if err := ct.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
			return fmt.Errorf("list contact submissions: %w", err)
		}
		return response.Success(c, rows, "Success")

	case "newsletter":
		var rows []model.NewsletterSubscription
		if err := ct.db.Where("is_active = ?", true).
			Order("subscribed_at DESC").Limit(limit).Offset(offset).
			Find(&rows).Error; err != nil {
			return fmt.Errorf("list newsletter subscriptions: %w", err)
		}
		return response.Success(c, rows, "Success")

	default:
		// "all" and any unrecognised type read the precomputed union view.
		var rows []model.RecentSubmission
		if err := ct.db.Table(model.RecentSubmissionsView).
			Order("created_at DESC").Limit(limit).Offset(offset).
			Find(&rows).Error; err != nil {
			return fmt.Errorf("list recent submissions: %w", err)
		}
		return response.Success(c, rows, "Success")
	}
}
