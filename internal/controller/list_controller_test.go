package controller

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"brews_backend/internal/model"
)

// seedListData inserts three contacts, one training signup, one sponsor
// enquiry and two newsletter subscriptions (one inactive) with staggered
// timestamps, newest last.
func seedListData(t *testing.T, db *gorm.DB) {
	t.Helper()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 3; i++ {
		c := model.ContactSubmission{
			Name:    fmt.Sprintf("contact-%d", i),
			Email:   fmt.Sprintf("c%d@example.org", i),
			Message: "hello",
		}
		c.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(&c).Error)
	}

	tr := model.TrainingSignup{FullName: "trainee", Email: "t@example.org", Phone: "0123456789"}
	tr.CreatedAt = base.Add(10 * time.Minute)
	require.NoError(t, db.Create(&tr).Error)

	sp := model.SponsorEnquiry{ContactName: "sponsor", Email: "s@example.org", Phone: "0123456789"}
	sp.CreatedAt = base.Add(20 * time.Minute)
	require.NoError(t, db.Create(&sp).Error)

	active := model.NewsletterSubscription{
		Email: "active@example.org", IsActive: true,
		SubscribedAt: base.Add(30 * time.Minute),
	}
	require.NoError(t, db.Create(&active).Error)

	unsubAt := base.Add(40 * time.Minute)
	inactive := model.NewsletterSubscription{
		Email: "gone@example.org", IsActive: false,
		SubscribedAt: base.Add(5 * time.Minute), UnsubscribedAt: &unsubAt,
	}
	require.NoError(t, db.Create(&inactive).Error)
}

func listRequest(t *testing.T, app *fiber.App, query, token string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, "/api/submissions?action=list"+query, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, env := doRequest(t, app, req)
	return resp.StatusCode, env
}

func TestListAuth(t *testing.T) {
	app, _, _ := newTestApp(t)

	t.Run("no token passes", func(t *testing.T) {
		status, env := listRequest(t, app, "", "")
		require.Equal(t, fiber.StatusOK, status)
		require.True(t, env.Success)
	})

	t.Run("wrong bearer token rejected", func(t *testing.T) {
		status, env := listRequest(t, app, "", "wrong-token")
		require.Equal(t, fiber.StatusUnauthorized, status)
		require.Equal(t, "Invalid API token", env.Message)
	})

	t.Run("correct bearer token passes", func(t *testing.T) {
		status, _ := listRequest(t, app, "", testToken)
		require.Equal(t, fiber.StatusOK, status)
	})

	t.Run("token query parameter accepted", func(t *testing.T) {
		status, _ := listRequest(t, app, "&token="+testToken, "")
		require.Equal(t, fiber.StatusOK, status)

		status, env := listRequest(t, app, "&token=wrong", "")
		require.Equal(t, fiber.StatusUnauthorized, status)
		require.Equal(t, "Invalid API token", env.Message)
	})

	t.Run("header takes precedence over query", func(t *testing.T) {
		status, _ := listRequest(t, app, "&token="+testToken, "wrong-token")
		require.Equal(t, fiber.StatusUnauthorized, status)
	})
}

func TestListByType(t *testing.T) {
	app, db, _ := newTestApp(t)
	seedListData(t, db)

	t.Run("contact with limit newest first", func(t *testing.T) {
		status, env := listRequest(t, app, "&type=contact&limit=2", testToken)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "Success", env.Message)

		var rows []model.ContactSubmission
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		require.Len(t, rows, 2)
		require.Equal(t, "contact-2", rows[0].Name)
		require.Equal(t, "contact-1", rows[1].Name)
	})

	t.Run("offset shifts the window", func(t *testing.T) {
		status, env := listRequest(t, app, "&type=contact&limit=2&offset=2", testToken)
		require.Equal(t, fiber.StatusOK, status)

		var rows []model.ContactSubmission
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		require.Len(t, rows, 1)
		require.Equal(t, "contact-0", rows[0].Name)
	})

	t.Run("training", func(t *testing.T) {
		status, env := listRequest(t, app, "&type=training", testToken)
		require.Equal(t, fiber.StatusOK, status)

		var rows []model.TrainingSignup
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		require.Len(t, rows, 1)
		require.Equal(t, "trainee", rows[0].FullName)
	})

	t.Run("newsletter excludes inactive", func(t *testing.T) {
		status, env := listRequest(t, app, "&type=newsletter", testToken)
		require.Equal(t, fiber.StatusOK, status)

		var rows []model.NewsletterSubscription
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		require.Len(t, rows, 1)
		require.Equal(t, "active@example.org", rows[0].Email)
	})

	t.Run("all reads the union view in global recency order", func(t *testing.T) {
		status, env := listRequest(t, app, "&type=all", testToken)
		require.Equal(t, fiber.StatusOK, status)

		var rows []model.RecentSubmission
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		// 3 contacts + 1 training + 1 sponsor + 1 active newsletter.
		require.Len(t, rows, 6)
		require.Equal(t, "newsletter", rows[0].Type)
		require.Equal(t, "sponsor", rows[1].Type)
		require.Equal(t, "training", rows[2].Type)
		for i := 1; i < len(rows); i++ {
			require.False(t, rows[i].CreatedAt.After(rows[i-1].CreatedAt),
				"rows must be ordered by recency descending")
		}
	})

	t.Run("non-numeric limit coerces to zero", func(t *testing.T) {
		status, env := listRequest(t, app, "&type=contact&limit=abc", testToken)
		require.Equal(t, fiber.StatusOK, status)

		var rows []model.ContactSubmission
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		require.Len(t, rows, 0)
	})

	t.Run("default limit applies when absent", func(t *testing.T) {
		status, env := listRequest(t, app, "&type=contact", testToken)
		require.Equal(t, fiber.StatusOK, status)

		var rows []model.ContactSubmission
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		require.Len(t, rows, 3)
	})
}
