package model

import "time"

// RecentSubmissionsView is the name of the read-only union view spanning all
// four submission tables, used by the "all" listing.
const RecentSubmissionsView = "recent_submissions"

// RecentSubmission is one row of the recent_submissions view.
type RecentSubmission struct {
	Type      string    `json:"type"`
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
