package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Application links a startup to an incubator program. One application may
// exist per (startup, incubator) pair.
type Application struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	StartupID        uuid.UUID        `json:"startup_id" db:"startup_id"`
	IncubatorID      uuid.UUID        `json:"incubator_id" db:"incubator_id"`
	Status           string           `json:"status" db:"status"`
	FunnelTimestamps FunnelTimestamps `json:"funnel_timestamps" db:"funnel_timestamps"`
	ReviewInfo       ReviewInfo       `json:"review_info" db:"review_info"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// Application statuses
const (
	ApplicationApplied     = "applied"
	ApplicationViewed      = "viewed"
	ApplicationShortlisted = "shortlisted"
	ApplicationClosedDeal  = "closed-deal"
	ApplicationRejected    = "rejected"
)

// IsTerminal reports whether the application has reached a final status
func (a *Application) IsTerminal() bool {
	return a.Status == ApplicationClosedDeal || a.Status == ApplicationRejected
}

// FunnelTimestamps records the instant each status was first entered
type FunnelTimestamps struct {
	AppliedAt     *time.Time `json:"applied_at,omitempty"`
	ViewedAt      *time.Time `json:"viewed_at,omitempty"`
	ShortlistedAt *time.Time `json:"shortlisted_at,omitempty"`
	ClosedDealAt  *time.Time `json:"closed_deal_at,omitempty"`
	RejectedAt    *time.Time `json:"rejected_at,omitempty"`
}

// Value implements driver.Valuer for FunnelTimestamps
func (f FunnelTimestamps) Value() (driver.Value, error) {
	return json.Marshal(f)
}

// Scan implements sql.Scanner for FunnelTimestamps
func (f *FunnelTimestamps) Scan(value interface{}) error {
	if value == nil {
		*f = FunnelTimestamps{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into FunnelTimestamps", value)
	}

	return json.Unmarshal(bytes, f)
}

// ReviewInfo stamps the reviewer identity on every funnel transition
type ReviewInfo struct {
	ReviewerID uuid.UUID  `json:"reviewer_id"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// Value implements driver.Valuer for ReviewInfo
func (r ReviewInfo) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner for ReviewInfo
func (r *ReviewInfo) Scan(value interface{}) error {
	if value == nil {
		*r = ReviewInfo{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into ReviewInfo", value)
	}

	return json.Unmarshal(bytes, r)
}

// ApplicationForm represents an application submission
type ApplicationForm struct {
	StartupID   string `json:"startup_id" binding:"required"`
	IncubatorID string `json:"incubator_id" binding:"required"`
}

// ApplicationActionForm represents a reviewer action on an application
type ApplicationActionForm struct {
	Action string `json:"action" binding:"required"`
	Notes  string `json:"notes"`
}
