package models

import (
	"time"

	"github.com/google/uuid"
)

// IntroRequest represents an investor's request for an introduction or
// meeting with a startup.
type IntroRequest struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	InvestorID    uuid.UUID  `json:"investor_id" db:"investor_id"`
	StartupID     uuid.UUID  `json:"startup_id" db:"startup_id"`
	Status        string     `json:"status" db:"status"`
	Message       string     `json:"message" db:"message"`
	MeetingDate   *time.Time `json:"meeting_date,omitempty" db:"meeting_date"`
	ResponseNotes string     `json:"response_notes" db:"response_notes"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// Intro request statuses
const (
	IntroPending          = "pending"
	IntroApproved         = "approved"
	IntroDeclined         = "declined"
	IntroMeetingScheduled = "meeting-scheduled"
	IntroCompleted        = "completed"
)

// IsTerminal reports whether the request allows no further transitions
func (r *IntroRequest) IsTerminal() bool {
	switch r.Status {
	case IntroApproved, IntroDeclined, IntroCompleted:
		return true
	}
	return false
}

// IntroRequestForm represents an intro request creation
type IntroRequestForm struct {
	StartupID string `json:"startup_id" binding:"required"`
	Message   string `json:"message"`
}

// IntroResponseForm represents the startup's response to an intro request
type IntroResponseForm struct {
	Action      string `json:"action" binding:"required"`
	MeetingDate string `json:"meeting_date"`
	Notes       string `json:"notes"`
}
