package dealflow

import (
	"fmt"
	"time"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
)

// IntroAction is a startup-side response to an intro request
type IntroAction string

const (
	IntroApprove  IntroAction = "approve"
	IntroDecline  IntroAction = "decline"
	IntroSchedule IntroAction = "schedule"
	IntroComplete IntroAction = "complete"
)

// ParseIntroAction validates an action token
func ParseIntroAction(s string) (IntroAction, error) {
	switch IntroAction(s) {
	case IntroApprove, IntroDecline, IntroSchedule, IntroComplete:
		return IntroAction(s), nil
	}
	return "", apperrors.ValidationError(fmt.Sprintf("invalid intro action %q", s), nil)
}

// RespondToIntro applies a response to an intro request in place.
// pending → approved | declined | meeting-scheduled; a scheduled meeting may
// later be completed. approved, declined and completed are terminal.
func RespondToIntro(req *models.IntroRequest, action IntroAction, meetingDate *time.Time, notes string, now time.Time) error {
	if req.IsTerminal() {
		return apperrors.ValidationError(
			fmt.Sprintf("intro request is %s and accepts no further responses", req.Status), nil)
	}

	switch action {
	case IntroApprove:
		if req.Status != models.IntroPending {
			return apperrors.ValidationError(
				fmt.Sprintf("cannot approve an intro request in status %s", req.Status), nil)
		}
		req.Status = models.IntroApproved

	case IntroDecline:
		if req.Status != models.IntroPending {
			return apperrors.ValidationError(
				fmt.Sprintf("cannot decline an intro request in status %s", req.Status), nil)
		}
		req.Status = models.IntroDeclined

	case IntroSchedule:
		if req.Status != models.IntroPending {
			return apperrors.ValidationError(
				fmt.Sprintf("cannot schedule an intro request in status %s", req.Status), nil)
		}
		if meetingDate == nil {
			return apperrors.ValidationError("meeting date is required to schedule", nil)
		}
		req.Status = models.IntroMeetingScheduled
		req.MeetingDate = meetingDate

	case IntroComplete:
		if req.Status != models.IntroMeetingScheduled {
			return apperrors.ValidationError(
				fmt.Sprintf("cannot complete an intro request in status %s", req.Status), nil)
		}
		req.Status = models.IntroCompleted

	default:
		return apperrors.ValidationError(fmt.Sprintf("invalid intro action %q", action), nil)
	}

	if notes != "" {
		req.ResponseNotes = notes
	}
	req.UpdatedAt = now

	return nil
}
