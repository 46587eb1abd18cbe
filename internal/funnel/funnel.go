package funnel

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
)

// Action is a reviewer action on an application
type Action string

const (
	ActionView      Action = "view"
	ActionShortlist Action = "shortlist"
	ActionAccept    Action = "accept"
	ActionReject    Action = "reject"
)

// ParseAction validates an action token
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionView, ActionShortlist, ActionAccept, ActionReject:
		return Action(s), nil
	}
	return "", apperrors.ValidationError(fmt.Sprintf("invalid application action %q", s), nil)
}

// validFrom maps each action to the statuses it may be applied from.
var validFrom = map[Action][]string{
	ActionView:      {models.ApplicationApplied},
	ActionShortlist: {models.ApplicationApplied, models.ApplicationViewed},
	ActionAccept:    {models.ApplicationApplied, models.ApplicationViewed, models.ApplicationShortlisted},
	ActionReject:    {models.ApplicationApplied, models.ApplicationViewed, models.ApplicationShortlisted},
}

// target maps each action to the status it produces.
var target = map[Action]string{
	ActionView:      models.ApplicationViewed,
	ActionShortlist: models.ApplicationShortlisted,
	ActionAccept:    models.ApplicationClosedDeal,
	ActionReject:    models.ApplicationRejected,
}

// Transition applies a reviewer action to an application in place. It
// validates the action against the current status before any mutation,
// records the first-entry funnel timestamp for the new status, and stamps
// review info. closed-deal and rejected are terminal.
func Transition(app *models.Application, action Action, reviewerID uuid.UUID, notes string, now time.Time) error {
	allowed, ok := validFrom[action]
	if !ok {
		return apperrors.ValidationError(fmt.Sprintf("invalid application action %q", action), nil)
	}

	if app.IsTerminal() {
		return apperrors.ValidationError(
			fmt.Sprintf("application is %s and accepts no further actions", app.Status), nil)
	}

	permitted := false
	for _, s := range allowed {
		if app.Status == s {
			permitted = true
			break
		}
	}
	if !permitted {
		return apperrors.ValidationError(
			fmt.Sprintf("cannot %s an application in status %s", action, app.Status), nil)
	}

	app.Status = target[action]
	stampFunnel(app, action, now)

	if notes == "" {
		notes = fmt.Sprintf("Application %sed", action)
	}
	app.ReviewInfo = models.ReviewInfo{
		ReviewerID: reviewerID,
		ReviewedAt: &now,
		Notes:      notes,
	}
	app.UpdatedAt = now

	return nil
}

// stampFunnel records the instant a status was first entered.
func stampFunnel(app *models.Application, action Action, now time.Time) {
	ts := now
	switch action {
	case ActionView:
		if app.FunnelTimestamps.ViewedAt == nil {
			app.FunnelTimestamps.ViewedAt = &ts
		}
	case ActionShortlist:
		if app.FunnelTimestamps.ShortlistedAt == nil {
			app.FunnelTimestamps.ShortlistedAt = &ts
		}
	case ActionAccept:
		if app.FunnelTimestamps.ClosedDealAt == nil {
			app.FunnelTimestamps.ClosedDealAt = &ts
		}
	case ActionReject:
		if app.FunnelTimestamps.RejectedAt == nil {
			app.FunnelTimestamps.RejectedAt = &ts
		}
	}
}
