package dealflow

import (
	"fmt"
	"time"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
)

// CommitmentAction is a startup-side response to a soft commitment
type CommitmentAction string

const (
	CommitmentAccept  CommitmentAction = "accept"
	CommitmentCounter CommitmentAction = "counter"
	CommitmentDecline CommitmentAction = "decline"
)

// ParseCommitmentAction validates an action token
func ParseCommitmentAction(s string) (CommitmentAction, error) {
	switch CommitmentAction(s) {
	case CommitmentAccept, CommitmentCounter, CommitmentDecline:
		return CommitmentAction(s), nil
	}
	return "", apperrors.ValidationError(fmt.Sprintf("invalid commitment action %q", s), nil)
}

// CounterPayload carries the startup's structured counter-offer
type CounterPayload struct {
	Amount int64
	Equity float64
	Note   string
}

// ValidateCommitment checks the creation preconditions: a positive amount
// that does not exceed the investor's available funds.
func ValidateCommitment(amount int64, investor *models.Investor) error {
	if amount <= 0 {
		return apperrors.ValidationError("commitment amount must be positive", nil)
	}
	if amount > investor.Capacity.AvailableFunds {
		return apperrors.ValidationError(
			fmt.Sprintf("commitment amount %d exceeds available funds %d",
				amount, investor.Capacity.AvailableFunds), nil)
	}
	return nil
}

// RespondToCommitment applies the startup's response to a commitment in
// place, mutating the startup's fundraising tracker on accept. The terminal
// statuses converted, expired and withdrawn guard re-entry; a commitment past
// its expiry date refuses responses even before the sweep has flipped it.
//
// On accept the caller must persist the returned fundraising entry, the
// commitment and the startup inside one transaction.
func RespondToCommitment(
	commitment *models.SoftCommitment,
	startup *models.Startup,
	action CommitmentAction,
	payload CounterPayload,
	alreadyInvested bool,
	now time.Time,
) (*models.FundraisingEntry, error) {
	if commitment.IsTerminal() {
		return nil, apperrors.ValidationError(
			fmt.Sprintf("commitment is %s and accepts no further responses", commitment.Status), nil)
	}
	if commitment.IsExpired(now) {
		return nil, apperrors.ValidationError("commitment has expired", nil)
	}

	switch action {
	case CommitmentAccept:
		commitment.Status = models.CommitmentConverted
		commitment.UpdatedAt = now

		entry := &models.FundraisingEntry{
			StartupID:  commitment.StartupID,
			InvestorID: commitment.InvestorID,
			Amount:     commitment.Amount,
			Equity:     commitment.EquityExpected,
			Status:     models.FundraisingCommitted,
			CreatedAt:  now,
		}

		startup.FundraisingTracker.TotalRaised += commitment.Amount
		if !alreadyInvested {
			startup.FundraisingTracker.InvestorsCount++
		}
		ts := now
		startup.FundraisingTracker.LastUpdated = &ts
		startup.UpdatedAt = now

		return entry, nil

	case CommitmentCounter:
		// Status stays active; the counter history is an ordered list of
		// structured records, newest last.
		commitment.CounterOffers = append(commitment.CounterOffers, models.CounterOffer{
			Amount:    payload.Amount,
			Equity:    payload.Equity,
			Note:      payload.Note,
			CreatedAt: now,
		})
		commitment.UpdatedAt = now
		return nil, nil

	case CommitmentDecline:
		commitment.Status = models.CommitmentWithdrawn
		commitment.UpdatedAt = now
		return nil, nil

	default:
		return nil, apperrors.ValidationError(fmt.Sprintf("invalid commitment action %q", action), nil)
	}
}

// ExpireCommitment flips an active commitment past its expiry date to
// expired. Returns true when the status changed.
func ExpireCommitment(commitment *models.SoftCommitment, now time.Time) bool {
	if commitment.Status != models.CommitmentActive {
		return false
	}
	if !commitment.IsExpired(now) {
		return false
	}
	commitment.Status = models.CommitmentExpired
	commitment.UpdatedAt = now
	return true
}

// WithdrawCommitment is the investor-initiated exit from an active
// commitment.
func WithdrawCommitment(commitment *models.SoftCommitment, now time.Time) error {
	if commitment.IsTerminal() {
		return apperrors.ValidationError(
			fmt.Sprintf("commitment is %s and cannot be withdrawn", commitment.Status), nil)
	}
	commitment.Status = models.CommitmentWithdrawn
	commitment.UpdatedAt = now
	return nil
}
