package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/venturelink/venturelink-api/internal/dealflow"
	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/logger"
	"github.com/venturelink/venturelink-api/internal/metrics"
	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/repository"
)

// defaultCommitmentTTL is applied when the investor supplies no expiry date.
const defaultCommitmentTTL = 30 * 24 * time.Hour

// expirySweepBatch caps how many commitments one sweep pass flips.
const expirySweepBatch = 500

// commitmentServiceImpl implements CommitmentService
type commitmentServiceImpl struct {
	repos *repository.Repositories
	log   logger.Logger
}

// newCommitmentService creates a new commitment service implementation
func newCommitmentService(repos *repository.Repositories, log logger.Logger) CommitmentService {
	return &commitmentServiceImpl{repos: repos, log: log}
}

// Create records a soft commitment after the funds guard passes. The pledge
// is logged as a commit interaction in the same transaction.
func (s *commitmentServiceImpl) Create(investorUserID string, form *models.CommitmentForm) (*models.SoftCommitment, error) {
	investor, err := s.investorForUser(investorUserID)
	if err != nil {
		return nil, err
	}

	startupID, err := uuid.Parse(form.StartupID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid startup ID", err)
	}
	if _, err := s.repos.Startup.GetByID(startupID); err != nil {
		return nil, err
	}

	if err := dealflow.ValidateCommitment(form.Amount, investor); err != nil {
		return nil, err
	}

	expiry := time.Now().Add(defaultCommitmentTTL)
	if form.ExpiryDate != "" {
		parsed, err := time.Parse(time.RFC3339, form.ExpiryDate)
		if err != nil {
			return nil, apperrors.ValidationError("invalid expiry date, want RFC3339", err)
		}
		if parsed.Before(time.Now()) {
			return nil, apperrors.ValidationError("expiry date is in the past", nil)
		}
		expiry = parsed
	}

	commitment := &models.SoftCommitment{
		InvestorID:     investor.ID,
		StartupID:      startupID,
		Amount:         form.Amount,
		EquityExpected: form.EquityExpected,
		Conditions:     form.Conditions,
		ExpiryDate:     expiry,
		Status:         models.CommitmentActive,
	}

	err = s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		if err := repos.Commitment.Create(commitment); err != nil {
			return err
		}
		return repos.Interaction.Create(&models.Interaction{
			InvestorID: investor.ID,
			StartupID:  startupID,
			Type:       models.InteractionCommit,
			Metadata: models.InteractionMetadata{
				"commitment_id": commitment.ID.String(),
				"amount":        commitment.Amount,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.CommitmentTransitions.WithLabelValues("create").Inc()
	s.log.Info("soft commitment created",
		"commitment_id", commitment.ID, "investor_id", investor.ID,
		"startup_id", startupID, "amount", commitment.Amount)

	return commitment, nil
}

// Respond applies the startup's accept/counter/decline response. Acceptance
// converts the commitment, updates both parties' aggregates and logs an
// invest interaction, all inside one transaction.
func (s *commitmentServiceImpl) Respond(commitmentID, startupOwnerID string, form *models.CommitmentResponseForm) (*models.SoftCommitment, error) {
	action, err := dealflow.ParseCommitmentAction(form.Action)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(commitmentID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid commitment ID", err)
	}
	owner, err := uuid.Parse(startupOwnerID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid caller ID", err)
	}

	commitment, err := s.repos.Commitment.GetByID(id)
	if err != nil {
		return nil, err
	}

	startup, err := s.repos.Startup.GetByID(commitment.StartupID)
	if err != nil {
		return nil, err
	}
	if startup.FounderID != owner {
		return nil, apperrors.Forbidden("only the target startup may respond to this commitment", nil)
	}

	investor, err := s.repos.Investor.GetByID(commitment.InvestorID)
	if err != nil {
		return nil, err
	}

	alreadyInvested, err := s.repos.Commitment.HasConverted(commitment.InvestorID, commitment.StartupID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry, err := dealflow.RespondToCommitment(commitment, startup, action, dealflow.CounterPayload{
		Amount: form.Amount,
		Equity: form.Equity,
		Note:   form.Note,
	}, alreadyInvested, now)
	if err != nil {
		return nil, err
	}

	err = s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		if err := repos.Commitment.Update(commitment); err != nil {
			return err
		}

		if action != dealflow.CommitmentAccept {
			return nil
		}

		if err := repos.Startup.AddFundraisingEntry(entry); err != nil {
			return err
		}
		if err := repos.Startup.Update(startup); err != nil {
			return err
		}

		investor.Capacity.CurrentlyInvested += commitment.Amount
		investor.Capacity.AvailableFunds -= commitment.Amount
		if err := repos.Investor.Update(investor); err != nil {
			return err
		}

		return repos.Interaction.Create(&models.Interaction{
			InvestorID: commitment.InvestorID,
			StartupID:  commitment.StartupID,
			Type:       models.InteractionInvest,
			Metadata: models.InteractionMetadata{
				"commitment_id": commitment.ID.String(),
				"amount":        commitment.Amount,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.CommitmentTransitions.WithLabelValues(string(action)).Inc()
	s.log.Info("commitment response applied",
		"commitment_id", commitment.ID, "action", string(action), "status", commitment.Status)

	return commitment, nil
}

// Withdraw is the investor-initiated exit from an active commitment
func (s *commitmentServiceImpl) Withdraw(commitmentID, investorUserID string) (*models.SoftCommitment, error) {
	id, err := uuid.Parse(commitmentID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid commitment ID", err)
	}

	investor, err := s.investorForUser(investorUserID)
	if err != nil {
		return nil, err
	}

	commitment, err := s.repos.Commitment.GetByID(id)
	if err != nil {
		return nil, err
	}
	if commitment.InvestorID != investor.ID {
		return nil, apperrors.Forbidden("only the pledging investor may withdraw this commitment", nil)
	}

	if err := dealflow.WithdrawCommitment(commitment, time.Now()); err != nil {
		return nil, err
	}

	if err := s.repos.Commitment.Update(commitment); err != nil {
		return nil, err
	}

	metrics.CommitmentTransitions.WithLabelValues("withdraw").Inc()

	return commitment, nil
}

// GetByInvestor lists the caller's commitments
func (s *commitmentServiceImpl) GetByInvestor(investorUserID string) ([]models.SoftCommitment, error) {
	investor, err := s.investorForUser(investorUserID)
	if err != nil {
		return nil, err
	}
	return s.repos.Commitment.GetByInvestor(investor.ID)
}

// ExpireDue flips active commitments past their expiry date to expired and
// returns how many changed. Called by the sweep job.
func (s *commitmentServiceImpl) ExpireDue(now time.Time) (int, error) {
	due, err := s.repos.Commitment.GetActiveExpiredBefore(now, expirySweepBatch)
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range due {
		c := due[i]
		if !dealflow.ExpireCommitment(&c, now) {
			continue
		}
		if err := s.repos.Commitment.Update(&c); err != nil {
			return expired, err
		}
		expired++
		metrics.CommitmentsExpired.Inc()
	}

	return expired, nil
}

func (s *commitmentServiceImpl) investorForUser(investorUserID string) (*models.Investor, error) {
	userID, err := uuid.Parse(investorUserID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid user ID", err)
	}
	return s.repos.Investor.GetByUser(userID)
}
