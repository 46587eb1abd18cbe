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

// introServiceImpl implements IntroService
type introServiceImpl struct {
	repos *repository.Repositories
	log   logger.Logger
}

// newIntroService creates a new intro service implementation
func newIntroService(repos *repository.Repositories, log logger.Logger) IntroService {
	return &introServiceImpl{repos: repos, log: log}
}

// Create submits an intro request. Only one pending request may exist per
// (investor, startup) pair.
func (s *introServiceImpl) Create(investorUserID string, form *models.IntroRequestForm) (*models.IntroRequest, error) {
	userID, err := uuid.Parse(investorUserID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid user ID", err)
	}
	investor, err := s.repos.Investor.GetByUser(userID)
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

	pending, err := s.repos.Intro.HasPending(investor.ID, startupID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperrors.Conflict("a pending intro request for this startup already exists", nil)
	}

	req := &models.IntroRequest{
		InvestorID: investor.ID,
		StartupID:  startupID,
		Status:     models.IntroPending,
		Message:    form.Message,
	}

	err = s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		if err := repos.Intro.Create(req); err != nil {
			return err
		}
		return repos.Interaction.Create(&models.Interaction{
			InvestorID: investor.ID,
			StartupID:  startupID,
			Type:       models.InteractionIntro,
			Metadata: models.InteractionMetadata{
				"intro_request_id": req.ID.String(),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.IntroTransitions.WithLabelValues("create").Inc()
	s.log.Info("intro request created",
		"intro_request_id", req.ID, "investor_id", investor.ID, "startup_id", startupID)

	return req, nil
}

// Respond applies the startup's response to an intro request
func (s *introServiceImpl) Respond(introID, startupOwnerID string, form *models.IntroResponseForm) (*models.IntroRequest, error) {
	action, err := dealflow.ParseIntroAction(form.Action)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(introID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid intro request ID", err)
	}
	owner, err := uuid.Parse(startupOwnerID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid caller ID", err)
	}

	req, err := s.repos.Intro.GetByID(id)
	if err != nil {
		return nil, err
	}

	startup, err := s.repos.Startup.GetByID(req.StartupID)
	if err != nil {
		return nil, err
	}
	if startup.FounderID != owner {
		return nil, apperrors.Forbidden("only the target startup may respond to this request", nil)
	}

	var meetingDate *time.Time
	if form.MeetingDate != "" {
		parsed, err := time.Parse(time.RFC3339, form.MeetingDate)
		if err != nil {
			return nil, apperrors.ValidationError("invalid meeting date, want RFC3339", err)
		}
		meetingDate = &parsed
	}

	if err := dealflow.RespondToIntro(req, action, meetingDate, form.Notes, time.Now()); err != nil {
		return nil, err
	}

	if err := s.repos.Intro.Update(req); err != nil {
		return nil, err
	}

	metrics.IntroTransitions.WithLabelValues(string(action)).Inc()
	s.log.Info("intro request transitioned",
		"intro_request_id", req.ID, "action", string(action), "status", req.Status)

	return req, nil
}

// GetByInvestor lists the caller's intro requests
func (s *introServiceImpl) GetByInvestor(investorUserID string) ([]models.IntroRequest, error) {
	userID, err := uuid.Parse(investorUserID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid user ID", err)
	}
	investor, err := s.repos.Investor.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.repos.Intro.GetByInvestor(investor.ID)
}
