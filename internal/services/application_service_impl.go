package services

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/funnel"
	"github.com/venturelink/venturelink-api/internal/logger"
	"github.com/venturelink/venturelink-api/internal/metrics"
	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/repository"
)

// applicationServiceImpl implements ApplicationService
type applicationServiceImpl struct {
	repos *repository.Repositories
	log   logger.Logger
}

// newApplicationService creates a new application service implementation
func newApplicationService(repos *repository.Repositories, log logger.Logger) ApplicationService {
	return &applicationServiceImpl{repos: repos, log: log}
}

// Create submits a startup's application to an incubator. One application
// may exist per (startup, incubator) pair.
func (s *applicationServiceImpl) Create(callerUserID string, form *models.ApplicationForm) (*models.Application, error) {
	startupID, err := uuid.Parse(form.StartupID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid startup ID", err)
	}
	incubatorID, err := uuid.Parse(form.IncubatorID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid incubator ID", err)
	}
	caller, err := uuid.Parse(callerUserID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid caller ID", err)
	}

	startup, err := s.repos.Startup.GetByID(startupID)
	if err != nil {
		return nil, err
	}
	if startup.FounderID != caller {
		return nil, apperrors.Forbidden("only the owning founder may apply", nil)
	}

	incubator, err := s.repos.Incubator.GetByID(incubatorID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repos.Application.GetByPair(startupID, incubatorID); err == nil && existing != nil {
		return nil, apperrors.Conflict("an application for this startup and incubator already exists", nil)
	}

	now := time.Now()
	app := &models.Application{
		StartupID:   startupID,
		IncubatorID: incubatorID,
		Status:      models.ApplicationApplied,
		FunnelTimestamps: models.FunnelTimestamps{
			AppliedAt: &now,
		},
	}

	err = s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		if err := repos.Application.Create(app); err != nil {
			return err
		}
		incubator.Stats.TotalApplications++
		return repos.Incubator.Update(incubator)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("application submitted",
		"application_id", app.ID, "startup_id", startupID, "incubator_id", incubatorID)

	return app, nil
}

// ApplyAction applies a reviewer action to an application. The accept action
// also increments the incubator's startup counters; both writes share one
// transaction.
func (s *applicationServiceImpl) ApplyAction(applicationID, reviewerUserID string, form *models.ApplicationActionForm) (*models.Application, error) {
	action, err := funnel.ParseAction(form.Action)
	if err != nil {
		return nil, err
	}

	appID, err := uuid.Parse(applicationID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid application ID", err)
	}
	reviewerID, err := uuid.Parse(reviewerUserID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid reviewer ID", err)
	}

	app, err := s.repos.Application.GetByID(appID)
	if err != nil {
		return nil, err
	}

	incubator, err := s.repos.Incubator.GetByID(app.IncubatorID)
	if err != nil {
		return nil, err
	}
	if incubator.UserID != reviewerID {
		return nil, apperrors.Forbidden("only the owning incubator may review this application", nil)
	}

	if err := funnel.Transition(app, action, reviewerID, form.Notes, time.Now()); err != nil {
		return nil, err
	}

	err = s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		if err := repos.Application.Update(app); err != nil {
			return err
		}
		if action == funnel.ActionAccept {
			incubator.Stats.ActiveStartups++
			incubator.Stats.TotalStartups++
			return repos.Incubator.Update(incubator)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.FunnelTransitions.WithLabelValues(string(action)).Inc()
	s.log.Info("application transitioned",
		"application_id", app.ID, "action", string(action), "status", app.Status)

	return app, nil
}

// GetByIncubator lists the applications for the caller's incubator
func (s *applicationServiceImpl) GetByIncubator(incubatorUserID string) ([]models.Application, error) {
	incubator, err := s.incubatorForUser(incubatorUserID)
	if err != nil {
		return nil, err
	}
	return s.repos.Application.GetByIncubator(incubator.ID)
}

// FunnelAnalytics computes funnel counts and conversion rates for the
// caller's incubator
func (s *applicationServiceImpl) FunnelAnalytics(incubatorUserID string) (*funnel.Analytics, error) {
	apps, err := s.GetByIncubator(incubatorUserID)
	if err != nil {
		return nil, err
	}

	analytics := funnel.ComputeAnalytics(apps)
	return &analytics, nil
}

func (s *applicationServiceImpl) incubatorForUser(incubatorUserID string) (*models.Incubator, error) {
	userID, err := uuid.Parse(incubatorUserID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid user ID", err)
	}
	return s.repos.Incubator.GetByUser(userID)
}
