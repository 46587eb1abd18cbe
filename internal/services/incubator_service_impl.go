package services

import (
	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/repository"
)

// incubatorServiceImpl implements IncubatorService
type incubatorServiceImpl struct {
	repos *repository.Repositories
}

// newIncubatorService creates a new incubator service implementation
func newIncubatorService(repos *repository.Repositories) IncubatorService {
	return &incubatorServiceImpl{repos: repos}
}

// GetByID retrieves an incubator by ID
func (s *incubatorServiceImpl) GetByID(id string) (*models.Incubator, error) {
	incubatorID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ValidationError("invalid incubator ID", err)
	}
	return s.repos.Incubator.GetByID(incubatorID)
}

// GetByUser retrieves the incubator profile owned by a user account
func (s *incubatorServiceImpl) GetByUser(userID string) (*models.Incubator, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid user ID", err)
	}
	return s.repos.Incubator.GetByUser(id)
}
