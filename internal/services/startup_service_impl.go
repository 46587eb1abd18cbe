package services

import (
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/repository"
)

// startupServiceImpl implements StartupService
type startupServiceImpl struct {
	repos *repository.Repositories
}

// newStartupService creates a new startup service implementation
func newStartupService(repos *repository.Repositories) StartupService {
	return &startupServiceImpl{repos: repos}
}

// GetByID retrieves a startup by ID
func (s *startupServiceImpl) GetByID(id string) (*models.Startup, error) {
	startupID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ValidationError("invalid startup ID", err)
	}
	return s.repos.Startup.GetByID(startupID)
}

// GetByFounder retrieves the startups owned by a founder account
func (s *startupServiceImpl) GetByFounder(founderID string) ([]models.Startup, error) {
	id, err := uuid.Parse(founderID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid founder ID", err)
	}
	return s.repos.Startup.GetByFounder(id)
}

// Create creates a startup profile for a founder
func (s *startupServiceImpl) Create(founderID string, form *models.StartupForm) (*models.Startup, error) {
	id, err := uuid.Parse(founderID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid founder ID", err)
	}

	if err := validateStartupForm(form); err != nil {
		return nil, err
	}

	startup := &models.Startup{
		FounderID:       id,
		Name:            form.Name,
		Industry:        form.Industry,
		Stage:           form.Stage,
		AskAmount:       form.AskAmount,
		Timeline:        form.Timeline,
		UseOfFunds:      form.UseOfFunds,
		MonthlyRevenue:  form.MonthlyRevenue,
		GrowthRate:      form.GrowthRate,
		CustomerCount:   form.CustomerCount,
		TeamSize:        form.TeamSize,
		MarketSize:      form.MarketSize,
		Traction:        form.Traction,
		PubliclyVisible: form.PubliclyVisible,
	}

	if err := s.repos.Startup.Create(startup); err != nil {
		return nil, err
	}

	return startup, nil
}

// Update updates a startup; only the owning founder may do so
func (s *startupServiceImpl) Update(id, callerID string, form *models.StartupForm) (*models.Startup, error) {
	startup, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	caller, err := uuid.Parse(callerID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid caller ID", err)
	}
	if startup.FounderID != caller {
		return nil, apperrors.Forbidden("only the owning founder may update this startup", nil)
	}

	if err := validateStartupForm(form); err != nil {
		return nil, err
	}

	startup.Name = form.Name
	startup.Industry = form.Industry
	startup.Stage = form.Stage
	startup.AskAmount = form.AskAmount
	startup.Timeline = form.Timeline
	startup.UseOfFunds = form.UseOfFunds
	startup.MonthlyRevenue = form.MonthlyRevenue
	startup.GrowthRate = form.GrowthRate
	startup.CustomerCount = form.CustomerCount
	startup.TeamSize = form.TeamSize
	startup.MarketSize = form.MarketSize
	startup.Traction = form.Traction
	startup.PubliclyVisible = form.PubliclyVisible

	if err := s.repos.Startup.Update(startup); err != nil {
		return nil, err
	}

	return startup, nil
}

// GetActivity returns the latest investor interactions on a startup
func (s *startupServiceImpl) GetActivity(id string, limit int) ([]models.Interaction, error) {
	startupID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ValidationError("invalid startup ID", err)
	}
	if limit <= 0 {
		limit = 50
	}
	return s.repos.Interaction.GetByStartup(startupID, limit)
}

// GetFundraising returns a startup's fundraising entries
func (s *startupServiceImpl) GetFundraising(id string) ([]models.FundraisingEntry, error) {
	startupID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ValidationError("invalid startup ID", err)
	}
	return s.repos.Startup.GetFundraisingEntries(startupID)
}

func validateStartupForm(form *models.StartupForm) error {
	if !models.ValidIndustry(form.Industry) {
		return apperrors.ValidationError(fmt.Sprintf("unknown industry %q", form.Industry), nil)
	}
	if !models.ValidStage(form.Stage) {
		return apperrors.ValidationError(fmt.Sprintf("unknown stage %q", form.Stage), nil)
	}
	if form.AskAmount != 0 && !models.ValidTicketSize(form.AskAmount) {
		return apperrors.ValidationError(fmt.Sprintf("ask amount %d is not an allowed ticket size", form.AskAmount), nil)
	}
	return nil
}
