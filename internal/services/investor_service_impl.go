package services

import (
	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/repository"
)

// investorServiceImpl implements InvestorService
type investorServiceImpl struct {
	repos *repository.Repositories
}

// newInvestorService creates a new investor service implementation
func newInvestorService(repos *repository.Repositories) InvestorService {
	return &investorServiceImpl{repos: repos}
}

// GetByID retrieves an investor by ID
func (s *investorServiceImpl) GetByID(id string) (*models.Investor, error) {
	investorID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ValidationError("invalid investor ID", err)
	}
	return s.repos.Investor.GetByID(investorID)
}

// GetByUser retrieves the investor profile owned by a user account
func (s *investorServiceImpl) GetByUser(userID string) (*models.Investor, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid user ID", err)
	}
	return s.repos.Investor.GetByUser(id)
}

// Create creates an investor profile for a user account
func (s *investorServiceImpl) Create(userID string, form *models.InvestorForm) (*models.Investor, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid user ID", err)
	}

	if form.MinInvestment < 0 || form.MaxInvestment < form.MinInvestment {
		return nil, apperrors.ValidationError("invalid investment bounds", nil)
	}

	investor := &models.Investor{
		UserID:              id,
		Name:                form.Name,
		PreferredIndustries: form.PreferredIndustries,
		PreferredStages:     form.PreferredStages,
		MinInvestment:       form.MinInvestment,
		MaxInvestment:       form.MaxInvestment,
		RiskProfile:         form.RiskProfile,
		Capacity: models.InvestmentCapacity{
			TotalFunds:     form.TotalFunds,
			AvailableFunds: form.TotalFunds,
		},
	}

	if err := s.repos.Investor.Create(investor); err != nil {
		return nil, err
	}

	return investor, nil
}

// Update updates an investor profile; only the owning account may do so
func (s *investorServiceImpl) Update(id, callerUserID string, form *models.InvestorForm) (*models.Investor, error) {
	investor, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	caller, err := uuid.Parse(callerUserID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid caller ID", err)
	}
	if investor.UserID != caller {
		return nil, apperrors.Forbidden("only the owning account may update this profile", nil)
	}

	if form.MinInvestment < 0 || form.MaxInvestment < form.MinInvestment {
		return nil, apperrors.ValidationError("invalid investment bounds", nil)
	}

	investor.Name = form.Name
	investor.PreferredIndustries = form.PreferredIndustries
	investor.PreferredStages = form.PreferredStages
	investor.MinInvestment = form.MinInvestment
	investor.MaxInvestment = form.MaxInvestment
	investor.RiskProfile = form.RiskProfile

	// Raising total funds raises headroom by the same delta; invested stays.
	if form.TotalFunds != investor.Capacity.TotalFunds {
		delta := form.TotalFunds - investor.Capacity.TotalFunds
		investor.Capacity.TotalFunds = form.TotalFunds
		investor.Capacity.AvailableFunds += delta
		if investor.Capacity.AvailableFunds < 0 {
			return nil, apperrors.ValidationError("total funds cannot drop below invested amount", nil)
		}
	}

	if err := s.repos.Investor.Update(investor); err != nil {
		return nil, err
	}

	return investor, nil
}
