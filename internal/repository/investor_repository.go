package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
)

// investorRepository implements InvestorRepository
type investorRepository struct {
	db dbExecutor
}

// NewInvestorRepository creates a new investor repository
func NewInvestorRepository(db dbExecutor) InvestorRepository {
	return &investorRepository{db: db}
}

const investorColumns = `
	id, user_id, name, preferred_industries, preferred_stages, min_investment,
	max_investment, risk_profile, capacity, created_at, updated_at`

func (r *investorRepository) getOne(query string, arg interface{}) (*models.Investor, error) {
	inv := &models.Investor{}
	err := r.db.QueryRow(query, arg).Scan(
		&inv.ID, &inv.UserID, &inv.Name, &inv.PreferredIndustries, &inv.PreferredStages,
		&inv.MinInvestment, &inv.MaxInvestment, &inv.RiskProfile, &inv.Capacity,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("investor not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get investor", err)
	}
	return inv, nil
}

// GetByID retrieves an investor by ID
func (r *investorRepository) GetByID(id uuid.UUID) (*models.Investor, error) {
	return r.getOne(`SELECT `+investorColumns+` FROM investors WHERE id = $1`, id)
}

// GetByUser retrieves the investor profile owned by a user account
func (r *investorRepository) GetByUser(userID uuid.UUID) (*models.Investor, error) {
	return r.getOne(`SELECT `+investorColumns+` FROM investors WHERE user_id = $1`, userID)
}

// Create creates a new investor profile
func (r *investorRepository) Create(investor *models.Investor) error {
	if investor.ID == uuid.Nil {
		investor.ID = uuid.New()
	}

	now := time.Now()
	investor.CreatedAt = now
	investor.UpdatedAt = now

	query := `
		INSERT INTO investors (
			id, user_id, name, preferred_industries, preferred_stages, min_investment,
			max_investment, risk_profile, capacity, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(query,
		investor.ID, investor.UserID, investor.Name, investor.PreferredIndustries,
		investor.PreferredStages, investor.MinInvestment, investor.MaxInvestment,
		investor.RiskProfile, investor.Capacity, investor.CreatedAt, investor.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to create investor", err)
	}

	return nil
}

// Update updates an existing investor profile
func (r *investorRepository) Update(investor *models.Investor) error {
	investor.UpdatedAt = time.Now()

	query := `
		UPDATE investors SET
			name = $2, preferred_industries = $3, preferred_stages = $4,
			min_investment = $5, max_investment = $6, risk_profile = $7,
			capacity = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		investor.ID, investor.Name, investor.PreferredIndustries, investor.PreferredStages,
		investor.MinInvestment, investor.MaxInvestment, investor.RiskProfile,
		investor.Capacity, investor.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to update investor", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("investor not found", nil)
	}

	return nil
}
