package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
)

// commitmentRepository implements CommitmentRepository
type commitmentRepository struct {
	db dbExecutor
}

// NewCommitmentRepository creates a new commitment repository
func NewCommitmentRepository(db dbExecutor) CommitmentRepository {
	return &commitmentRepository{db: db}
}

const commitmentColumns = `
	id, investor_id, startup_id, amount, equity_expected, conditions, counter_offers,
	expiry_date, status, created_at, updated_at`

func scanCommitmentRow(scan func(dest ...interface{}) error) (*models.SoftCommitment, error) {
	c := &models.SoftCommitment{}
	err := scan(
		&c.ID, &c.InvestorID, &c.StartupID, &c.Amount, &c.EquityExpected,
		&c.Conditions, &c.CounterOffers, &c.ExpiryDate, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID retrieves a commitment by ID
func (r *commitmentRepository) GetByID(id uuid.UUID) (*models.SoftCommitment, error) {
	query := `SELECT ` + commitmentColumns + ` FROM soft_commitments WHERE id = $1`

	c, err := scanCommitmentRow(r.db.QueryRow(query, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("commitment not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get commitment", err)
	}
	return c, nil
}

// GetByInvestor retrieves an investor's commitments, newest first
func (r *commitmentRepository) GetByInvestor(investorID uuid.UUID) ([]models.SoftCommitment, error) {
	query := `SELECT ` + commitmentColumns + ` FROM soft_commitments WHERE investor_id = $1 ORDER BY created_at DESC`
	return r.queryCommitments(query, investorID)
}

// GetByStartup retrieves all commitments pledged to a startup, newest first
func (r *commitmentRepository) GetByStartup(startupID uuid.UUID) ([]models.SoftCommitment, error) {
	query := `SELECT ` + commitmentColumns + ` FROM soft_commitments WHERE startup_id = $1 ORDER BY created_at DESC`
	return r.queryCommitments(query, startupID)
}

// GetActiveExpiredBefore retrieves active commitments whose expiry date has
// passed, for the sweep job
func (r *commitmentRepository) GetActiveExpiredBefore(cutoff time.Time, limit int) ([]models.SoftCommitment, error) {
	query := `SELECT ` + commitmentColumns + `
		FROM soft_commitments
		WHERE status = $1 AND expiry_date < $2
		ORDER BY expiry_date
		LIMIT $3`
	return r.queryCommitments(query, models.CommitmentActive, cutoff, limit)
}

// HasConverted reports whether the investor already has a converted
// commitment on the startup. Guards the investorsCount increment.
func (r *commitmentRepository) HasConverted(investorID, startupID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM soft_commitments
			WHERE investor_id = $1 AND startup_id = $2 AND status = $3
		)
	`

	var exists bool
	err := r.db.QueryRow(query, investorID, startupID, models.CommitmentConverted).Scan(&exists)
	if err != nil {
		return false, apperrors.DatabaseError("failed to check converted commitments", err)
	}
	return exists, nil
}

func (r *commitmentRepository) queryCommitments(query string, args ...interface{}) ([]models.SoftCommitment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to query commitments", err)
	}
	defer rows.Close()

	var commitments []models.SoftCommitment
	for rows.Next() {
		c, err := scanCommitmentRow(rows.Scan)
		if err != nil {
			return nil, apperrors.DatabaseError("failed to scan commitment", err)
		}
		commitments = append(commitments, *c)
	}

	return commitments, rows.Err()
}

// Create creates a new commitment
func (r *commitmentRepository) Create(commitment *models.SoftCommitment) error {
	if commitment.ID == uuid.Nil {
		commitment.ID = uuid.New()
	}

	now := time.Now()
	commitment.CreatedAt = now
	commitment.UpdatedAt = now

	query := `
		INSERT INTO soft_commitments (
			id, investor_id, startup_id, amount, equity_expected, conditions,
			counter_offers, expiry_date, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(query,
		commitment.ID, commitment.InvestorID, commitment.StartupID, commitment.Amount,
		commitment.EquityExpected, commitment.Conditions, commitment.CounterOffers,
		commitment.ExpiryDate, commitment.Status, commitment.CreatedAt, commitment.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to create commitment", err)
	}

	return nil
}

// Update updates an existing commitment
func (r *commitmentRepository) Update(commitment *models.SoftCommitment) error {
	commitment.UpdatedAt = time.Now()

	query := `
		UPDATE soft_commitments SET
			amount = $2, equity_expected = $3, conditions = $4, counter_offers = $5,
			expiry_date = $6, status = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		commitment.ID, commitment.Amount, commitment.EquityExpected, commitment.Conditions,
		commitment.CounterOffers, commitment.ExpiryDate, commitment.Status, commitment.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to update commitment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("commitment not found", nil)
	}

	return nil
}
