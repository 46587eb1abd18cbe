package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
)

// startupRepository implements StartupRepository
type startupRepository struct {
	db dbExecutor
}

// NewStartupRepository creates a new startup repository
func NewStartupRepository(db dbExecutor) StartupRepository {
	return &startupRepository{db: db}
}

const startupColumns = `
	id, founder_id, name, industry, stage, ask_amount, timeline, use_of_funds,
	monthly_revenue, growth_rate, customer_count, team_size, market_size, traction,
	publicly_visible, verified, imported, fundraising_tracker, created_at, updated_at`

func scanStartupRow(scan func(dest ...interface{}) error) (*models.Startup, error) {
	s := &models.Startup{}
	err := scan(
		&s.ID, &s.FounderID, &s.Name, &s.Industry, &s.Stage, &s.AskAmount,
		&s.Timeline, &s.UseOfFunds, &s.MonthlyRevenue, &s.GrowthRate,
		&s.CustomerCount, &s.TeamSize, &s.MarketSize, &s.Traction,
		&s.PubliclyVisible, &s.Verified, &s.Imported, &s.FundraisingTracker,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID retrieves a startup by ID
func (r *startupRepository) GetByID(id uuid.UUID) (*models.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE id = $1`

	row := r.db.QueryRow(query, id)
	startup, err := scanStartupRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("startup not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get startup", err)
	}
	return startup, nil
}

// GetByFounder retrieves all startups owned by a founder account
func (r *startupRepository) GetByFounder(founderID uuid.UUID) ([]models.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE founder_id = $1 ORDER BY created_at`
	return r.queryStartups(query, founderID)
}

// GetVisible retrieves the full pool of publicly visible startups in stable
// creation order. The ranker depends on this order for tie-breaking.
func (r *startupRepository) GetVisible() ([]models.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE publicly_visible = true ORDER BY created_at`
	return r.queryStartups(query)
}

func (r *startupRepository) queryStartups(query string, args ...interface{}) ([]models.Startup, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to query startups", err)
	}
	defer rows.Close()

	var startups []models.Startup
	for rows.Next() {
		startup, err := scanStartupRow(rows.Scan)
		if err != nil {
			return nil, apperrors.DatabaseError("failed to scan startup", err)
		}
		startups = append(startups, *startup)
	}

	return startups, rows.Err()
}

// Create creates a new startup
func (r *startupRepository) Create(startup *models.Startup) error {
	if startup.ID == uuid.Nil {
		startup.ID = uuid.New()
	}

	now := time.Now()
	startup.CreatedAt = now
	startup.UpdatedAt = now

	query := `
		INSERT INTO startups (
			id, founder_id, name, industry, stage, ask_amount, timeline, use_of_funds,
			monthly_revenue, growth_rate, customer_count, team_size, market_size, traction,
			publicly_visible, verified, imported, fundraising_tracker, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
	`

	_, err := r.db.Exec(query,
		startup.ID, startup.FounderID, startup.Name, startup.Industry, startup.Stage,
		startup.AskAmount, startup.Timeline, startup.UseOfFunds, startup.MonthlyRevenue,
		startup.GrowthRate, startup.CustomerCount, startup.TeamSize, startup.MarketSize,
		startup.Traction, startup.PubliclyVisible, startup.Verified, startup.Imported,
		startup.FundraisingTracker, startup.CreatedAt, startup.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to create startup", err)
	}

	return nil
}

// Update updates an existing startup
func (r *startupRepository) Update(startup *models.Startup) error {
	startup.UpdatedAt = time.Now()

	query := `
		UPDATE startups SET
			name = $2, industry = $3, stage = $4, ask_amount = $5, timeline = $6,
			use_of_funds = $7, monthly_revenue = $8, growth_rate = $9, customer_count = $10,
			team_size = $11, market_size = $12, traction = $13, publicly_visible = $14,
			verified = $15, imported = $16, fundraising_tracker = $17, updated_at = $18
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		startup.ID, startup.Name, startup.Industry, startup.Stage, startup.AskAmount,
		startup.Timeline, startup.UseOfFunds, startup.MonthlyRevenue, startup.GrowthRate,
		startup.CustomerCount, startup.TeamSize, startup.MarketSize, startup.Traction,
		startup.PubliclyVisible, startup.Verified, startup.Imported,
		startup.FundraisingTracker, startup.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to update startup", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("startup not found", nil)
	}

	return nil
}

// AddFundraisingEntry appends a fundraising record for a startup
func (r *startupRepository) AddFundraisingEntry(entry *models.FundraisingEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO fundraising_entries (id, startup_id, investor_id, amount, equity, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query,
		entry.ID, entry.StartupID, entry.InvestorID, entry.Amount,
		entry.Equity, entry.Status, entry.CreatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to add fundraising entry", err)
	}

	return nil
}

// GetFundraisingEntries returns a startup's fundraising records, newest first
func (r *startupRepository) GetFundraisingEntries(startupID uuid.UUID) ([]models.FundraisingEntry, error) {
	query := `
		SELECT id, startup_id, investor_id, amount, equity, status, created_at
		FROM fundraising_entries WHERE startup_id = $1 ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, startupID)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to query fundraising entries", err)
	}
	defer rows.Close()

	var entries []models.FundraisingEntry
	for rows.Next() {
		var e models.FundraisingEntry
		err := rows.Scan(&e.ID, &e.StartupID, &e.InvestorID, &e.Amount, &e.Equity, &e.Status, &e.CreatedAt)
		if err != nil {
			return nil, apperrors.DatabaseError("failed to scan fundraising entry", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
