package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
)

// introRepository implements IntroRepository
type introRepository struct {
	db dbExecutor
}

// NewIntroRepository creates a new intro-request repository
func NewIntroRepository(db dbExecutor) IntroRepository {
	return &introRepository{db: db}
}

const introColumns = `
	id, investor_id, startup_id, status, message, meeting_date, response_notes, created_at, updated_at`

func scanIntroRow(scan func(dest ...interface{}) error) (*models.IntroRequest, error) {
	req := &models.IntroRequest{}
	err := scan(
		&req.ID, &req.InvestorID, &req.StartupID, &req.Status, &req.Message,
		&req.MeetingDate, &req.ResponseNotes, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// GetByID retrieves an intro request by ID
func (r *introRepository) GetByID(id uuid.UUID) (*models.IntroRequest, error) {
	query := `SELECT ` + introColumns + ` FROM intro_requests WHERE id = $1`

	req, err := scanIntroRow(r.db.QueryRow(query, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("intro request not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get intro request", err)
	}
	return req, nil
}

// GetByInvestor retrieves an investor's intro requests, newest first
func (r *introRepository) GetByInvestor(investorID uuid.UUID) ([]models.IntroRequest, error) {
	query := `SELECT ` + introColumns + ` FROM intro_requests WHERE investor_id = $1 ORDER BY created_at DESC`
	return r.queryIntros(query, investorID)
}

// GetByStartup retrieves intro requests targeting a startup, newest first
func (r *introRepository) GetByStartup(startupID uuid.UUID) ([]models.IntroRequest, error) {
	query := `SELECT ` + introColumns + ` FROM intro_requests WHERE startup_id = $1 ORDER BY created_at DESC`
	return r.queryIntros(query, startupID)
}

// HasPending reports whether a pending request exists for the
// (investor, startup) pair
func (r *introRepository) HasPending(investorID, startupID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM intro_requests
			WHERE investor_id = $1 AND startup_id = $2 AND status = $3
		)
	`

	var exists bool
	err := r.db.QueryRow(query, investorID, startupID, models.IntroPending).Scan(&exists)
	if err != nil {
		return false, apperrors.DatabaseError("failed to check pending intro requests", err)
	}
	return exists, nil
}

func (r *introRepository) queryIntros(query string, args ...interface{}) ([]models.IntroRequest, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to query intro requests", err)
	}
	defer rows.Close()

	var reqs []models.IntroRequest
	for rows.Next() {
		req, err := scanIntroRow(rows.Scan)
		if err != nil {
			return nil, apperrors.DatabaseError("failed to scan intro request", err)
		}
		reqs = append(reqs, *req)
	}

	return reqs, rows.Err()
}

// Create creates a new intro request
func (r *introRepository) Create(req *models.IntroRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	query := `
		INSERT INTO intro_requests (
			id, investor_id, startup_id, status, message, meeting_date, response_notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(query,
		req.ID, req.InvestorID, req.StartupID, req.Status, req.Message,
		req.MeetingDate, req.ResponseNotes, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to create intro request", err)
	}

	return nil
}

// Update updates an existing intro request
func (r *introRepository) Update(req *models.IntroRequest) error {
	req.UpdatedAt = time.Now()

	query := `
		UPDATE intro_requests SET status = $2, meeting_date = $3, response_notes = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		req.ID, req.Status, req.MeetingDate, req.ResponseNotes, req.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to update intro request", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("intro request not found", nil)
	}

	return nil
}
