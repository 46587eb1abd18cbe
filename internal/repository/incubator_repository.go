package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
)

// incubatorRepository implements IncubatorRepository
type incubatorRepository struct {
	db dbExecutor
}

// NewIncubatorRepository creates a new incubator repository
func NewIncubatorRepository(db dbExecutor) IncubatorRepository {
	return &incubatorRepository{db: db}
}

const incubatorColumns = `id, user_id, name, focus_areas, stats, created_at, updated_at`

func (r *incubatorRepository) getOne(query string, arg interface{}) (*models.Incubator, error) {
	inc := &models.Incubator{}
	err := r.db.QueryRow(query, arg).Scan(
		&inc.ID, &inc.UserID, &inc.Name, &inc.FocusAreas, &inc.Stats,
		&inc.CreatedAt, &inc.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("incubator not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get incubator", err)
	}
	return inc, nil
}

// GetByID retrieves an incubator by ID
func (r *incubatorRepository) GetByID(id uuid.UUID) (*models.Incubator, error) {
	return r.getOne(`SELECT `+incubatorColumns+` FROM incubators WHERE id = $1`, id)
}

// GetByUser retrieves the incubator profile owned by a user account
func (r *incubatorRepository) GetByUser(userID uuid.UUID) (*models.Incubator, error) {
	return r.getOne(`SELECT `+incubatorColumns+` FROM incubators WHERE user_id = $1`, userID)
}

// Create creates a new incubator profile
func (r *incubatorRepository) Create(incubator *models.Incubator) error {
	if incubator.ID == uuid.Nil {
		incubator.ID = uuid.New()
	}

	now := time.Now()
	incubator.CreatedAt = now
	incubator.UpdatedAt = now

	query := `
		INSERT INTO incubators (id, user_id, name, focus_areas, stats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query,
		incubator.ID, incubator.UserID, incubator.Name, incubator.FocusAreas,
		incubator.Stats, incubator.CreatedAt, incubator.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to create incubator", err)
	}

	return nil
}

// Update updates an existing incubator profile
func (r *incubatorRepository) Update(incubator *models.Incubator) error {
	incubator.UpdatedAt = time.Now()

	query := `
		UPDATE incubators SET name = $2, focus_areas = $3, stats = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		incubator.ID, incubator.Name, incubator.FocusAreas, incubator.Stats, incubator.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to update incubator", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("incubator not found", nil)
	}

	return nil
}
