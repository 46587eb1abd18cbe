package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
)

// applicationRepository implements ApplicationRepository
type applicationRepository struct {
	db dbExecutor
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db dbExecutor) ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `
	id, startup_id, incubator_id, status, funnel_timestamps, review_info, created_at, updated_at`

func scanApplicationRow(scan func(dest ...interface{}) error) (*models.Application, error) {
	app := &models.Application{}
	err := scan(
		&app.ID, &app.StartupID, &app.IncubatorID, &app.Status,
		&app.FunnelTimestamps, &app.ReviewInfo, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// GetByID retrieves an application by ID
func (r *applicationRepository) GetByID(id uuid.UUID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	app, err := scanApplicationRow(r.db.QueryRow(query, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("application not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get application", err)
	}
	return app, nil
}

// GetByPair retrieves the application for a (startup, incubator) pair
func (r *applicationRepository) GetByPair(startupID, incubatorID uuid.UUID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE startup_id = $1 AND incubator_id = $2`

	app, err := scanApplicationRow(r.db.QueryRow(query, startupID, incubatorID).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("application not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get application", err)
	}
	return app, nil
}

// GetByIncubator retrieves all applications for an incubator program
func (r *applicationRepository) GetByIncubator(incubatorID uuid.UUID) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE incubator_id = $1 ORDER BY created_at`
	return r.queryApplications(query, incubatorID)
}

// GetByStartup retrieves all applications submitted by a startup
func (r *applicationRepository) GetByStartup(startupID uuid.UUID) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE startup_id = $1 ORDER BY created_at`
	return r.queryApplications(query, startupID)
}

func (r *applicationRepository) queryApplications(query string, args ...interface{}) ([]models.Application, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to query applications", err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		app, err := scanApplicationRow(rows.Scan)
		if err != nil {
			return nil, apperrors.DatabaseError("failed to scan application", err)
		}
		apps = append(apps, *app)
	}

	return apps, rows.Err()
}

// Create creates a new application
func (r *applicationRepository) Create(app *models.Application) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now

	query := `
		INSERT INTO applications (
			id, startup_id, incubator_id, status, funnel_timestamps, review_info, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(query,
		app.ID, app.StartupID, app.IncubatorID, app.Status,
		app.FunnelTimestamps, app.ReviewInfo, app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to create application", err)
	}

	return nil
}

// Update updates an existing application
func (r *applicationRepository) Update(app *models.Application) error {
	app.UpdatedAt = time.Now()

	query := `
		UPDATE applications SET status = $2, funnel_timestamps = $3, review_info = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		app.ID, app.Status, app.FunnelTimestamps, app.ReviewInfo, app.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to update application", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("application not found", nil)
	}

	return nil
}
