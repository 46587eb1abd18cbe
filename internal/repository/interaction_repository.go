package repository

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
)

// interactionRepository implements InteractionRepository
type interactionRepository struct {
	db dbExecutor
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db dbExecutor) InteractionRepository {
	return &interactionRepository{db: db}
}

// Create appends one interaction event
func (r *interactionRepository) Create(interaction *models.Interaction) error {
	if interaction.ID == uuid.Nil {
		interaction.ID = uuid.New()
	}
	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO interactions (id, investor_id, startup_id, type, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(query,
		interaction.ID, interaction.InvestorID, interaction.StartupID,
		interaction.Type, interaction.Metadata, interaction.CreatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to create interaction", err)
	}

	return nil
}

// GetByStartup returns the last N interactions on a startup, newest first
func (r *interactionRepository) GetByStartup(startupID uuid.UUID, limit int) ([]models.Interaction, error) {
	query := `
		SELECT id, investor_id, startup_id, type, metadata, created_at
		FROM interactions WHERE startup_id = $1 ORDER BY created_at DESC LIMIT $2
	`
	return r.queryInteractions(query, startupID, limit)
}

// GetByInvestor returns the last N interactions made by an investor, newest first
func (r *interactionRepository) GetByInvestor(investorID uuid.UUID, limit int) ([]models.Interaction, error) {
	query := `
		SELECT id, investor_id, startup_id, type, metadata, created_at
		FROM interactions WHERE investor_id = $1 ORDER BY created_at DESC LIMIT $2
	`
	return r.queryInteractions(query, investorID, limit)
}

func (r *interactionRepository) queryInteractions(query string, args ...interface{}) ([]models.Interaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to query interactions", err)
	}
	defer rows.Close()

	var interactions []models.Interaction
	for rows.Next() {
		var i models.Interaction
		err := rows.Scan(&i.ID, &i.InvestorID, &i.StartupID, &i.Type, &i.Metadata, &i.CreatedAt)
		if err != nil {
			return nil, apperrors.DatabaseError("failed to scan interaction", err)
		}
		interactions = append(interactions, i)
	}

	return interactions, rows.Err()
}
