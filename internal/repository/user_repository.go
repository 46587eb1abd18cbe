package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
)

// userRepository implements UserRepository
type userRepository struct {
	db dbExecutor
}

// NewUserRepository creates a new user repository
func NewUserRepository(db dbExecutor) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, role, is_active, activation_token, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role,
		&user.IsActive, &user.ActivationToken, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("user not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get user", err)
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(query, id))
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(query, email))
}

// Create creates a new user
func (r *userRepository) Create(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, password_hash, role, is_active, activation_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(query,
		user.ID, user.Email, user.PasswordHash, user.Role,
		user.IsActive, user.ActivationToken, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to create user", err)
	}

	return nil
}

// Update updates an existing user
func (r *userRepository) Update(user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `
		UPDATE users SET
			email = $2, password_hash = $3, role = $4, is_active = $5,
			activation_token = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		user.ID, user.Email, user.PasswordHash, user.Role,
		user.IsActive, user.ActivationToken, user.UpdatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to update user", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("user not found", nil)
	}

	return nil
}
