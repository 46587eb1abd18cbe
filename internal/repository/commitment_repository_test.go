package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
)

func commitmentRows(c *models.SoftCommitment) *sqlmock.Rows {
	offers, _ := c.CounterOffers.Value()
	return sqlmock.NewRows([]string{
		"id", "investor_id", "startup_id", "amount", "equity_expected", "conditions",
		"counter_offers", "expiry_date", "status", "created_at", "updated_at",
	}).AddRow(
		c.ID, c.InvestorID, c.StartupID, c.Amount, c.EquityExpected, c.Conditions,
		offers, c.ExpiryDate, c.Status, c.CreatedAt, c.UpdatedAt,
	)
}

func sampleCommitment() *models.SoftCommitment {
	now := time.Now()
	return &models.SoftCommitment{
		ID:             uuid.New(),
		InvestorID:     uuid.New(),
		StartupID:      uuid.New(),
		Amount:         250000,
		EquityExpected: 5.0,
		Conditions:     "standard terms",
		CounterOffers:  models.CounterOffers{{Amount: 200000, Equity: 4.0, CreatedAt: now}},
		ExpiryDate:     now.Add(30 * 24 * time.Hour),
		Status:         models.CommitmentActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestCommitmentGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	want := sampleCommitment()
	mock.ExpectQuery(`SELECT .+ FROM soft_commitments WHERE id = \$1`).
		WithArgs(want.ID).
		WillReturnRows(commitmentRows(want))

	repo := NewCommitmentRepository(db)
	got, err := repo.GetByID(want.ID)
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Amount, got.Amount)
	require.Len(t, got.CounterOffers, 1)
	assert.Equal(t, int64(200000), got.CounterOffers[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitmentGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM soft_commitments WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewCommitmentRepository(db)
	_, err = repo.GetByID(id)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitmentGetActiveExpiredBefore(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	lapsed := sampleCommitment()
	cutoff := time.Now()

	mock.ExpectQuery(`FROM soft_commitments\s+WHERE status = \$1 AND expiry_date < \$2`).
		WithArgs(models.CommitmentActive, cutoff, 500).
		WillReturnRows(commitmentRows(lapsed))

	repo := NewCommitmentRepository(db)
	due, err := repo.GetActiveExpiredBefore(cutoff, 500)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, lapsed.ID, due[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitmentHasConverted(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	investorID := uuid.New()
	startupID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(investorID, startupID, models.CommitmentConverted).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewCommitmentRepository(db)
	converted, err := repo.HasConverted(investorID, startupID)
	require.NoError(t, err)
	assert.True(t, converted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitmentCreateAssignsIDAndTimestamps(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO soft_commitments`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	commitment := &models.SoftCommitment{
		InvestorID: uuid.New(),
		StartupID:  uuid.New(),
		Amount:     100000,
		ExpiryDate: time.Now().Add(time.Hour),
		Status:     models.CommitmentActive,
	}

	repo := NewCommitmentRepository(db)
	require.NoError(t, repo.Create(commitment))

	assert.NotEqual(t, uuid.Nil, commitment.ID)
	assert.False(t, commitment.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitmentUpdateMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE soft_commitments SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewCommitmentRepository(db)
	err = repo.Update(sampleCommitment())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
