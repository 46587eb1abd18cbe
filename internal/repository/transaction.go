package repository

import (
	"database/sql"
	"fmt"
)

// transactionManager implements TransactionManager
type transactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *sql.DB) TransactionManager {
	return &transactionManager{db: db}
}

// WithTransaction executes a function within a database transaction. All
// multi-aggregate mutations (commitment conversion, funnel accept) go
// through here so the paired writes commit or roll back together.
func (tm *transactionManager) WithTransaction(fn func(repos *Repositories) error) error {
	tx, err := tm.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	repos := newRepositories(dbExecutor(tx), tm)

	err = fn(repos)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("transaction failed: %v, rollback failed: %w", err, rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// dbExecutor is an interface that both *sql.DB and *sql.Tx implement
type dbExecutor interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func newRepositories(db dbExecutor, tx TransactionManager) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Startup:     NewStartupRepository(db),
		Investor:    NewInvestorRepository(db),
		Incubator:   NewIncubatorRepository(db),
		Application: NewApplicationRepository(db),
		Commitment:  NewCommitmentRepository(db),
		Intro:       NewIntroRepository(db),
		Interaction: NewInteractionRepository(db),
		Tx:          tx,
	}
}

// NewRepositories creates a new repository collection
func NewRepositories(db *sql.DB) *Repositories {
	return newRepositories(dbExecutor(db), NewTransactionManager(db))
}
