package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/venturelink/venturelink-api/internal/auth"
	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/logger"
	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/repository"
)

// maxImportRows caps a single import batch
const maxImportRows = 10000

// ImportSummary reports the outcome of a bulk import run
type ImportSummary struct {
	Total    int      `json:"total"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// importServiceImpl implements ImportService
type importServiceImpl struct {
	repos *repository.Repositories
	log   logger.Logger
}

// newImportService creates a new import service implementation
func newImportService(repos *repository.Repositories, log logger.Logger) ImportService {
	return &importServiceImpl{repos: repos, log: log}
}

// importRow is one parsed CSV line
type importRow struct {
	email     string
	name      string
	industry  string
	stage     string
	askAmount int64
}

// ImportCSV ingests startups from a CSV stream. Expected columns:
// email, name, industry, stage, ask_amount. Each row creates an inactive
// founder account with an activation token plus an imported startup profile.
// Rows with an already-registered email are skipped.
func (s *importServiceImpl) ImportCSV(r io.Reader) (*ImportSummary, error) {
	rows, err := s.parseCSV(r)
	if err != nil {
		return nil, apperrors.ValidationError("failed to parse CSV", err)
	}

	if len(rows) == 0 {
		return nil, apperrors.ValidationError("CSV file contains no valid rows", nil)
	}
	if len(rows) > maxImportRows {
		return nil, apperrors.ValidationError(
			fmt.Sprintf("too many rows, maximum %d allowed per import", maxImportRows), nil)
	}

	summary := &ImportSummary{Total: len(rows)}

	for i, row := range rows {
		if err := s.importOne(row); err != nil {
			if apperrors.HasCode(err, apperrors.ErrCodeConflict) {
				summary.Skipped++
				continue
			}
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d (%s): %v", i+1, row.email, err))
			continue
		}
		summary.Imported++
	}

	s.log.Info("import completed",
		"total", summary.Total, "imported", summary.Imported,
		"skipped", summary.Skipped, "errors", len(summary.Errors))

	return summary, nil
}

// importOne creates the user and startup for a single row in one transaction
func (s *importServiceImpl) importOne(row importRow) error {
	if _, err := s.repos.User.GetByEmail(row.email); err == nil {
		return apperrors.Conflict("email already registered", nil)
	} else if !apperrors.HasCode(err, apperrors.ErrCodeNotFound) {
		return err
	}

	token, err := auth.NewActivationToken()
	if err != nil {
		return err
	}

	user := &models.User{
		Email:           row.email,
		Role:            string(models.RoleFounder),
		IsActive:        false,
		ActivationToken: token,
	}
	startup := &models.Startup{
		Name:            row.name,
		Industry:        row.industry,
		Stage:           row.stage,
		AskAmount:       row.askAmount,
		PubliclyVisible: true,
		Imported:        true,
	}

	return s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		if err := repos.User.Create(user); err != nil {
			return err
		}
		startup.FounderID = user.ID
		return repos.Startup.Create(startup)
	})
}

// parseCSV extracts import rows from a CSV stream
func (s *importServiceImpl) parseCSV(r io.Reader) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	var rows []importRow
	seen := make(map[string]bool)

	for i, record := range records {
		if len(record) == 0 {
			continue
		}

		email := strings.ToLower(strings.TrimSpace(record[0]))

		// Skip empty rows and the header line
		if email == "" || email == "email" {
			continue
		}
		if !strings.Contains(email, "@") {
			return nil, fmt.Errorf("invalid email '%s' on line %d", email, i+1)
		}
		if len(record) < 5 {
			return nil, fmt.Errorf("expected 5 columns on line %d, got %d", i+1, len(record))
		}

		name := strings.TrimSpace(record[1])
		if name == "" {
			return nil, fmt.Errorf("missing startup name on line %d", i+1)
		}

		industry := strings.TrimSpace(record[2])
		if industry != "" && !models.ValidIndustry(industry) {
			return nil, fmt.Errorf("unknown industry '%s' on line %d", industry, i+1)
		}

		stage := strings.TrimSpace(record[3])
		if stage != "" && !models.ValidStage(stage) {
			return nil, fmt.Errorf("unknown stage '%s' on line %d", stage, i+1)
		}

		var askAmount int64
		if raw := strings.TrimSpace(record[4]); raw != "" {
			askAmount, err = strconv.ParseInt(raw, 10, 64)
			if err != nil || askAmount < 0 {
				return nil, fmt.Errorf("invalid ask amount '%s' on line %d", raw, i+1)
			}
		}

		// Duplicate emails within the file collapse to the first row
		if seen[email] {
			continue
		}
		seen[email] = true

		rows = append(rows, importRow{
			email:     email,
			name:      name,
			industry:  industry,
			stage:     stage,
			askAmount: askAmount,
		})
	}

	return rows, nil
}
