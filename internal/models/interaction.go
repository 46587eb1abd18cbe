package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Interaction records one investor action against a startup. A single table
// serves both the startup's activity feed and the investor's interaction
// history, so both sides read the same row.
type Interaction struct {
	ID         uuid.UUID           `json:"id" db:"id"`
	InvestorID uuid.UUID           `json:"investor_id" db:"investor_id"`
	StartupID  uuid.UUID           `json:"startup_id" db:"startup_id"`
	Type       string              `json:"type" db:"type"`
	Metadata   InteractionMetadata `json:"metadata" db:"metadata"`
	CreatedAt  time.Time           `json:"created_at" db:"created_at"`
}

// Interaction types
const (
	InteractionView   = "view"
	InteractionSave   = "save"
	InteractionIntro  = "intro"
	InteractionCommit = "commit"
	InteractionInvest = "invest"
	InteractionPass   = "pass"
)

// InteractionMetadata carries free-form event details as JSON
type InteractionMetadata map[string]interface{}

// Value implements driver.Valuer for InteractionMetadata
func (m InteractionMetadata) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]interface{}{})
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for InteractionMetadata
func (m *InteractionMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = InteractionMetadata{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into InteractionMetadata", value)
	}

	return json.Unmarshal(bytes, m)
}
