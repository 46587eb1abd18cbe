package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Incubator represents an incubator program profile
type Incubator struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	UserID     uuid.UUID      `json:"user_id" db:"user_id"`
	Name       string         `json:"name" db:"name"`
	FocusAreas StringList     `json:"focus_areas" db:"focus_areas"`
	Stats      IncubatorStats `json:"stats" db:"stats"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
}

// IncubatorStats aggregates program membership counters
type IncubatorStats struct {
	ActiveStartups    int `json:"active_startups"`
	TotalStartups     int `json:"total_startups"`
	TotalApplications int `json:"total_applications"`
}

// Value implements driver.Valuer for IncubatorStats
func (s IncubatorStats) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for IncubatorStats
func (s *IncubatorStats) Scan(value interface{}) error {
	if value == nil {
		*s = IncubatorStats{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into IncubatorStats", value)
	}

	return json.Unmarshal(bytes, s)
}
