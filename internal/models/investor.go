package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Investor represents an investor profile with preferences and capacity
type Investor struct {
	ID                  uuid.UUID          `json:"id" db:"id"`
	UserID              uuid.UUID          `json:"user_id" db:"user_id"`
	Name                string             `json:"name" db:"name"`
	PreferredIndustries StringList         `json:"preferred_industries" db:"preferred_industries"`
	PreferredStages     StringList         `json:"preferred_stages" db:"preferred_stages"`
	MinInvestment       int64              `json:"min_investment" db:"min_investment"`
	MaxInvestment       int64              `json:"max_investment" db:"max_investment"`
	RiskProfile         string             `json:"risk_profile" db:"risk_profile"`
	Capacity            InvestmentCapacity `json:"capacity" db:"capacity"`
	CreatedAt           time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at" db:"updated_at"`
}

// Risk profiles
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

// InvestmentCapacity tracks an investor's fund position
type InvestmentCapacity struct {
	TotalFunds        int64 `json:"total_funds"`
	CurrentlyInvested int64 `json:"currently_invested"`
	AvailableFunds    int64 `json:"available_funds"`
}

// Value implements driver.Valuer for InvestmentCapacity
func (c InvestmentCapacity) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for InvestmentCapacity
func (c *InvestmentCapacity) Scan(value interface{}) error {
	if value == nil {
		*c = InvestmentCapacity{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into InvestmentCapacity", value)
	}

	return json.Unmarshal(bytes, c)
}

// StringList stores a JSON array of strings in a single column
type StringList []string

// Value implements driver.Valuer for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for StringList
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	return json.Unmarshal(bytes, l)
}

// Contains reports whether the list contains s
func (l StringList) Contains(s string) bool {
	for _, item := range l {
		if item == s {
			return true
		}
	}
	return false
}

// InvestorForm represents an investor profile create/update request
type InvestorForm struct {
	Name                string   `json:"name" binding:"required"`
	PreferredIndustries []string `json:"preferred_industries"`
	PreferredStages     []string `json:"preferred_stages"`
	MinInvestment       int64    `json:"min_investment"`
	MaxInvestment       int64    `json:"max_investment"`
	RiskProfile         string   `json:"risk_profile"`
	TotalFunds          int64    `json:"total_funds"`
}
