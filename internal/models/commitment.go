package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SoftCommitment is a non-binding pledge of funds from an investor to a
// startup, convertible to a recorded investment.
type SoftCommitment struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	InvestorID     uuid.UUID     `json:"investor_id" db:"investor_id"`
	StartupID      uuid.UUID     `json:"startup_id" db:"startup_id"`
	Amount         int64         `json:"amount" db:"amount"`
	EquityExpected float64       `json:"equity_expected" db:"equity_expected"`
	Conditions     string        `json:"conditions" db:"conditions"`
	CounterOffers  CounterOffers `json:"counter_offers" db:"counter_offers"`
	ExpiryDate     time.Time     `json:"expiry_date" db:"expiry_date"`
	Status         string        `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

// Soft commitment statuses
const (
	CommitmentActive    = "active"
	CommitmentConverted = "converted"
	CommitmentExpired   = "expired"
	CommitmentWithdrawn = "withdrawn"
)

// IsTerminal reports whether the commitment has reached a final status
func (c *SoftCommitment) IsTerminal() bool {
	switch c.Status {
	case CommitmentConverted, CommitmentExpired, CommitmentWithdrawn:
		return true
	}
	return false
}

// IsExpired reports whether the expiry date has passed at the given instant
func (c *SoftCommitment) IsExpired(now time.Time) bool {
	return !c.ExpiryDate.IsZero() && now.After(c.ExpiryDate)
}

// DaysRemaining returns whole days until expiry, zero once past
func (c *SoftCommitment) DaysRemaining(now time.Time) int {
	if c.IsExpired(now) {
		return 0
	}
	return int(c.ExpiryDate.Sub(now).Hours() / 24)
}

// CounterOffer is one structured counter from the startup side
type CounterOffer struct {
	Amount    int64     `json:"amount"`
	Equity    float64   `json:"equity"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// CounterOffers stores the ordered counter history as JSON
type CounterOffers []CounterOffer

// Value implements driver.Valuer for CounterOffers
func (c CounterOffers) Value() (driver.Value, error) {
	if c == nil {
		return json.Marshal([]CounterOffer{})
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for CounterOffers
func (c *CounterOffers) Scan(value interface{}) error {
	if value == nil {
		*c = CounterOffers{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into CounterOffers", value)
	}

	return json.Unmarshal(bytes, c)
}

// CommitmentForm represents a soft-commitment creation request
type CommitmentForm struct {
	StartupID      string  `json:"startup_id" binding:"required"`
	Amount         int64   `json:"amount" binding:"required"`
	EquityExpected float64 `json:"equity_expected"`
	Conditions     string  `json:"conditions"`
	ExpiryDate     string  `json:"expiry_date"`
}

// CommitmentResponseForm represents the startup's response to a commitment
type CommitmentResponseForm struct {
	Action string  `json:"action" binding:"required"`
	Amount int64   `json:"amount"`
	Equity float64 `json:"equity"`
	Note   string  `json:"note"`
}
