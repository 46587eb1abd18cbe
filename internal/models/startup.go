package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Startup represents a startup profile owned by one founder account
type Startup struct {
	ID                 uuid.UUID          `json:"id" db:"id"`
	FounderID          uuid.UUID          `json:"founder_id" db:"founder_id"`
	Name               string             `json:"name" db:"name"`
	Industry           string             `json:"industry" db:"industry"`
	Stage              string             `json:"stage" db:"stage"`
	AskAmount          int64              `json:"ask_amount" db:"ask_amount"`
	Timeline           string             `json:"timeline" db:"timeline"`
	UseOfFunds         string             `json:"use_of_funds" db:"use_of_funds"`
	MonthlyRevenue     int64              `json:"monthly_revenue" db:"monthly_revenue"`
	GrowthRate         float64            `json:"growth_rate" db:"growth_rate"`
	CustomerCount      int                `json:"customer_count" db:"customer_count"`
	TeamSize           int                `json:"team_size" db:"team_size"`
	MarketSize         string             `json:"market_size" db:"market_size"`
	Traction           string             `json:"traction" db:"traction"`
	PubliclyVisible    bool               `json:"publicly_visible" db:"publicly_visible"`
	Verified           bool               `json:"verified" db:"verified"`
	Imported           bool               `json:"imported" db:"imported"`
	FundraisingTracker FundraisingTracker `json:"fundraising_tracker" db:"fundraising_tracker"`
	CreatedAt          time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" db:"updated_at"`
}

// Startup stages
const (
	StageIdea         = "idea"
	StageMVP          = "mvp"
	StageEarlyRevenue = "early-revenue"
	StageGrowth       = "growth"
	StageScale        = "scale"
)

// Funding timelines
const (
	TimelineImmediate     = "Immediate"
	TimelineOneToThree    = "1-3 months"
	TimelineThreeToSix    = "3-6 months"
	TimelineSixToTwelve   = "6-12 months"
	TimelineExploring     = "Exploring"
)

// Industries lists the fixed industry set accepted on startup profiles.
var Industries = []string{
	"Technology", "Healthcare", "Fintech", "E-commerce", "Education",
	"Manufacturing", "Agriculture", "Energy", "Logistics", "Media",
	"Real Estate", "Food & Beverage", "Other",
}

// TicketSizes lists the fixed ask amounts a startup may request.
var TicketSizes = []int64{
	500000, 1000000, 2500000, 5000000, 10000000, 25000000, 50000000, 100000000,
}

// ValidIndustry reports whether industry belongs to the fixed industry set.
func ValidIndustry(industry string) bool {
	for _, i := range Industries {
		if i == industry {
			return true
		}
	}
	return false
}

// ValidStage reports whether stage belongs to the fixed stage set.
func ValidStage(stage string) bool {
	switch stage {
	case StageIdea, StageMVP, StageEarlyRevenue, StageGrowth, StageScale:
		return true
	}
	return false
}

// ValidTicketSize reports whether amount is one of the allowed ticket sizes.
func ValidTicketSize(amount int64) bool {
	for _, t := range TicketSizes {
		if t == amount {
			return true
		}
	}
	return false
}

// FundraisingTracker aggregates converted commitments for a startup
type FundraisingTracker struct {
	TotalRaised    int64      `json:"total_raised"`
	InvestorsCount int        `json:"investors_count"`
	LastUpdated    *time.Time `json:"last_updated,omitempty"`
}

// Value implements driver.Valuer for FundraisingTracker
func (t FundraisingTracker) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan implements sql.Scanner for FundraisingTracker
func (t *FundraisingTracker) Scan(value interface{}) error {
	if value == nil {
		*t = FundraisingTracker{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into FundraisingTracker", value)
	}

	return json.Unmarshal(bytes, t)
}

// FundraisingEntry records a converted commitment against a startup
type FundraisingEntry struct {
	ID         uuid.UUID `json:"id" db:"id"`
	StartupID  uuid.UUID `json:"startup_id" db:"startup_id"`
	InvestorID uuid.UUID `json:"investor_id" db:"investor_id"`
	Amount     int64     `json:"amount" db:"amount"`
	Equity     float64   `json:"equity" db:"equity"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Fundraising entry statuses
const (
	FundraisingCommitted = "committed"
)

// StartupForm represents a startup create/update request
type StartupForm struct {
	Name           string  `json:"name" binding:"required"`
	Industry       string  `json:"industry" binding:"required"`
	Stage          string  `json:"stage" binding:"required"`
	AskAmount      int64   `json:"ask_amount"`
	Timeline       string  `json:"timeline"`
	UseOfFunds     string  `json:"use_of_funds"`
	MonthlyRevenue int64   `json:"monthly_revenue"`
	GrowthRate     float64 `json:"growth_rate"`
	CustomerCount  int     `json:"customer_count"`
	TeamSize       int     `json:"team_size"`
	MarketSize     string  `json:"market_size"`
	Traction       string  `json:"traction"`
	PubliclyVisible bool   `json:"publicly_visible"`
}
