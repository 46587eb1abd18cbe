package matching

import (
	"github.com/venturelink/venturelink-api/internal/models"
)

// Sub-score weights. The five criteria sum to a maximum of 100.
const (
	IndustryPoints      = 30
	StagePoints         = 25
	FundingFitPoints    = 25
	RevenuePoints       = 5
	CustomerPoints      = 5
	UrgencyPoints       = 10
	customerCountFloor  = 10
)

// ScoreDetail provides detailed information about one scoring component
type ScoreDetail struct {
	Points      int    `json:"points"`
	Triggered   bool   `json:"triggered"`
	Description string `json:"description"`
}

// ScoreResult represents the result of scoring a startup against an investor
type ScoreResult struct {
	StartupID  string                 `json:"startup_id"`
	InvestorID string                 `json:"investor_id"`
	Score      int                    `json:"score"`
	Breakdown  map[string]ScoreDetail `json:"breakdown"`
}

// Score computes the 0-100 compatibility score between a startup and an
// investor's stated preferences. Pure and deterministic; missing fields fail
// their predicate and contribute 0.
func Score(startup *models.Startup, investor *models.Investor) int {
	return ScoreWithBreakdown(startup, investor).Score
}

// ScoreWithBreakdown computes the score along with a per-criterion breakdown.
func ScoreWithBreakdown(startup *models.Startup, investor *models.Investor) *ScoreResult {
	result := &ScoreResult{
		StartupID:  startup.ID.String(),
		InvestorID: investor.ID.String(),
		Breakdown:  make(map[string]ScoreDetail),
	}

	addDetail := func(name string, points int, triggered bool, desc string) {
		detail := ScoreDetail{Triggered: triggered, Description: desc}
		if triggered {
			detail.Points = points
			result.Score += points
		}
		result.Breakdown[name] = detail
	}

	addDetail("industry", IndustryPoints,
		investor.PreferredIndustries.Contains(startup.Industry),
		"Industry in investor's preferred set")

	addDetail("stage", StagePoints,
		investor.PreferredStages.Contains(startup.Stage),
		"Stage in investor's preferred set")

	addDetail("funding_fit", FundingFitPoints,
		fundingFit(startup, investor),
		"Ask amount within investor's min/max bounds")

	addDetail("revenue", RevenuePoints,
		startup.MonthlyRevenue > 0,
		"Monthly revenue above zero")

	addDetail("customers", CustomerPoints,
		startup.CustomerCount > customerCountFloor,
		"More than 10 customers")

	addDetail("urgency", UrgencyPoints,
		urgent(startup.Timeline),
		"Raising immediately or within 3 months")

	return result
}

func fundingFit(startup *models.Startup, investor *models.Investor) bool {
	if startup.AskAmount <= 0 {
		return false
	}
	return investor.MinInvestment <= startup.AskAmount &&
		startup.AskAmount <= investor.MaxInvestment
}

func urgent(timeline string) bool {
	return timeline == models.TimelineImmediate || timeline == models.TimelineOneToThree
}
