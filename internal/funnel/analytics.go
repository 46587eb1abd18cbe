package funnel

import (
	"math"

	"github.com/venturelink/venturelink-api/internal/models"
)

// Analytics summarizes one incubator's application funnel
type Analytics struct {
	Counts Counts `json:"counts"`
	Rates  Rates  `json:"rates"`
}

// Counts buckets applications by status
type Counts struct {
	Applied     int `json:"applied"`
	Viewed      int `json:"viewed"`
	Shortlisted int `json:"shortlisted"`
	ClosedDeal  int `json:"closed_deal"`
	Rejected    int `json:"rejected"`
	Total       int `json:"total"`
}

// Rates holds conversion percentages, rounded to the nearest integer
type Rates struct {
	ViewRate   int `json:"view_rate"`
	AcceptRate int `json:"accept_rate"`
	Overall    int `json:"overall"`
}

// ComputeAnalytics buckets applications by status and derives conversion
// rates. Rates are integer percents; a zero denominator yields 0, never an
// error.
func ComputeAnalytics(apps []models.Application) Analytics {
	var counts Counts
	for i := range apps {
		switch apps[i].Status {
		case models.ApplicationApplied:
			counts.Applied++
		case models.ApplicationViewed:
			counts.Viewed++
		case models.ApplicationShortlisted:
			counts.Shortlisted++
		case models.ApplicationClosedDeal:
			counts.ClosedDeal++
		case models.ApplicationRejected:
			counts.Rejected++
		}
	}
	counts.Total = len(apps)

	return Analytics{
		Counts: counts,
		Rates: Rates{
			ViewRate:   percent(counts.Viewed, counts.Applied),
			AcceptRate: percent(counts.ClosedDeal, counts.Viewed),
			Overall:    percent(counts.ClosedDeal, counts.Applied),
		},
	}
}

func percent(numerator, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return int(math.Round(float64(numerator) / float64(denominator) * 100))
}
