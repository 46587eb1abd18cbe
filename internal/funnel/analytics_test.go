package funnel

import (
	"testing"

	"github.com/venturelink/venturelink-api/internal/models"
)

func appsWithStatuses(statuses ...string) []models.Application {
	apps := make([]models.Application, len(statuses))
	for i, s := range statuses {
		apps[i] = models.Application{Status: s}
	}
	return apps
}

func TestComputeAnalyticsCounts(t *testing.T) {
	apps := appsWithStatuses(
		models.ApplicationApplied, models.ApplicationApplied,
		models.ApplicationViewed,
		models.ApplicationShortlisted,
		models.ApplicationClosedDeal,
		models.ApplicationRejected, models.ApplicationRejected,
	)

	a := ComputeAnalytics(apps)

	if a.Counts.Applied != 2 || a.Counts.Viewed != 1 || a.Counts.Shortlisted != 1 ||
		a.Counts.ClosedDeal != 1 || a.Counts.Rejected != 2 {
		t.Errorf("unexpected counts: %+v", a.Counts)
	}
	if a.Counts.Total != 7 {
		t.Errorf("expected total 7, got %d", a.Counts.Total)
	}
}

func TestComputeAnalyticsRates(t *testing.T) {
	apps := appsWithStatuses(
		models.ApplicationApplied, models.ApplicationApplied, models.ApplicationApplied,
		models.ApplicationViewed, models.ApplicationViewed,
		models.ApplicationClosedDeal,
	)

	a := ComputeAnalytics(apps)

	// viewed/applied = 2/3 -> 67, closed/viewed = 1/2 -> 50, closed/applied = 1/3 -> 33
	if a.Rates.ViewRate != 67 {
		t.Errorf("expected view rate 67, got %d", a.Rates.ViewRate)
	}
	if a.Rates.AcceptRate != 50 {
		t.Errorf("expected accept rate 50, got %d", a.Rates.AcceptRate)
	}
	if a.Rates.Overall != 33 {
		t.Errorf("expected overall 33, got %d", a.Rates.Overall)
	}
}

func TestComputeAnalyticsEmptySet(t *testing.T) {
	a := ComputeAnalytics(nil)

	if a.Counts.Total != 0 {
		t.Errorf("expected total 0, got %d", a.Counts.Total)
	}
	if a.Rates.ViewRate != 0 || a.Rates.AcceptRate != 0 || a.Rates.Overall != 0 {
		t.Errorf("expected all rates 0 on empty input, got %+v", a.Rates)
	}
}

func TestComputeAnalyticsZeroDenominators(t *testing.T) {
	// Closed deals without surviving viewed rows must not divide by zero
	a := ComputeAnalytics(appsWithStatuses(models.ApplicationClosedDeal))

	if a.Rates.AcceptRate != 0 || a.Rates.Overall != 0 {
		t.Errorf("expected 0 rates with zero denominators, got %+v", a.Rates)
	}
}
