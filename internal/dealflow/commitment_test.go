package dealflow

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/venturelink/venturelink-api/internal/models"
)

func activeCommitment(now time.Time) *models.SoftCommitment {
	return &models.SoftCommitment{
		ID:             uuid.New(),
		InvestorID:     uuid.New(),
		StartupID:      uuid.New(),
		Amount:         250000,
		EquityExpected: 5.0,
		ExpiryDate:     now.Add(30 * 24 * time.Hour),
		Status:         models.CommitmentActive,
	}
}

func TestValidateCommitment(t *testing.T) {
	investor := &models.Investor{
		Capacity: models.InvestmentCapacity{TotalFunds: 1000000, AvailableFunds: 300000},
	}

	if err := ValidateCommitment(250000, investor); err != nil {
		t.Errorf("expected amount within available funds to pass, got %v", err)
	}
	if err := ValidateCommitment(0, investor); err == nil {
		t.Error("expected zero amount to fail")
	}
	if err := ValidateCommitment(-100, investor); err == nil {
		t.Error("expected negative amount to fail")
	}
	if err := ValidateCommitment(300001, investor); err == nil {
		t.Error("expected amount above available funds to fail")
	}
	if err := ValidateCommitment(300000, investor); err != nil {
		t.Errorf("expected amount equal to available funds to pass, got %v", err)
	}
}

func TestRespondAcceptConvertsAndTracksFundraising(t *testing.T) {
	now := time.Now()
	commitment := activeCommitment(now)
	startup := &models.Startup{ID: commitment.StartupID}

	entry, err := RespondToCommitment(commitment, startup, CommitmentAccept, CounterPayload{}, false, now)
	if err != nil {
		t.Fatal(err)
	}

	if commitment.Status != models.CommitmentConverted {
		t.Errorf("expected status converted, got %s", commitment.Status)
	}
	if entry == nil {
		t.Fatal("expected a fundraising entry on accept")
	}
	if entry.Amount != 250000 || entry.Equity != 5.0 {
		t.Errorf("entry carries wrong terms: %+v", entry)
	}
	if entry.InvestorID != commitment.InvestorID || entry.StartupID != commitment.StartupID {
		t.Errorf("entry references wrong parties: %+v", entry)
	}
	if entry.Status != models.FundraisingCommitted {
		t.Errorf("expected entry status %s, got %s", models.FundraisingCommitted, entry.Status)
	}

	if startup.FundraisingTracker.TotalRaised != 250000 {
		t.Errorf("expected total raised 250000, got %d", startup.FundraisingTracker.TotalRaised)
	}
	if startup.FundraisingTracker.InvestorsCount != 1 {
		t.Errorf("expected investors count 1, got %d", startup.FundraisingTracker.InvestorsCount)
	}
	if startup.FundraisingTracker.LastUpdated == nil {
		t.Error("expected last updated to be stamped")
	}
}

func TestRespondAcceptRepeatInvestorDoesNotBumpCount(t *testing.T) {
	now := time.Now()
	commitment := activeCommitment(now)
	startup := &models.Startup{
		ID:                 commitment.StartupID,
		FundraisingTracker: models.FundraisingTracker{TotalRaised: 100000, InvestorsCount: 1},
	}

	if _, err := RespondToCommitment(commitment, startup, CommitmentAccept, CounterPayload{}, true, now); err != nil {
		t.Fatal(err)
	}

	if startup.FundraisingTracker.TotalRaised != 350000 {
		t.Errorf("expected total raised 350000, got %d", startup.FundraisingTracker.TotalRaised)
	}
	if startup.FundraisingTracker.InvestorsCount != 1 {
		t.Errorf("repeat investor bumped count to %d", startup.FundraisingTracker.InvestorsCount)
	}
}

func TestRespondCounterAppendsHistory(t *testing.T) {
	now := time.Now()
	commitment := activeCommitment(now)
	startup := &models.Startup{ID: commitment.StartupID}

	payload := CounterPayload{Amount: 200000, Equity: 4.0, Note: "lower ticket, same terms"}
	entry, err := RespondToCommitment(commitment, startup, CommitmentCounter, payload, false, now)
	if err != nil {
		t.Fatal(err)
	}
	if entry != nil {
		t.Error("counter must not produce a fundraising entry")
	}
	if commitment.Status != models.CommitmentActive {
		t.Errorf("counter must keep status active, got %s", commitment.Status)
	}
	if len(commitment.CounterOffers) != 1 {
		t.Fatalf("expected 1 counter offer, got %d", len(commitment.CounterOffers))
	}
	offer := commitment.CounterOffers[0]
	if offer.Amount != 200000 || offer.Equity != 4.0 || offer.Note != "lower ticket, same terms" {
		t.Errorf("unexpected counter offer: %+v", offer)
	}

	// A second counter goes to the end of the list
	if _, err := RespondToCommitment(commitment, startup, CommitmentCounter, CounterPayload{Amount: 180000}, false, now); err != nil {
		t.Fatal(err)
	}
	if len(commitment.CounterOffers) != 2 || commitment.CounterOffers[1].Amount != 180000 {
		t.Errorf("expected newest counter last, got %+v", commitment.CounterOffers)
	}
}

func TestRespondDecline(t *testing.T) {
	now := time.Now()
	commitment := activeCommitment(now)

	entry, err := RespondToCommitment(commitment, &models.Startup{}, CommitmentDecline, CounterPayload{}, false, now)
	if err != nil {
		t.Fatal(err)
	}
	if entry != nil {
		t.Error("decline must not produce a fundraising entry")
	}
	if commitment.Status != models.CommitmentWithdrawn {
		t.Errorf("expected status withdrawn, got %s", commitment.Status)
	}
}

func TestRespondRefusesTerminalStatuses(t *testing.T) {
	now := time.Now()
	for _, status := range []string{models.CommitmentConverted, models.CommitmentExpired, models.CommitmentWithdrawn} {
		commitment := activeCommitment(now)
		commitment.Status = status
		startup := &models.Startup{}

		if _, err := RespondToCommitment(commitment, startup, CommitmentAccept, CounterPayload{}, false, now); err == nil {
			t.Errorf("expected response on %s commitment to fail", status)
		}
		if startup.FundraisingTracker.TotalRaised != 0 {
			t.Errorf("terminal response mutated the tracker on %s", status)
		}
	}
}

func TestRespondRefusesLapsedCommitment(t *testing.T) {
	now := time.Now()
	commitment := activeCommitment(now)
	commitment.ExpiryDate = now.Add(-time.Hour)

	if _, err := RespondToCommitment(commitment, &models.Startup{}, CommitmentAccept, CounterPayload{}, false, now); err == nil {
		t.Error("expected response on lapsed commitment to fail")
	}
	if commitment.Status != models.CommitmentActive {
		t.Errorf("lapsed response mutated status to %s", commitment.Status)
	}
}

func TestExpireCommitment(t *testing.T) {
	now := time.Now()

	lapsed := activeCommitment(now)
	lapsed.ExpiryDate = now.Add(-time.Minute)
	if !ExpireCommitment(lapsed, now) {
		t.Error("expected lapsed active commitment to expire")
	}
	if lapsed.Status != models.CommitmentExpired {
		t.Errorf("expected status expired, got %s", lapsed.Status)
	}

	current := activeCommitment(now)
	if ExpireCommitment(current, now) {
		t.Error("commitment before its expiry date must not expire")
	}

	converted := activeCommitment(now)
	converted.Status = models.CommitmentConverted
	converted.ExpiryDate = now.Add(-time.Minute)
	if ExpireCommitment(converted, now) {
		t.Error("converted commitment must not flip to expired")
	}
}

func TestWithdrawCommitment(t *testing.T) {
	now := time.Now()

	commitment := activeCommitment(now)
	if err := WithdrawCommitment(commitment, now); err != nil {
		t.Fatal(err)
	}
	if commitment.Status != models.CommitmentWithdrawn {
		t.Errorf("expected status withdrawn, got %s", commitment.Status)
	}

	if err := WithdrawCommitment(commitment, now); err == nil {
		t.Error("expected second withdrawal to fail")
	}
}
