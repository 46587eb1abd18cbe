package dealflow

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/venturelink/venturelink-api/internal/models"
)

func pendingIntro() *models.IntroRequest {
	return &models.IntroRequest{
		ID:         uuid.New(),
		InvestorID: uuid.New(),
		StartupID:  uuid.New(),
		Status:     models.IntroPending,
	}
}

func TestRespondToIntroFromPending(t *testing.T) {
	now := time.Now()
	meeting := now.Add(72 * time.Hour)

	tests := []struct {
		action  IntroAction
		meeting *time.Time
		want    string
	}{
		{IntroApprove, nil, models.IntroApproved},
		{IntroDecline, nil, models.IntroDeclined},
		{IntroSchedule, &meeting, models.IntroMeetingScheduled},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			req := pendingIntro()
			if err := RespondToIntro(req, tt.action, tt.meeting, "", now); err != nil {
				t.Fatal(err)
			}
			if req.Status != tt.want {
				t.Errorf("expected status %s, got %s", tt.want, req.Status)
			}
		})
	}
}

func TestRespondToIntroScheduleRequiresMeetingDate(t *testing.T) {
	req := pendingIntro()
	if err := RespondToIntro(req, IntroSchedule, nil, "", time.Now()); err == nil {
		t.Error("expected schedule without meeting date to fail")
	}
	if req.Status != models.IntroPending {
		t.Errorf("failed schedule mutated status to %s", req.Status)
	}
}

func TestRespondToIntroScheduleRecordsMeeting(t *testing.T) {
	now := time.Now()
	meeting := now.Add(48 * time.Hour)
	req := pendingIntro()

	if err := RespondToIntro(req, IntroSchedule, &meeting, "office walkthrough first", now); err != nil {
		t.Fatal(err)
	}
	if req.MeetingDate == nil || !req.MeetingDate.Equal(meeting) {
		t.Errorf("expected meeting date %v, got %v", meeting, req.MeetingDate)
	}
	if req.ResponseNotes != "office walkthrough first" {
		t.Errorf("unexpected notes %q", req.ResponseNotes)
	}
}

func TestRespondToIntroCompleteOnlyFromScheduled(t *testing.T) {
	now := time.Now()
	meeting := now.Add(24 * time.Hour)

	req := pendingIntro()
	if err := RespondToIntro(req, IntroComplete, nil, "", now); err == nil {
		t.Error("expected complete on pending request to fail")
	}

	if err := RespondToIntro(req, IntroSchedule, &meeting, "", now); err != nil {
		t.Fatal(err)
	}
	if err := RespondToIntro(req, IntroComplete, nil, "", now); err != nil {
		t.Fatalf("expected complete on scheduled request to succeed, got %v", err)
	}
	if req.Status != models.IntroCompleted {
		t.Errorf("expected status completed, got %s", req.Status)
	}
}

func TestRespondToIntroTerminalStatuses(t *testing.T) {
	now := time.Now()
	for _, terminal := range []string{models.IntroApproved, models.IntroDeclined, models.IntroCompleted} {
		req := pendingIntro()
		req.Status = terminal
		for _, action := range []IntroAction{IntroApprove, IntroDecline, IntroSchedule, IntroComplete} {
			if err := RespondToIntro(req, action, nil, "", now); err == nil {
				t.Errorf("expected %s on %s request to fail", action, terminal)
			}
		}
		if req.Status != terminal {
			t.Errorf("terminal request mutated to %s", req.Status)
		}
	}
}
