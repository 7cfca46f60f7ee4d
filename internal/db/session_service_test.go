package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kfutrack/kfu/internal/models"
)

func newTestDB(t *testing.T) {
	t.Helper()
	t.Setenv("KFU_DB", filepath.Join(t.TempDir(), "kfu-test.db"))
	if err := Initialize(); err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { Close() })
}

func logTestSession(t *testing.T, daysAgo, minutes int, sessionType string) *models.Session {
	t.Helper()
	session, err := CreateSession(CreateSessionRequest{
		Date:            time.Now().AddDate(0, 0, -daysAgo),
		DurationMinutes: minutes,
		Type:            sessionType,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return session
}

func TestCreateAndGetSessions(t *testing.T) {
	newTestDB(t)

	created := logTestSession(t, 0, 45, models.TypeForms)
	if created.ID == 0 {
		t.Error("expected generated session ID")
	}

	sessions, err := GetSessions()
	if err != nil {
		t.Fatalf("get sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].DurationMinutes != 45 || sessions[0].Type != models.TypeForms {
		t.Errorf("unexpected session %+v", sessions[0])
	}
	// Date stored as a calendar day
	if sessions[0].Date.Hour() != 0 || sessions[0].Date.Minute() != 0 {
		t.Errorf("date not normalized to midnight: %v", sessions[0].Date)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	newTestDB(t)

	tests := []struct {
		name string
		req  CreateSessionRequest
	}{
		{"zero duration", CreateSessionRequest{Date: time.Now(), DurationMinutes: 0, Type: models.TypeForms}},
		{"negative duration", CreateSessionRequest{Date: time.Now(), DurationMinutes: -10, Type: models.TypeForms}},
		{"over maximum", CreateSessionRequest{Date: time.Now(), DurationMinutes: 481, Type: models.TypeForms}},
		{"unknown type", CreateSessionRequest{Date: time.Now(), DurationMinutes: 45, Type: "juggling"}},
		{"missing date", CreateSessionRequest{DurationMinutes: 45, Type: models.TypeForms}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CreateSession(tt.req); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	// Nothing invalid was accepted
	sessions, _ := GetSessions()
	if len(sessions) != 0 {
		t.Errorf("invalid sessions were stored: %d", len(sessions))
	}
}

func TestUpdateSessionKeepsIdentity(t *testing.T) {
	newTestDB(t)

	created := logTestSession(t, 1, 45, models.TypeForms)

	updated, err := UpdateSession(created.ID, CreateSessionRequest{
		Date:            time.Now(),
		DurationMinutes: 90,
		Type:            models.TypeSparring,
		Notes:           "pad work",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("identity changed: %d -> %d", created.ID, updated.ID)
	}
	if updated.DurationMinutes != 90 || updated.Type != models.TypeSparring {
		t.Errorf("fields not updated: %+v", updated)
	}
}

func TestUpdateSessionNotFound(t *testing.T) {
	newTestDB(t)

	_, err := UpdateSession(99, CreateSessionRequest{
		Date: time.Now(), DurationMinutes: 45, Type: models.TypeForms,
	})
	if err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestDeleteSession(t *testing.T) {
	newTestDB(t)

	created := logTestSession(t, 0, 45, models.TypeForms)

	if err := DeleteSession(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	sessions, _ := GetSessions()
	if len(sessions) != 0 {
		t.Errorf("expected 0 sessions after delete, got %d", len(sessions))
	}

	if err := DeleteSession(created.ID); err == nil {
		t.Error("expected error deleting twice")
	}
}

func TestGetSessionsInRange(t *testing.T) {
	newTestDB(t)

	logTestSession(t, 0, 30, models.TypeForms)
	logTestSession(t, 5, 30, models.TypeForms)
	logTestSession(t, 50, 30, models.TypeForms)

	now := time.Now()
	sessions, err := GetSessionsInRange(now.AddDate(0, 0, -7), now)
	if err != nil {
		t.Fatalf("range query: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("expected 2 sessions in range, got %d", len(sessions))
	}
}

func TestBeltStateDefaultAndSave(t *testing.T) {
	newTestDB(t)

	state, err := GetBeltState("white")
	if err != nil {
		t.Fatalf("get belt state: %v", err)
	}
	if state.CurrentBelt != "white" || state.UnlockedBelts != "white" {
		t.Errorf("default state = %+v", state)
	}

	state.CurrentBelt = "yellow"
	state.SetUnlockedList([]string{"white", "yellow"})
	if err := SaveBeltState(state); err != nil {
		t.Fatalf("save belt state: %v", err)
	}

	reloaded, err := GetBeltState("white")
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.CurrentBelt != "yellow" {
		t.Errorf("CurrentBelt = %q, want yellow", reloaded.CurrentBelt)
	}
	got := reloaded.UnlockedList()
	if len(got) != 2 || got[0] != "white" || got[1] != "yellow" {
		t.Errorf("UnlockedList = %v", got)
	}
}
