package belt

import (
	"strings"
	"testing"
)

func TestDefaultLedgerIsValid(t *testing.T) {
	ledger, err := DefaultLedger()
	if err != nil {
		t.Fatalf("embedded ladder failed validation: %v", err)
	}

	if len(ledger.Ranks) != 15 {
		t.Errorf("expected 15 ranks, got %d", len(ledger.Ranks))
	}
	if ledger.Ranks[0].Name != "white" {
		t.Errorf("first rank = %q, want white", ledger.Ranks[0].Name)
	}
	if ledger.Ranks[len(ledger.Ranks)-1].Name != "black-9" {
		t.Errorf("last rank = %q, want black-9", ledger.Ranks[len(ledger.Ranks)-1].Name)
	}
	if len(ledger.Ranks[0].Requirements) != 0 {
		t.Error("starting rank must have no requirements")
	}

	// Thresholds strictly increase across the sequence
	prev := 0.0
	for _, rank := range ledger.Ranks[1:] {
		h := rank.HoursThreshold()
		if h <= prev {
			t.Errorf("rank %q threshold %.1f does not exceed previous %.1f", rank.Name, h, prev)
		}
		prev = h
	}
}

func TestParseLedgerRejectsNonIncreasingThresholds(t *testing.T) {
	ladder := `
ranks:
  - name: white
    title: White Belt
  - name: yellow
    title: Yellow Belt
    requirements:
      - kind: hours
        hours: 60
  - name: orange
    title: Orange Belt
    requirements:
      - kind: hours
        hours: 60
`
	_, err := ParseLedger([]byte(ladder))
	if err == nil {
		t.Fatal("expected error for non-increasing thresholds")
	}
	if !strings.Contains(err.Error(), "must exceed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseLedgerRejectsStartingRankRequirements(t *testing.T) {
	ladder := `
ranks:
  - name: white
    title: White Belt
    requirements:
      - kind: hours
        hours: 10
`
	if _, err := ParseLedger([]byte(ladder)); err == nil {
		t.Fatal("expected error for starting rank with requirements")
	}
}

func TestParseLedgerRejectsUnknownRequirementKind(t *testing.T) {
	ladder := `
ranks:
  - name: white
    title: White Belt
  - name: yellow
    title: Yellow Belt
    requirements:
      - kind: moon_phase
`
	_, err := ParseLedger([]byte(ladder))
	if err == nil {
		t.Fatal("expected error for unknown requirement kind")
	}
	if !strings.Contains(err.Error(), "moon_phase") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseLedgerRejectsDuplicateNames(t *testing.T) {
	ladder := `
ranks:
  - name: white
    title: White Belt
  - name: white
    title: White Again
    requirements:
      - kind: hours
        hours: 10
`
	if _, err := ParseLedger([]byte(ladder)); err == nil {
		t.Fatal("expected error for duplicate rank names")
	}
}

func TestLedgerLookups(t *testing.T) {
	ledger, err := DefaultLedger()
	if err != nil {
		t.Fatal(err)
	}

	if idx := ledger.IndexOf("white"); idx != 0 {
		t.Errorf("IndexOf(white) = %d, want 0", idx)
	}
	if idx := ledger.IndexOf("no-such-belt"); idx != -1 {
		t.Errorf("IndexOf(no-such-belt) = %d, want -1", idx)
	}
	if !ledger.Terminal("black-9") {
		t.Error("black-9 should be terminal")
	}
	if ledger.Terminal("white") {
		t.Error("white should not be terminal")
	}
	if after := ledger.RanksAfter("black-8"); len(after) != 1 || after[0].Name != "black-9" {
		t.Errorf("RanksAfter(black-8) = %v", after)
	}
}
