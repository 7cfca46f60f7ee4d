package db

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kfutrack/kfu/internal/models"
)

// snapshot is the JSON shape written by ExportAll and read by ImportAll.
type snapshot struct {
	Sessions  []models.Session  `json:"sessions"`
	BeltState *models.BeltState `json:"belt_state,omitempty"`
}

// ExportAll dumps every session and the belt state as indented JSON
func ExportAll(w io.Writer) error {
	sessions, err := GetSessions()
	if err != nil {
		return fmt.Errorf("failed to read sessions: %w", err)
	}

	var state *models.BeltState
	var stored models.BeltState
	if err := DB.First(&stored).Error; err == nil {
		state = &stored
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot{Sessions: sessions, BeltState: state})
}

// ImportAll replaces the entire store with the contents of a previous export.
// Sessions are re-inserted with fresh IDs; the belt state row is replaced
// verbatim and the caller is expected to rerun the progression check.
func ImportAll(r io.Reader) (int, error) {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return 0, fmt.Errorf("invalid export file: %w", err)
	}

	// Wipe sessions and belt state before re-inserting
	if err := DB.Unscoped().Where("1 = 1").Delete(&models.Session{}).Error; err != nil {
		return 0, err
	}
	if err := DB.Unscoped().Where("1 = 1").Delete(&models.BeltState{}).Error; err != nil {
		return 0, err
	}

	imported := 0
	for _, s := range snap.Sessions {
		req := CreateSessionRequest{
			Date:            s.Date,
			DurationMinutes: s.DurationMinutes,
			Type:            s.Type,
			Notes:           s.Notes,
		}
		if _, err := CreateSession(req); err != nil {
			return imported, fmt.Errorf("session %d in export file: %w", imported+1, err)
		}
		imported++
	}

	if snap.BeltState != nil {
		state := models.BeltState{
			CurrentBelt:   snap.BeltState.CurrentBelt,
			UnlockedBelts: snap.BeltState.UnlockedBelts,
		}
		if err := DB.Create(&state).Error; err != nil {
			return imported, err
		}
	}

	return imported, nil
}
