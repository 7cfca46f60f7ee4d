package db

import (
	"fmt"
	"time"

	"github.com/kfutrack/kfu/internal/models"
)

// CreateSessionRequest holds the data needed to log a new session
type CreateSessionRequest struct {
	Date            time.Time
	DurationMinutes int
	Type            string
	Notes           string
}

// Validate rejects out-of-range durations and unknown types before anything
// reaches the database or the progression core.
func (req CreateSessionRequest) Validate() error {
	if req.DurationMinutes < models.MinSessionMinutes || req.DurationMinutes > models.MaxSessionMinutes {
		return fmt.Errorf("duration must be between %d and %d minutes, got %d",
			models.MinSessionMinutes, models.MaxSessionMinutes, req.DurationMinutes)
	}
	if !models.IsValidSessionType(req.Type) {
		return fmt.Errorf("unknown session type %q. Valid types: %v", req.Type, models.SessionTypes)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("session date is required")
	}
	return nil
}

// CreateSession validates and logs a new training session
func CreateSession(req CreateSessionRequest) (*models.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	session := models.Session{
		Date:            normalizeDay(req.Date),
		DurationMinutes: req.DurationMinutes,
		Type:            req.Type,
		Notes:           req.Notes,
	}

	if err := DB.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// GetSessions returns all sessions ordered by date, oldest first
func GetSessions() ([]models.Session, error) {
	var sessions []models.Session

	if err := DB.Order("date ASC, id ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

// GetSessionsInRange returns sessions whose date falls within [from, to]
func GetSessionsInRange(from, to time.Time) ([]models.Session, error) {
	var sessions []models.Session

	err := DB.Where("date >= ? AND date <= ?", normalizeDay(from), normalizeDay(to)).
		Order("date ASC, id ASC").
		Find(&sessions).Error

	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// GetSessionByID retrieves a session by ID
func GetSessionByID(id uint) (*models.Session, error) {
	var session models.Session

	if err := DB.First(&session, id).Error; err != nil {
		return nil, fmt.Errorf("session #%d not found", id)
	}

	return &session, nil
}

// UpdateSession edits the mutable fields of an existing session.
// Identity (ID) never changes.
func UpdateSession(id uint, req CreateSessionRequest) (*models.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	session, err := GetSessionByID(id)
	if err != nil {
		return nil, err
	}

	session.Date = normalizeDay(req.Date)
	session.DurationMinutes = req.DurationMinutes
	session.Type = req.Type
	session.Notes = req.Notes

	if err := DB.Save(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes a session (soft delete)
func DeleteSession(id uint) error {
	session, err := GetSessionByID(id)
	if err != nil {
		return err
	}

	return DB.Delete(session).Error
}

// normalizeDay drops the time component, keeping calendar day semantics.
func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
