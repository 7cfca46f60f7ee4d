package models

import (
	"time"

	"gorm.io/gorm"
)

// Session types. The set is fixed; the boundary rejects anything else.
const (
	TypeForms        = "forms"
	TypeSparring     = "sparring"
	TypeConditioning = "conditioning"
	TypeWeapons      = "weapons"
	TypeBasics       = "basics"
	TypeMeditation   = "meditation"
)

// SessionTypes lists every valid session type in display order.
var SessionTypes = []string{
	TypeForms,
	TypeSparring,
	TypeConditioning,
	TypeWeapons,
	TypeBasics,
	TypeMeditation,
}

// IsValidSessionType reports whether t is one of the known session types.
func IsValidSessionType(t string) bool {
	for _, known := range SessionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Session duration bounds in minutes.
const (
	MinSessionMinutes = 1
	MaxSessionMinutes = 480
)

// Session represents one logged training session
type Session struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Date            time.Time `gorm:"not null;index" json:"date"` // calendar day, midnight local
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Type            string    `gorm:"not null" json:"type"`
	Notes           string    `json:"notes"`
}

// Hours returns the session duration in hours.
func (s Session) Hours() float64 {
	return float64(s.DurationMinutes) / 60.0
}

// Day returns the session date truncated to midnight in its own location.
func (s Session) Day() time.Time {
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, s.Date.Location())
}
