package models

import (
	"strings"
	"time"
)

// BeltState is the single persisted row holding belt progression state.
// UnlockedBelts is a comma-joined list, always a prefix of the ledger order.
type BeltState struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	CurrentBelt   string `gorm:"not null" json:"current_belt"`
	UnlockedBelts string `gorm:"not null" json:"unlocked_belts"`
}

// UnlockedList splits the stored unlocked set into rank names.
func (b BeltState) UnlockedList() []string {
	if b.UnlockedBelts == "" {
		return nil
	}
	return strings.Split(b.UnlockedBelts, ",")
}

// SetUnlockedList stores the given rank names as the unlocked set.
func (b *BeltState) SetUnlockedList(names []string) {
	b.UnlockedBelts = strings.Join(names, ",")
}
