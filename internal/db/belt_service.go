package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kfutrack/kfu/internal/models"
)

// GetBeltState returns the persisted belt progression state, creating the
// default (first rank only) row on first use.
func GetBeltState(startingRank string) (*models.BeltState, error) {
	var state models.BeltState

	err := DB.First(&state).Error
	if err == nil {
		return &state, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	state = models.BeltState{
		CurrentBelt:   startingRank,
		UnlockedBelts: startingRank,
	}
	if err := DB.Create(&state).Error; err != nil {
		return nil, err
	}

	return &state, nil
}

// SaveBeltState writes the belt progression state back
func SaveBeltState(state *models.BeltState) error {
	return DB.Save(state).Error
}
