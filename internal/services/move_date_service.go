package services

import (
	"time"

	"github.com/terraincognita07/moveday/internal/models"
)

type MoveSettingRepository interface {
	FindByUser(userID uint) (models.MoveSetting, bool, error)
	Upsert(setting *models.MoveSetting) error
}

type MoveDateService struct {
	settings MoveSettingRepository
}

func NewMoveDateService(settings MoveSettingRepository) *MoveDateService {
	return &MoveDateService{settings: settings}
}

func (service *MoveDateService) MoveDateForUser(userID uint) (time.Time, bool, error) {
	setting, found, err := service.settings.FindByUser(userID)
	if err != nil {
		return time.Time{}, false, err
	}
	if !found {
		return time.Time{}, false, nil
	}
	return setting.MoveDate, true, nil
}

// SetMoveDate validates the lead-time rule and stores the date, one row per
// user.
func (service *MoveDateService) SetMoveDate(userID uint, moveDate time.Time, now time.Time, location *time.Location) (models.MoveSetting, error) {
	if err := ValidateMoveDate(moveDate, now, location); err != nil {
		return models.MoveSetting{}, err
	}

	setting := models.MoveSetting{
		UserID:   userID,
		MoveDate: DateAtLocation(moveDate, location),
	}
	if err := service.settings.Upsert(&setting); err != nil {
		return models.MoveSetting{}, err
	}
	return setting, nil
}
