package db

import (
	"github.com/terraincognita07/moveday/internal/models"
	"gorm.io/gorm"
)

type MoveSettingRepository struct {
	database *gorm.DB
}

func NewMoveSettingRepository(database *gorm.DB) *MoveSettingRepository {
	return &MoveSettingRepository{database: database}
}

func (repo *MoveSettingRepository) FindByUser(userID uint) (models.MoveSetting, bool, error) {
	setting := models.MoveSetting{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&setting)
	if result.Error != nil {
		return models.MoveSetting{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MoveSetting{}, false, nil
	}
	return setting, true, nil
}

func (repo *MoveSettingRepository) Upsert(setting *models.MoveSetting) error {
	existing := models.MoveSetting{}
	result := repo.database.
		Where("user_id = ?", setting.UserID).
		Limit(1).
		Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.database.Create(setting).Error
	}

	existing.MoveDate = setting.MoveDate
	if err := repo.database.Save(&existing).Error; err != nil {
		return err
	}
	*setting = existing
	return nil
}
