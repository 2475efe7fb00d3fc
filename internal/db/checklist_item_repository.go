package db

import (
	"github.com/terraincognita07/moveday/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChecklistItemRepository struct {
	database *gorm.DB
}

func NewChecklistItemRepository(database *gorm.DB) *ChecklistItemRepository {
	return &ChecklistItemRepository{database: database}
}

// ListByUser returns the user's items ordered by category with insertion
// order breaking ties, matching how the checklist is grouped for display.
func (repo *ChecklistItemRepository) ListByUser(userID uint) ([]models.ChecklistItem, error) {
	items := make([]models.ChecklistItem, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("category ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	for index := range items {
		items[index].Persisted = true
	}
	return items, nil
}

// CreateBatch bulk-inserts items, ignoring rows that collide on
// (user_id, item_key). The unique index plus DO NOTHING makes default
// checklist creation idempotent even when two loads race.
func (repo *ChecklistItemRepository) CreateBatch(items []models.ChecklistItem) error {
	if len(items) == 0 {
		return nil
	}
	return repo.database.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&items).Error
}

func (repo *ChecklistItemRepository) UpdateCompleted(itemID uint, userID uint, completed bool) error {
	return repo.database.Model(&models.ChecklistItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("completed", completed).Error
}
