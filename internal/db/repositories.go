package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	ChecklistItems *ChecklistItemRepository
	MoveSettings   *MoveSettingRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		ChecklistItems: NewChecklistItemRepository(database),
		MoveSettings:   NewMoveSettingRepository(database),
	}
}
