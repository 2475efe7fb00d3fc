package models

import "time"

const (
	CategoryPreparation = "preparation"
	CategoryMovingDay   = "moving_day"
	CategoryAfterMoving = "after_moving"
)

// Categories lists the checklist categories in display order.
func Categories() []string {
	return []string{CategoryPreparation, CategoryMovingDay, CategoryAfterMoving}
}

// ChecklistItem is one user's materialized copy of a template entry.
// Template fields are copied at creation time; later template edits do not
// touch existing rows.
type ChecklistItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:uidx_user_item" json:"-"`
	ItemKey       string    `gorm:"not null;uniqueIndex:uidx_user_item" json:"item_key"`
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `gorm:"not null" json:"description"`
	Category      string    `gorm:"not null" json:"category"`
	DDayRange     string    `gorm:"not null" json:"d_day_range"`
	MinOffsetDays int       `gorm:"not null" json:"min_offset_days"`
	MaxOffsetDays int       `gorm:"not null" json:"max_offset_days"`
	Completed     bool      `gorm:"not null;default:false" json:"completed"`
	HasGuide      bool      `gorm:"not null;default:false" json:"has_guide"`
	HasService    bool      `gorm:"not null;default:false" json:"has_service"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`

	// Persisted is false only for locally fabricated fallback items whose
	// IDs are positional placeholders and do not survive a reload.
	Persisted bool `gorm:"-" json:"persisted"`
}
