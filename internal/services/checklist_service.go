package services

import (
	"log"
	"time"

	"github.com/terraincognita07/moveday/internal/models"
)

type ChecklistRepository interface {
	ListByUser(userID uint) ([]models.ChecklistItem, error)
	CreateBatch(items []models.ChecklistItem) error
	UpdateCompleted(itemID uint, userID uint, completed bool) error
}

// ToggleWriter persists a completion flip after it has already been applied
// in memory. Implementations decide the durability policy; the default is
// fire-and-forget with no rollback, so a stricter writer can be swapped in
// without touching the toggle logic.
type ToggleWriter interface {
	WriteToggle(item models.ChecklistItem)
}

type asyncToggleWriter struct {
	items ChecklistRepository
}

func (writer *asyncToggleWriter) WriteToggle(item models.ChecklistItem) {
	go func() {
		if err := writer.items.UpdateCompleted(item.ID, item.UserID, item.Completed); err != nil {
			log.Printf("persist checklist toggle for item %d failed: %v", item.ID, err)
		}
	}()
}

type ChecklistService struct {
	items  ChecklistRepository
	writer ToggleWriter
}

func NewChecklistService(items ChecklistRepository) *ChecklistService {
	service := &ChecklistService{items: items}
	service.writer = &asyncToggleWriter{items: items}
	return service
}

// NewChecklistServiceWithWriter overrides the toggle durability policy.
func NewChecklistServiceWithWriter(items ChecklistRepository, writer ToggleWriter) *ChecklistService {
	return &ChecklistService{items: items, writer: writer}
}

// LoadChecklist returns the user's checklist, creating the default set on
// first visit. It never fails: an anonymous caller (userID 0) gets an empty
// list, and a read error is logged and treated as "no data yet", so a
// transient failure and a genuinely empty checklist are indistinguishable
// here.
func (service *ChecklistService) LoadChecklist(userID uint) []models.ChecklistItem {
	if userID == 0 {
		return []models.ChecklistItem{}
	}

	items, err := service.items.ListByUser(userID)
	if err != nil {
		log.Printf("load checklist for user %d failed: %v", userID, err)
		return service.CreateDefaultChecklist(userID)
	}
	if len(items) == 0 {
		return service.CreateDefaultChecklist(userID)
	}
	return items
}

// CreateDefaultChecklist materializes every template into an instance owned
// by the user and bulk-inserts them. The insert ignores rows that already
// exist for (user, item key), so two racing first loads cannot duplicate a
// checklist. When persistence fails the user still gets a populated list,
// fabricated locally with positional ids that do not survive a reload.
func (service *ChecklistService) CreateDefaultChecklist(userID uint) []models.ChecklistItem {
	templates := ChecklistTemplates()
	now := time.Now()

	items := make([]models.ChecklistItem, 0, len(templates))
	for _, template := range templates {
		items = append(items, instantiateTemplate(template, userID, now))
	}

	if err := service.items.CreateBatch(items); err != nil {
		log.Printf("create default checklist for user %d failed: %v", userID, err)
		return fallbackChecklist(userID, templates, now)
	}

	persisted, err := service.items.ListByUser(userID)
	if err != nil {
		log.Printf("reload default checklist for user %d failed: %v", userID, err)
		return fallbackChecklist(userID, templates, now)
	}
	if len(persisted) == 0 {
		return fallbackChecklist(userID, templates, now)
	}
	return persisted
}

// ToggleItem flips completion for the matching item in place and reports
// whether a match was found. The in-memory flip is authoritative for the
// caller immediately; the persistence write happens through the writer and
// is never rolled back on failure, so memory can drift from the store until
// the next full load.
func (service *ChecklistService) ToggleItem(items []models.ChecklistItem, itemID uint) ([]models.ChecklistItem, bool) {
	for index := range items {
		if items[index].ID != itemID {
			continue
		}
		items[index].Completed = !items[index].Completed
		service.writer.WriteToggle(items[index])
		return items, true
	}
	return items, false
}

func instantiateTemplate(template ChecklistTemplate, userID uint, now time.Time) models.ChecklistItem {
	return models.ChecklistItem{
		UserID:        userID,
		ItemKey:       template.Key,
		Title:         template.Title,
		Description:   template.Description,
		Category:      template.Category,
		DDayRange:     template.DDayRange,
		MinOffsetDays: template.MinOffsetDays,
		MaxOffsetDays: template.MaxOffsetDays,
		Completed:     false,
		HasGuide:      template.HasGuide,
		HasService:    template.HasService,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func fallbackChecklist(userID uint, templates []ChecklistTemplate, now time.Time) []models.ChecklistItem {
	items := make([]models.ChecklistItem, 0, len(templates))
	for index, template := range templates {
		item := instantiateTemplate(template, userID, now)
		item.ID = uint(index + 1)
		item.Persisted = false
		items = append(items, item)
	}
	return items
}
