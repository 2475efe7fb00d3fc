package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/moveday/internal/models"
	"github.com/terraincognita07/moveday/internal/services"
)

// GetChecklist loads (and on first visit creates) the signed-in user's
// checklist, together with progress figures and the D-day label when a move
// date is on record.
func (handler *Handler) GetChecklist(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	items := handler.checklistService.LoadChecklist(user.ID)
	response := fiber.Map{
		"items":    items,
		"progress": progressPayload(items),
	}

	if dday, found := handler.ddayPayload(user.ID, time.Now().In(handler.location)); found {
		response["d_day"] = dday
	}

	return c.JSON(response)
}

// ToggleChecklistItem flips completion for one item. The response reflects
// the in-memory flip immediately; the write to the store happens in the
// background and is not awaited.
func (handler *Handler) ToggleChecklistItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	itemID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || itemID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid item id")
	}

	items := handler.checklistService.LoadChecklist(user.ID)
	items, found := handler.checklistService.ToggleItem(items, uint(itemID))
	if !found {
		return apiError(c, fiber.StatusNotFound, "item not found")
	}

	return c.JSON(fiber.Map{
		"items":    items,
		"progress": progressPayload(items),
	})
}

func (handler *Handler) GetChecklistProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	items := handler.checklistService.LoadChecklist(user.ID)
	return c.JSON(fiber.Map{"progress": progressPayload(items)})
}

func progressPayload(items []models.ChecklistItem) fiber.Map {
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return fiber.Map{
		"total":      len(items),
		"completed":  completed,
		"overall":    services.OverallProgress(items),
		"categories": services.ProgressByCategory(items),
	}
}

func (handler *Handler) ddayPayload(userID uint, now time.Time) (fiber.Map, bool) {
	moveDate, found, err := handler.moveDateService.MoveDateForUser(userID)
	if err != nil || !found {
		return nil, false
	}

	offset := services.ComputeDayOffset(moveDate, now, handler.location)
	return fiber.Map{
		"move_date": moveDate.Format("2006-01-02"),
		"offset":    offset,
		"label":     services.FormatDayOffset(offset),
	}, true
}
