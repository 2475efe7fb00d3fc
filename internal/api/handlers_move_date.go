package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/moveday/internal/services"
)

type moveDateInput struct {
	MoveDate string `json:"move_date" form:"move_date"`
}

func (handler *Handler) GetMoveDate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dday, found := handler.ddayPayload(user.ID, time.Now().In(handler.location))
	if !found {
		return c.JSON(fiber.Map{"move_date": nil})
	}
	return c.JSON(dday)
}

// UpdateMoveDate sets the planned move date. The 14-day minimum lead is
// enforced here, at selection time only.
func (handler *Handler) UpdateMoveDate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := moveDateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	moveDate, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(input.MoveDate), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid move date")
	}

	now := time.Now().In(handler.location)
	setting, err := handler.moveDateService.SetMoveDate(user.ID, moveDate, now, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrMoveDateTooSoon) {
			return apiError(c, fiber.StatusUnprocessableEntity, "move date must be at least 14 days away")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save move date")
	}

	offset := services.ComputeDayOffset(setting.MoveDate, now, handler.location)
	return c.JSON(fiber.Map{
		"move_date": setting.MoveDate.Format("2006-01-02"),
		"offset":    offset,
		"label":     services.FormatDayOffset(offset),
	})
}
