package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetWeeklyStats returns the seven per-day bars for the current week.
func (handler *Handler) GetWeeklyStats(c *fiber.Ctx) error {
	bars, err := handler.statsService.WeekBars(currentProfile(c).ID, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(bars)
}

func (handler *Handler) GetMonthlyStats(c *fiber.Ctx) error {
	trend, err := handler.statsService.MonthlyTrend(currentProfile(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(trend)
}

// GetCalendarDay lists the session profile's entries for one date,
// given as YYYY-MM-DD.
func (handler *Handler) GetCalendarDay(c *fiber.Ctx) error {
	day, err := time.ParseInLocation("2006-01-02", c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entries, err := handler.statsService.EntriesOn(currentProfile(c).ID, day)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(entries)
}
