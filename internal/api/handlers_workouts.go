package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jaehyuncho/fitdiary/internal/services"
)

func (handler *Handler) ListWorkouts(c *fiber.Ctx) error {
	entries, err := handler.workoutService.ListEntries(currentProfile(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(entries)
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	input := workoutInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.workoutService.LogWorkout(currentProfile(c), services.WorkoutInput{
		ExerciseName:    input.ExerciseName,
		Comment:         input.Comment,
		DurationMinutes: input.DurationMinutes,
		ImageRef:        input.ImageRef,
	}, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) GetWorkout(c *fiber.Ctx) error {
	entry, err := handler.workoutService.FindEntry(c.Params("id"), currentProfile(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(entry)
}
