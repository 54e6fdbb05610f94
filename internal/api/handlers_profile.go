package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jaehyuncho/fitdiary/internal/services"
)

// GetProfile returns the session profile with its derived tier, counts
// and effective weekly goal.
func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	overview, err := handler.profileService.Overview(currentProfile(c).ID, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(overview)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	_, err := handler.profileService.UpdateProfile(currentProfile(c).ID, services.ProfilePatch{
		Name:         input.Name,
		ProfileImage: input.ProfileImage,
		BankAccount:  input.BankAccount,
		WeeklyGoal:   input.WeeklyGoal,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	overview, err := handler.profileService.Overview(currentProfile(c).ID, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(overview)
}
