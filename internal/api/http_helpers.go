package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jaehyuncho/fitdiary/internal/services"
	"gorm.io/gorm"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError translates the service sentinel errors into HTTP
// statuses. Anything unrecognized is a 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")

	case errors.Is(err, services.ErrEmptyTeamName),
		errors.Is(err, services.ErrGoalOutOfRange),
		errors.Is(err, services.ErrEmptyProfileName),
		errors.Is(err, services.ErrExerciseNameRequired),
		errors.Is(err, services.ErrProofImageRequired),
		errors.Is(err, services.ErrInvalidDuration),
		errors.Is(err, services.ErrEmptyVoteReason),
		errors.Is(err, services.ErrInvalidVoteChoice),
		errors.Is(err, services.ErrTooFewMembers),
		errors.Is(err, services.ErrTargetNotMember),
		errors.Is(err, services.ErrEmptyPostTitle),
		errors.Is(err, services.ErrEmptyPostContent),
		errors.Is(err, services.ErrEmptyComment):
		return apiError(c, fiber.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrBankAccountRequired),
		errors.Is(err, services.ErrWrongTeamPassword),
		errors.Is(err, services.ErrNotTeamMember),
		errors.Is(err, services.ErrNotTeamLeader),
		errors.Is(err, services.ErrNotEntryOwner),
		errors.Is(err, services.ErrNotPostAuthor):
		return apiError(c, fiber.StatusForbidden, err.Error())

	case errors.Is(err, services.ErrAlreadyInTeam),
		errors.Is(err, services.ErrVoteInProgress),
		errors.Is(err, services.ErrVoteCompleted):
		return apiError(c, fiber.StatusConflict, err.Error())
	}

	return apiError(c, fiber.StatusInternalServerError, "internal error")
}
