package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) OpenVote(c *fiber.Ctx) error {
	input := voteOpenInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	vote, err := handler.voteService.OpenVote(c.Params("id"), currentProfile(c).ID, input.TargetID, input.Reason, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vote)
}

// GetActiveVote reports the team's open vote. Loading an expired vote
// settles it first, so callers always see the final state.
func (handler *Handler) GetActiveVote(c *fiber.Ctx) error {
	vote, found, err := handler.voteService.ActiveVoteForTeam(c.Params("id"), handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	if !found {
		return c.JSON(fiber.Map{"active": false})
	}
	return c.JSON(fiber.Map{"active": vote.IsActive(), "vote": vote})
}

func (handler *Handler) CastBallot(c *fiber.Ctx) error {
	input := ballotInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	vote, err := handler.voteService.CastBallot(c.Params("id"), currentProfile(c).ID, input.Choice, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(vote)
}
