package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jaehyuncho/fitdiary/internal/models"
	"github.com/jaehyuncho/fitdiary/internal/services"
)

type teamView struct {
	models.Team
	MemberCount int  `json:"memberCount"`
	Protected   bool `json:"protected"`
	Joined      bool `json:"joined"`
}

func (handler *Handler) teamToView(team models.Team, profileID string) teamView {
	_, joined := team.MemberByProfile(profileID)
	return teamView{
		Team:        team,
		MemberCount: len(team.Members),
		Protected:   team.IsProtected(),
		Joined:      joined,
	}
}

func (handler *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := handler.teamService.ListTeams()
	if err != nil {
		return respondServiceError(c, err)
	}

	profileID := currentProfile(c).ID
	views := make([]teamView, 0, len(teams))
	for _, team := range teams {
		views = append(views, handler.teamToView(team, profileID))
	}
	return c.JSON(views)
}

func (handler *Handler) CreateTeam(c *fiber.Ctx) error {
	input := teamCreateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	team, err := handler.teamService.CreateTeam(currentProfile(c), input.Name, input.WeeklyGoal, input.Password, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(handler.teamToView(team, currentProfile(c).ID))
}

// GetTeam returns the team with its live ranking and any vote that is
// still open.
func (handler *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := handler.teamService.FindTeam(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	now := handler.now()
	ranked, err := handler.teamService.RankedMembers(team, now)
	if err != nil {
		return respondServiceError(c, err)
	}

	response := fiber.Map{
		"team":    handler.teamToView(team, currentProfile(c).ID),
		"ranking": ranked,
	}
	if vote, found, err := handler.voteService.ActiveVoteForTeam(team.ID, now); err != nil {
		return respondServiceError(c, err)
	} else if found && vote.IsActive() {
		response["activeVote"] = vote
	}
	return c.JSON(response)
}

func (handler *Handler) EditTeam(c *fiber.Ctx) error {
	input := teamEditInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	team, err := handler.teamService.EditTeam(c.Params("id"), currentProfile(c).ID, services.TeamPatch{
		Name:       input.Name,
		WeeklyGoal: input.WeeklyGoal,
		Password:   input.Password,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(handler.teamToView(team, currentProfile(c).ID))
}

func (handler *Handler) JoinTeam(c *fiber.Ctx) error {
	input := teamJoinInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	team, err := handler.teamService.JoinTeam(c.Params("id"), currentProfile(c), input.Password, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(handler.teamToView(team, currentProfile(c).ID))
}

func (handler *Handler) LeaveTeam(c *fiber.Ctx) error {
	deleted, err := handler.teamService.LeaveTeam(c.Params("id"), currentProfile(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"left": true, "teamDeleted": deleted})
}

// GetMyTeam resolves the session profile's membership, if any.
func (handler *Handler) GetMyTeam(c *fiber.Ctx) error {
	team, joined, err := handler.teamService.TeamForProfile(currentProfile(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if !joined {
		return c.JSON(fiber.Map{"joined": false})
	}
	return c.JSON(fiber.Map{"joined": true, "team": handler.teamToView(team, currentProfile(c).ID)})
}

func (handler *Handler) GetTeamRanking(c *fiber.Ctx) error {
	team, err := handler.teamService.FindTeam(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	ranked, err := handler.teamService.RankedMembers(team, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(ranked)
}
