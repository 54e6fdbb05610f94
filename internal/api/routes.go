package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.SessionRequired)

	api.Get("/profile", handler.GetProfile)
	api.Put("/profile", handler.UpdateProfile)

	workouts := api.Group("/workouts")
	workouts.Get("", handler.ListWorkouts)
	workouts.Post("", handler.CreateWorkout)
	workouts.Get("/:id", handler.GetWorkout)

	stats := api.Group("/stats")
	stats.Get("/weekly", handler.GetWeeklyStats)
	stats.Get("/monthly", handler.GetMonthlyStats)
	api.Get("/calendar/:date", handler.GetCalendarDay)

	teams := api.Group("/teams")
	teams.Get("", handler.ListTeams)
	teams.Post("", handler.CreateTeam)
	teams.Get("/mine", handler.GetMyTeam)
	teams.Get("/:id", handler.GetTeam)
	teams.Put("/:id", handler.EditTeam)
	teams.Post("/:id/join", handler.JoinTeam)
	teams.Post("/:id/leave", handler.LeaveTeam)
	teams.Get("/:id/ranking", handler.GetTeamRanking)
	teams.Post("/:id/vote", handler.OpenVote)
	teams.Get("/:id/vote", handler.GetActiveVote)
	api.Post("/votes/:id/ballots", handler.CastBallot)

	posts := api.Group("/posts")
	posts.Get("", handler.ListPosts)
	posts.Post("", handler.CreatePost)
	posts.Get("/:id", handler.GetPost)
	posts.Put("/:id", handler.EditPost)
	posts.Delete("/:id", handler.DeletePost)
	posts.Post("/:id/like", handler.TogglePostLike)
	posts.Post("/:id/comments", handler.AddPostComment)
}
