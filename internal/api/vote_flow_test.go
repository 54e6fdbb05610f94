package api

import (
	"net/http"
	"testing"
)

func TestRemovalVoteFlow(t *testing.T) {
	app := newTestApp(t)

	leader := newSessionClient(t, app)
	registerProfile(t, leader, "리더")
	created := decodeJSON[map[string]any](t, leader.do(http.MethodPost, "/api/teams", map[string]any{
		"name": "팀", "weeklyGoal": 5,
	}))
	teamID, _ := created["id"].(string)

	second := newSessionClient(t, app)
	secondProfile := registerProfile(t, second, "영희")
	requireStatus(t, second.do(http.MethodPost, "/api/teams/"+teamID+"/join", map[string]any{}), http.StatusOK)

	third := newSessionClient(t, app)
	registerProfile(t, third, "철수")
	requireStatus(t, third.do(http.MethodPost, "/api/teams/"+teamID+"/join", map[string]any{}), http.StatusOK)

	targetID, _ := secondProfile["id"].(string)

	t.Run("open rejects a blank reason", func(t *testing.T) {
		response := leader.do(http.MethodPost, "/api/teams/"+teamID+"/vote", map[string]any{
			"targetId": targetID, "reason": "  ",
		})
		requireStatus(t, response, http.StatusBadRequest)
	})

	response := leader.do(http.MethodPost, "/api/teams/"+teamID+"/vote", map[string]any{
		"targetId": targetID, "reason": "매주 인증을 건너뜀",
	})
	requireStatus(t, response, http.StatusCreated)
	vote := decodeJSON[map[string]any](t, response)
	voteID, _ := vote["id"].(string)
	if vote["status"] != "active" || vote["outcome"] != "pending" {
		t.Fatalf("vote = %v", vote)
	}

	t.Run("only one vote at a time", func(t *testing.T) {
		response := third.do(http.MethodPost, "/api/teams/"+teamID+"/vote", map[string]any{
			"targetId": targetID, "reason": "다른 이유",
		})
		requireStatus(t, response, http.StatusConflict)
	})

	t.Run("team view carries the open vote", func(t *testing.T) {
		team := decodeJSON[map[string]any](t, leader.do(http.MethodGet, "/api/teams/"+teamID, nil))
		active, _ := team["activeVote"].(map[string]any)
		if active["id"] != voteID {
			t.Fatalf("activeVote = %v, want %s", team["activeVote"], voteID)
		}
	})

	t.Run("ballots", func(t *testing.T) {
		requireStatus(t, leader.do(http.MethodPost, "/api/votes/"+voteID+"/ballots", map[string]any{"choice": "abstain"}), http.StatusBadRequest)

		outsider := newSessionClient(t, app)
		registerProfile(t, outsider, "외부인")
		requireStatus(t, outsider.do(http.MethodPost, "/api/votes/"+voteID+"/ballots", map[string]any{"choice": "agree"}), http.StatusForbidden)

		cast := leader.do(http.MethodPost, "/api/votes/"+voteID+"/ballots", map[string]any{"choice": "agree"})
		requireStatus(t, cast, http.StatusOK)

		// The target has a say as well.
		cast = second.do(http.MethodPost, "/api/votes/"+voteID+"/ballots", map[string]any{"choice": "disagree"})
		requireStatus(t, cast, http.StatusOK)
		current := decodeJSON[map[string]any](t, cast)
		ballots, _ := current["ballots"].([]any)
		if len(ballots) != 2 {
			t.Fatalf("ballots = %v, want 2", current["ballots"])
		}

		// Changing one's mind replaces the earlier ballot.
		cast = leader.do(http.MethodPost, "/api/votes/"+voteID+"/ballots", map[string]any{"choice": "disagree"})
		requireStatus(t, cast, http.StatusOK)
		current = decodeJSON[map[string]any](t, cast)
		ballots, _ = current["ballots"].([]any)
		if len(ballots) != 2 {
			t.Fatalf("ballots after revision = %v, want still 2", current["ballots"])
		}
	})

	t.Run("vote endpoint reports the poll", func(t *testing.T) {
		status := decodeJSON[map[string]any](t, third.do(http.MethodGet, "/api/teams/"+teamID+"/vote", nil))
		if status["active"] != true {
			t.Fatalf("status = %v", status)
		}
	})
}
