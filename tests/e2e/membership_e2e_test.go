//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/festy23/hackteams/internal/cleanup"
	teamModel "github.com/festy23/hackteams/internal/team/model"
)

func TestE2ETestSuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func (s *E2ETestSuite) TestHealthCheck() {
	resp, respBody := s.doRequest("GET", "/health", "", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(respBody), "ok")
}

func (s *E2ETestSuite) TestTeamLifecycle() {
	team := s.createTeam("alice", "hack-1", "gophers", 3)

	// Fill the remaining seats
	resp, _ := s.doRequest("POST", "/teams/"+team.ID+"/join", "bob", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp, _ = s.doRequest("POST", "/teams/"+team.ID+"/join", "carol", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, respBody := s.doRequest("POST", "/teams/"+team.ID+"/join", "dave", nil)
	s.Equal(http.StatusConflict, resp.StatusCode)
	code, _ := s.parseErrorResponse(respBody)
	s.Equal("TEAM_FULL", code)

	// Leader departs, leadership moves to the oldest seat
	resp, _ = s.doRequest("POST", "/teams/"+team.ID+"/leave", "alice", nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)

	resp, got := s.getTeam(team.ID)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(2, got.ActiveCount)
	s.Equal("bob", got.Members[0].UserID)
	s.Equal(teamModel.RoleLeader, got.Members[0].Role)

	// The freed seat is open again
	resp, _ = s.doRequest("POST", "/teams/"+team.ID+"/join", "dave", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	// When the last member walks away the team is gone
	for _, userID := range []string{"bob", "carol", "dave"} {
		resp, _ = s.doRequest("POST", "/teams/"+team.ID+"/leave", userID, nil)
		s.Equal(http.StatusNoContent, resp.StatusCode)
	}
	resp, _ = s.getTeam(team.ID)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *E2ETestSuite) TestOneTeamPerHackathon() {
	first := s.createTeam("alice", "hack-1", "gophers", 4)
	s.createTeam("bob", "hack-1", "rustaceans", 4)

	resp, respBody := s.doRequest("POST", "/teams/"+first.ID+"/join", "bob", nil)
	s.Equal(http.StatusConflict, resp.StatusCode)
	code, _ := s.parseErrorResponse(respBody)
	s.Equal("ALREADY_IN_HACKATHON_TEAM", code)

	// A different hackathon is fine
	other := s.createTeam("carol", "hack-2", "pythonistas", 4)
	resp, _ = s.doRequest("POST", "/teams/"+other.ID+"/join", "bob", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *E2ETestSuite) TestJoinRequestFlow() {
	team := s.createTeam("alice", "hack-1", "gophers", 2)
	request := s.submitRequest(team.ID, "bob")

	// Duplicate submission is rejected while the first is pending
	resp, respBody := s.doRequest("POST", "/teams/"+team.ID+"/requests", "bob", nil)
	s.Equal(http.StatusConflict, resp.StatusCode)
	code, _ := s.parseErrorResponse(respBody)
	s.Equal("DUPLICATE_PENDING", code)

	// Only the leader sees the queue
	resp, _ = s.doRequest("GET", fmt.Sprintf("/teams/%s/requests", team.ID), "bob", nil)
	s.Equal(http.StatusForbidden, resp.StatusCode)

	resp, respBody = s.doRequest("GET", fmt.Sprintf("/teams/%s/requests", team.ID), "alice", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(respBody), request.ID)

	resp, _ = s.doRequest("POST", "/requests/"+request.ID+"/accept", "alice", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	_, got := s.getTeam(team.ID)
	s.Require().NotNil(got)
	s.Equal(2, got.ActiveCount)

	// Resolved requests cannot be resolved again
	resp, respBody = s.doRequest("POST", "/requests/"+request.ID+"/accept", "alice", nil)
	s.Equal(http.StatusConflict, resp.StatusCode)
	code, _ = s.parseErrorResponse(respBody)
	s.Equal("REQUEST_NOT_PENDING", code)
}

func (s *E2ETestSuite) TestAcceptIntoFullTeamStaysPending() {
	team := s.createTeam("alice", "hack-1", "gophers", 2)
	resp, _ := s.doRequest("POST", "/teams/"+team.ID+"/join", "bob", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	request := s.submitRequest(team.ID, "carol")

	resp, respBody := s.doRequest("POST", "/requests/"+request.ID+"/accept", "alice", nil)
	s.Equal(http.StatusConflict, resp.StatusCode)
	code, _ := s.parseErrorResponse(respBody)
	s.Equal("TEAM_FULL", code)

	// The request survives the failed accept and goes through once a
	// seat frees up.
	resp, _ = s.doRequest("POST", "/teams/"+team.ID+"/leave", "bob", nil)
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)

	resp, _ = s.doRequest("POST", "/requests/"+request.ID+"/accept", "alice", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *E2ETestSuite) TestConcurrentJoinsRespectCapacity() {
	team := s.createTeam("alice", "hack-1", "gophers", 3)

	const racers = 6
	results := make([]int, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("racer-%d", i)
			resp, _, err := s.doRequestNoFail("POST", "/teams/"+team.ID+"/join", userID, nil)
			if err != nil {
				results[i] = -1
				return
			}
			results[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	joined := 0
	for _, statusCode := range results {
		switch statusCode {
		case http.StatusOK:
			joined++
		case http.StatusConflict:
		default:
			s.Failf("unexpected status", "got %d", statusCode)
		}
	}
	// Two free seats, never more than two winners
	s.Equal(2, joined)

	_, got := s.getTeam(team.ID)
	s.Require().NotNil(got)
	s.Equal(3, got.ActiveCount)
}

func (s *E2ETestSuite) TestUserDeletionReconciliation() {
	resp, _ := s.doRequest("POST", "/users", "dave", map[string]interface{}{
		"display_name": "Dave",
		"skills":       []string{"go", "sql"},
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	first := s.createTeam("alice", "hack-1", "gophers", 3)
	second := s.createTeam("dave", "hack-2", "night-owls", 3)
	resp, _ = s.doRequest("POST", "/teams/"+first.ID+"/join", "dave", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp, _ = s.doRequest("POST", "/teams/"+second.ID+"/join", "erin", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp, _ = s.doRequest("DELETE", "/users/me", "dave", nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)

	// Profile is gone
	resp, _ = s.doRequest("GET", "/users/dave", "", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	// Seat in alice's team is vacated
	_, got := s.getTeam(first.ID)
	s.Require().NotNil(got)
	s.Equal(1, got.ActiveCount)
	s.Equal(1, got.VacancyCount)

	// Dave led the second team, so erin takes over
	_, got = s.getTeam(second.ID)
	s.Require().NotNil(got)
	s.Equal("erin", got.Members[0].UserID)
	s.Equal(teamModel.RoleLeader, got.Members[0].Role)
}

func (s *E2ETestSuite) TestSweepRepairsDrift() {
	team := s.createTeam("alice", "hack-1", "gophers", 3)
	resp, _ := s.doRequest("POST", "/teams/"+team.ID+"/join", "bob", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	// Simulate a reconciliation that died after vacating the leader
	// seat but before promoting a successor.
	err := s.db.Exec(
		"UPDATE team_members SET is_deleted = TRUE, role = 'vacant' WHERE team_id = ? AND user_id = ?",
		team.ID, "alice",
	).Error
	s.Require().NoError(err)

	resp, respBody := s.doRequest("POST", "/internal/sweep", "ops", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var stats cleanup.SweepStats
	s.Require().NoError(json.Unmarshal(respBody, &stats))
	s.Equal(1, stats.Promoted)
	s.Equal(0, stats.Failed)

	_, got := s.getTeam(team.ID)
	s.Require().NotNil(got)
	s.Equal("bob", got.Members[0].UserID)
	s.Equal(teamModel.RoleLeader, got.Members[0].Role)

	// A second pass finds nothing to do
	resp, respBody = s.doRequest("POST", "/internal/sweep", "ops", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().NoError(json.Unmarshal(respBody, &stats))
	s.Equal(0, stats.Promoted)
	s.Equal(0, stats.Deleted)
}
