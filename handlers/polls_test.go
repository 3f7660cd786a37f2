// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lmk-app/decide-server/ai"
	"github.com/lmk-app/decide-server/auth"
	"github.com/lmk-app/decide-server/decision"
	"github.com/lmk-app/decide-server/models"
	"github.com/lmk-app/decide-server/testutil"
)

func TestCreatePollHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	// Suggestion failures must never fail poll creation
	engine := decision.New(conn, &testutil.StubSuggester{Err: errors.New("down")}, 0)
	handler := NewPollHandler(engine)

	alice := testutil.CreateTestUser(t, conn, "Alice")
	outsider := testutil.CreateTestUser(t, conn, "Outsider")
	groupID := testutil.CreateTestGroup(t, conn, alice, "Foodies")

	tests := []struct {
		name           string
		userID         string
		requestBody    models.CreatePollRequest
		expectedStatus int
	}{
		{
			name:           "fallback options on suggestion failure",
			userID:         alice,
			requestBody:    models.CreatePollRequest{Title: "Dinner spot", Category: models.CategoryRestaurants},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "non-member forbidden",
			userID:         outsider,
			requestBody:    models.CreatePollRequest{Title: "Dinner spot", Category: models.CategoryRestaurants},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "unknown category",
			userID:         alice,
			requestBody:    models.CreatePollRequest{Title: "Dinner spot", Category: "podcasts"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/groups/"+groupID+"/polls", tt.requestBody, map[string]string{
				auth.UserIDHeader: tt.userID,
			})
			req.SetPathValue("id", groupID)
			w := httptest.NewRecorder()

			handler.CreatePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var poll models.PollWithOptions
				testutil.AssertJSON(t, w, &poll)
				if len(poll.Options) != 4 {
					t.Fatalf("Expected 4 options, got %d", len(poll.Options))
				}
				for i, opt := range poll.Options {
					if opt.PersonalizedScore != ai.FallbackScores[i] {
						t.Errorf("Option %d: expected fallback score %d, got %d", i, ai.FallbackScores[i], opt.PersonalizedScore)
					}
				}
			}
		})
	}
}

func TestCastVoteHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := decision.New(conn, nil, 0)
	handler := NewPollHandler(engine)

	alice := testutil.CreateTestUser(t, conn, "Alice")
	groupID := testutil.CreateTestGroup(t, conn, alice, "Movie Club")
	pollID := testutil.CreateTestPoll(t, conn, groupID, alice, "Movie night", models.CategoryMovies)
	optA := testutil.AddTestOption(t, conn, pollID, "Dune", 90, 0)
	optB := testutil.AddTestOption(t, conn, pollID, "Heat", 85, 1)

	castVote := func(optionID string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/polls/"+pollID+"/votes",
			models.CastVoteRequest{OptionID: optionID},
			map[string]string{auth.UserIDHeader: alice})
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()
		handler.CastVote(w, req)
		return w
	}

	// First vote succeeds with fresh tallies
	w := castVote(optA)
	testutil.AssertStatus(t, w, http.StatusOK)
	var poll models.PollWithOptions
	testutil.AssertJSON(t, w, &poll)
	if poll.MyOptionID != optA {
		t.Errorf("Expected my_option_id %s, got %s", optA, poll.MyOptionID)
	}
	if poll.Options[0].VoteCount != 1 {
		t.Errorf("Expected vote count 1, got %d", poll.Options[0].VoteCount)
	}

	// Same option again conflicts
	testutil.AssertStatus(t, castVote(optA), http.StatusConflict)

	// Switching moves the vote
	w = castVote(optB)
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &poll)
	if poll.Options[0].VoteCount != 0 || poll.Options[1].VoteCount != 1 {
		t.Errorf("Expected tallies [0 1], got [%d %d]", poll.Options[0].VoteCount, poll.Options[1].VoteCount)
	}

	// Missing option id is a bad request
	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/votes",
		models.CastVoteRequest{},
		map[string]string{auth.UserIDHeader: alice})
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	handler.CastVote(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestGetPollHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := decision.New(conn, nil, 0)
	handler := NewPollHandler(engine)

	alice := testutil.CreateTestUser(t, conn, "Alice")
	groupID := testutil.CreateTestGroup(t, conn, alice, "Readers")
	pollID := testutil.CreateTestPoll(t, conn, groupID, alice, "Next book", models.CategoryReading)
	testutil.AddTestOption(t, conn, pollID, "Dune", 85, 0)

	tests := []struct {
		name           string
		userID         string
		pollID         string
		expectedStatus int
	}{
		{name: "member reads poll", userID: alice, pollID: pollID, expectedStatus: http.StatusOK},
		{name: "unknown poll", userID: alice, pollID: "nonexistent", expectedStatus: http.StatusNotFound},
		{name: "outsider forbidden", userID: "stranger", pollID: pollID, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/polls/"+tt.pollID, nil, map[string]string{
				auth.UserIDHeader: tt.userID,
			})
			req.SetPathValue("id", tt.pollID)
			w := httptest.NewRecorder()

			handler.GetPoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}
