// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decision

import (
	"context"
	"errors"
	"testing"

	"github.com/lmk-app/decide-server/ai"
	"github.com/lmk-app/decide-server/models"
	"github.com/lmk-app/decide-server/testutil"
)

func score(v float64) *float64 { return &v }

func TestCreatePollValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := New(conn, nil, 0)

	alice := testutil.CreateTestUser(t, conn, "Alice")
	outsider := testutil.CreateTestUser(t, conn, "Outsider")
	groupID := testutil.CreateTestGroup(t, conn, alice, "Foodies")

	tests := []struct {
		name         string
		cmd          CreatePoll
		expectedKind Kind
	}{
		{
			name:         "non-member denied",
			cmd:          CreatePoll{GroupID: groupID, RequesterID: outsider, Title: "Dinner", Category: models.CategoryRestaurants},
			expectedKind: KindAuthorization,
		},
		{
			name:         "empty title",
			cmd:          CreatePoll{GroupID: groupID, RequesterID: alice, Title: "  ", Category: models.CategoryRestaurants},
			expectedKind: KindValidation,
		},
		{
			name:         "unknown category",
			cmd:          CreatePoll{GroupID: groupID, RequesterID: alice, Title: "Dinner", Category: "podcasts"},
			expectedKind: KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Execute(context.Background(), tt.cmd)
			if KindOf(err) != tt.expectedKind {
				t.Fatalf("Expected error kind %v, got %v (err: %v)", tt.expectedKind, KindOf(err), err)
			}
		})
	}
}

func TestCreatePollWithSuggestions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	stub := &testutil.StubSuggester{
		Suggestions: []ai.Suggestion{
			{Title: "Sushi Palace", Description: "Fresh fish", RawScore: score(92)},
			{Title: "Taco Stand", Description: "Quick bites", RawScore: score(85)},
			{Title: "Pasta House", Description: "Cozy Italian", RawScore: score(78)},
			{Title: "Burger Joint", Description: "Classic patties", RawScore: score(70)},
			{Title: "Fifth Wheel", Description: "Should be dropped", RawScore: score(60)},
		},
	}
	engine := New(conn, stub, 0)

	alice := testutil.CreateTestUser(t, conn, "Alice")
	groupID := testutil.CreateTestGroup(t, conn, alice, "Foodies")

	result, err := engine.Execute(context.Background(), CreatePoll{
		GroupID: groupID, RequesterID: alice, Title: "Friday dinner", Category: models.CategoryRestaurants,
	})
	if err != nil {
		t.Fatalf("Failed to create poll: %v", err)
	}

	poll := result.(*models.PollWithOptions)
	if len(poll.Options) != 4 {
		t.Fatalf("Expected exactly 4 options, got %d", len(poll.Options))
	}
	if poll.Options[0].Title != "Sushi Palace" || poll.Options[3].Title != "Burger Joint" {
		t.Errorf("Expected first four suggestions in order, got %+v", poll.Options)
	}
	if poll.Options[0].PersonalizedScore != 92 {
		t.Errorf("Expected score 92, got %d", poll.Options[0].PersonalizedScore)
	}

	// Poll creation announces itself in the group chat
	messages, err := engine.GroupMessages(alice, groupID)
	if err != nil {
		t.Fatalf("Failed to list messages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("Expected 1 notification message, got %d", len(messages))
	}
	if messages[0].PollID == nil || *messages[0].PollID != poll.Poll.ID {
		t.Errorf("Expected message linked to poll %s, got %+v", poll.Poll.ID, messages[0])
	}
}

func TestCreatePollFallback(t *testing.T) {
	tests := []struct {
		name string
		stub *testutil.StubSuggester
	}{
		{
			name: "suggester error",
			stub: &testutil.StubSuggester{Err: errors.New("service unavailable")},
		},
		{
			name: "too few suggestions",
			stub: &testutil.StubSuggester{Suggestions: []ai.Suggestion{
				{Title: "Only One", RawScore: score(90)},
			}},
		},
		{
			name: "blank titles filtered below four",
			stub: &testutil.StubSuggester{Suggestions: []ai.Suggestion{
				{Title: "Real", RawScore: score(90)},
				{Title: "  ", RawScore: score(80)},
				{Title: "", RawScore: score(70)},
				{Title: "Also Real", RawScore: score(60)},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := testutil.SetupTestDB(t)
			engine := New(conn, tt.stub, 0)

			alice := testutil.CreateTestUser(t, conn, "Alice")
			groupID := testutil.CreateTestGroup(t, conn, alice, "Movie Club")

			result, err := engine.Execute(context.Background(), CreatePoll{
				GroupID: groupID, RequesterID: alice, Title: "Movie night", Category: models.CategoryMovies,
			})
			if err != nil {
				t.Fatalf("Expected poll creation to succeed on fallback, got %v", err)
			}

			poll := result.(*models.PollWithOptions)
			if len(poll.Options) != 4 {
				t.Fatalf("Expected 4 fallback options, got %d", len(poll.Options))
			}
			for i, opt := range poll.Options {
				if opt.PersonalizedScore != ai.FallbackScores[i] {
					t.Errorf("Option %d: expected score %d, got %d", i, ai.FallbackScores[i], opt.PersonalizedScore)
				}
			}
		})
	}
}

func TestPollDetail(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := New(conn, nil, 0)

	alice := testutil.CreateTestUser(t, conn, "Alice")
	bob := testutil.CreateTestUser(t, conn, "Bob")
	groupID := testutil.CreateTestGroup(t, conn, alice, "Foodies")
	testutil.AddTestMember(t, conn, groupID, bob)
	pollID := testutil.CreateTestPoll(t, conn, groupID, alice, "Lunch spot", models.CategoryRestaurants)
	opt1 := testutil.AddTestOption(t, conn, pollID, "Ramen", 88, 0)
	testutil.AddTestOption(t, conn, pollID, "Pizza", 75, 1)
	testutil.CastTestVote(t, conn, pollID, opt1, bob)

	detail, err := engine.PollDetail(bob, pollID)
	if err != nil {
		t.Fatalf("Failed to get poll detail: %v", err)
	}
	if len(detail.Options) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(detail.Options))
	}
	if detail.Options[0].VoteCount != 1 || detail.Options[1].VoteCount != 0 {
		t.Errorf("Expected tallies [1 0], got [%d %d]", detail.Options[0].VoteCount, detail.Options[1].VoteCount)
	}
	if detail.MyOptionID != opt1 {
		t.Errorf("Expected my_option_id %s, got %s", opt1, detail.MyOptionID)
	}

	// Alice has not voted; her view carries no choice
	aliceView, err := engine.PollDetail(alice, pollID)
	if err != nil {
		t.Fatalf("Failed to get poll detail: %v", err)
	}
	if aliceView.MyOptionID != "" {
		t.Errorf("Expected empty my_option_id for non-voter, got %s", aliceView.MyOptionID)
	}

	if _, err := engine.PollDetail("outsider", pollID); KindOf(err) != KindAuthorization {
		t.Errorf("Expected authorization error for outsider, got %v", err)
	}
	if _, err := engine.PollDetail(alice, "nonexistent"); KindOf(err) != KindNotFound {
		t.Errorf("Expected not found for unknown poll, got %v", err)
	}
}
