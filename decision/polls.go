// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decision

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/lmk-app/decide-server/ai"
	"github.com/lmk-app/decide-server/auth"
	"github.com/lmk-app/decide-server/models"
)

// createPoll creates a poll with exactly four options. Option suggestions
// come from the completion service when it cooperates; any failure there is
// swallowed in favor of the deterministic fallback set, so poll creation
// only fails on validation, authorization, or the store.
func (e *Engine) createPoll(ctx context.Context, c CreatePoll) (*models.PollWithOptions, error) {
	if err := e.requireMember(c.RequesterID, c.GroupID); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return nil, validationError("poll title is required")
	}
	if !models.ValidCategory(c.Category) {
		return nil, validationError("unknown poll category: " + c.Category)
	}

	suggestions := e.suggestOptions(ctx, c.GroupID, title, c.Category)

	poll := models.Poll{
		ID:        auth.NewID(),
		GroupID:   c.GroupID,
		Title:     title,
		Category:  c.Category,
		CreatedBy: c.RequesterID,
		CreatedAt: time.Now().UTC(),
	}

	tx, err := e.db.Begin()
	if err != nil {
		return nil, persistenceError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO poll (id, group_id, title, category, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, poll.ID, poll.GroupID, poll.Title, poll.Category, poll.CreatedBy, poll.CreatedAt)
	if err != nil {
		return nil, persistenceError("failed to insert poll", err)
	}

	options := make([]models.OptionTally, 0, len(suggestions))
	for i, s := range suggestions {
		opt := models.OptionTally{
			ID:                auth.NewID(),
			Title:             s.Title,
			Description:       s.Description,
			PersonalizedScore: s.ScoreOrDefault(),
		}
		_, err = tx.Exec(`
			INSERT INTO poll_option (id, poll_id, title, description, personalized_score, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, opt.ID, poll.ID, opt.Title, opt.Description, opt.PersonalizedScore, i)
		if err != nil {
			return nil, persistenceError("failed to insert poll option", err)
		}
		options = append(options, opt)
	}

	if err := tx.Commit(); err != nil {
		return nil, persistenceError("failed to commit poll creation", err)
	}

	slog.Info("poll created", "poll_id", poll.ID, "group_id", c.GroupID, "category", c.Category)

	// Notify the group chat. The messaging sink is a side effect the engine
	// triggers but does not own, so a failure here never fails the poll.
	_, err = e.db.Exec(`
		INSERT INTO group_message (id, group_id, user_id, content, poll_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, auth.NewID(), c.GroupID, c.RequesterID, "Created a poll: "+title, poll.ID, time.Now().UTC())
	if err != nil {
		slog.Warn("failed to post poll notification message", "error", err, "poll_id", poll.ID)
	}

	return &models.PollWithOptions{Poll: poll, Options: options}, nil
}

// suggestOptions returns exactly four sanitized suggestions, consulting the
// completion service first and substituting the fallback set on any failure
// or short response.
func (e *Engine) suggestOptions(ctx context.Context, groupID, title, category string) []ai.Suggestion {
	if e.suggester == nil {
		return ai.FallbackSuggestions(category)
	}

	req, err := e.buildSuggestionRequest(groupID, title, category)
	if err != nil {
		slog.Warn("failed to gather member taste context", "error", err, "group_id", groupID)
		return ai.FallbackSuggestions(category)
	}

	ctx, cancel := context.WithTimeout(ctx, e.aiTimeout)
	defer cancel()

	suggestions, err := e.suggester.SuggestOptions(ctx, req)
	if err != nil {
		slog.Warn("option suggestion failed, using fallback", "error", err, "group_id", groupID)
		return ai.FallbackSuggestions(category)
	}

	usable := suggestions[:0:len(suggestions)]
	for _, s := range suggestions {
		if strings.TrimSpace(s.Title) != "" {
			usable = append(usable, s)
		}
	}
	if len(usable) < 4 {
		slog.Warn("suggestion output too short, using fallback", "count", len(usable), "group_id", groupID)
		return ai.FallbackSuggestions(category)
	}
	return usable[:4]
}

func (e *Engine) buildSuggestionRequest(groupID, title, category string) (ai.SuggestionRequest, error) {
	rows, err := e.db.Query(`
		SELECT m.user_id, COALESCE(p.full_name, ''), COALESCE(p.taste_profile, '')
		FROM group_member m
		LEFT JOIN profile p ON p.id = m.user_id
		WHERE m.group_id = $1
		ORDER BY m.joined_at
	`, groupID)
	if err != nil {
		return ai.SuggestionRequest{}, err
	}
	defer rows.Close()

	req := ai.SuggestionRequest{PollTitle: title, Category: category}
	var userIDs []string
	for rows.Next() {
		var userID string
		var member ai.MemberContext
		if err := rows.Scan(&userID, &member.Name, &member.TasteProfile); err != nil {
			return ai.SuggestionRequest{}, err
		}
		userIDs = append(userIDs, userID)
		req.Members = append(req.Members, member)
	}
	if err := rows.Err(); err != nil {
		return ai.SuggestionRequest{}, err
	}

	for i, userID := range userIDs {
		items, err := e.topRated(userID, category)
		if err != nil {
			return ai.SuggestionRequest{}, err
		}
		req.Members[i].TopRated = items
	}
	return req, nil
}

// topRated samples a member's highest-rated items in the category.
func (e *Engine) topRated(userID, category string) ([]ai.RatedItem, error) {
	rows, err := e.db.Query(`
		SELECT title, score FROM rating
		WHERE user_id = $1 AND category = $2
		ORDER BY score DESC, created_at DESC
		LIMIT 3
	`, userID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ai.RatedItem
	for rows.Next() {
		var item ai.RatedItem
		if err := rows.Scan(&item.Title, &item.Score); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// PollDetail returns the poll with current tallies and the caller's choice,
// member-gated via the poll's group.
func (e *Engine) PollDetail(requesterID, pollID string) (*models.PollWithOptions, error) {
	poll, err := e.pollByID(pollID)
	if err != nil {
		return nil, err
	}
	if err := e.requireMember(requesterID, poll.GroupID); err != nil {
		return nil, err
	}

	options, err := tallyOptions(e.db, pollID)
	if err != nil {
		return nil, err
	}
	myOption, err := currentVote(e.db, pollID, requesterID)
	if err != nil {
		return nil, err
	}

	return &models.PollWithOptions{Poll: *poll, Options: options, MyOptionID: myOption}, nil
}

func (e *Engine) pollByID(pollID string) (*models.Poll, error) {
	var p models.Poll
	err := e.db.QueryRow(`
		SELECT id, group_id, title, category, created_by, created_at
		FROM poll
		WHERE id = $1
	`, pollID).Scan(&p.ID, &p.GroupID, &p.Title, &p.Category, &p.CreatedBy, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, notFoundError("poll not found")
	}
	if err != nil {
		return nil, persistenceError("failed to query poll", err)
	}
	return &p, nil
}
