// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decision

import (
	"time"

	"github.com/lmk-app/decide-server/auth"
	"github.com/lmk-app/decide-server/models"
)

// UpsertProfile stores the caller's display name and taste profile summary.
// These feed the suggestion prompt when the caller's groups create polls.
func (e *Engine) UpsertProfile(userID, fullName, tasteProfile string) (*models.Profile, error) {
	now := time.Now().UTC()

	_, err := e.db.Exec(`
		INSERT INTO profile (id, full_name, taste_profile, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT(id) DO UPDATE SET full_name = $2, taste_profile = $3
	`, userID, fullName, tasteProfile, now)
	if err != nil {
		return nil, persistenceError("failed to upsert profile", err)
	}

	return &models.Profile{ID: userID, FullName: fullName, TasteProfile: tasteProfile, CreatedAt: now}, nil
}

// AddRating records an item rating for the caller.
func (e *Engine) AddRating(userID string, r models.AddRatingRequest) (*models.Rating, error) {
	if r.Title == "" {
		return nil, validationError("rating title is required")
	}
	if !models.ValidCategory(r.Category) {
		return nil, validationError("unknown rating category: " + r.Category)
	}
	if r.Score < 0 || r.Score > 10 {
		return nil, validationError("rating score must be between 0 and 10")
	}

	rating := models.Rating{
		ID:        auth.NewID(),
		UserID:    userID,
		Category:  r.Category,
		Title:     r.Title,
		Score:     r.Score,
		CreatedAt: time.Now().UTC(),
	}

	_, err := e.db.Exec(`
		INSERT INTO rating (id, user_id, category, title, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rating.ID, rating.UserID, rating.Category, rating.Title, rating.Score, rating.CreatedAt)
	if err != nil {
		return nil, persistenceError("failed to insert rating", err)
	}

	return &rating, nil
}
