// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decision

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/lmk-app/decide-server/auth"
	"github.com/lmk-app/decide-server/models"
)

// castVote records the caller's single choice on a poll. Re-voting the same
// option is rejected as a conflict; switching options is a delete-old plus
// insert-new inside one transaction, so the caller never briefly holds zero
// or two votes. Tallies are recomputed from vote rows inside that same
// transaction and returned as a consistent snapshot.
func (e *Engine) castVote(c CastVote) (*models.PollWithOptions, error) {
	poll, err := e.pollByID(c.PollID)
	if err != nil {
		return nil, err
	}
	if err := e.requireMember(c.UserID, poll.GroupID); err != nil {
		return nil, err
	}

	tx, err := e.db.Begin()
	if err != nil {
		return nil, persistenceError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	var optionExists bool
	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM poll_option WHERE id = $1 AND poll_id = $2
		)
	`, c.OptionID, c.PollID).Scan(&optionExists)
	if err != nil {
		return nil, persistenceError("failed to check option", err)
	}
	if !optionExists {
		return nil, notFoundError("option not found on this poll")
	}

	var existingVoteID, existingOptionID string
	err = tx.QueryRow(`
		SELECT id, option_id FROM vote WHERE poll_id = $1 AND user_id = $2
	`, c.PollID, c.UserID).Scan(&existingVoteID, &existingOptionID)
	switch {
	case err == sql.ErrNoRows:
		// First vote on this poll.
	case err != nil:
		return nil, persistenceError("failed to query existing vote", err)
	case existingOptionID == c.OptionID:
		return nil, conflictError("already voted for this option")
	default:
		if _, err := tx.Exec(`DELETE FROM vote WHERE id = $1`, existingVoteID); err != nil {
			return nil, persistenceError("failed to remove previous vote", err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO vote (id, poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, auth.NewID(), c.PollID, c.OptionID, c.UserID, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, conflictError("a vote for this poll already exists")
		}
		return nil, persistenceError("failed to insert vote", err)
	}

	options, err := tallyOptions(tx, c.PollID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, persistenceError("failed to commit vote", err)
	}

	slog.Info("vote cast", "poll_id", c.PollID, "option_id", c.OptionID, "user_id", c.UserID)

	return &models.PollWithOptions{Poll: *poll, Options: options, MyOptionID: c.OptionID}, nil
}

// tallyOptions recomputes per-option counts by aggregating vote rows. Counts
// are never read from a stored counter, so the tally always agrees with the
// vote table. Options come back in insertion order.
func tallyOptions(q dbtx, pollID string) ([]models.OptionTally, error) {
	rows, err := q.Query(`
		SELECT o.id, o.title, o.description, o.personalized_score, COUNT(v.id)
		FROM poll_option o
		LEFT JOIN vote v ON v.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.id, o.title, o.description, o.personalized_score, o.position
		ORDER BY o.position
	`, pollID)
	if err != nil {
		return nil, persistenceError("failed to query tallies", err)
	}
	defer rows.Close()

	options := []models.OptionTally{}
	for rows.Next() {
		var opt models.OptionTally
		if err := rows.Scan(&opt.ID, &opt.Title, &opt.Description, &opt.PersonalizedScore, &opt.VoteCount); err != nil {
			return nil, persistenceError("failed to scan tally", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceError("failed to read tallies", err)
	}
	return options, nil
}

// currentVote returns the option the user has voted for, or "" if none.
func currentVote(q dbtx, pollID, userID string) (string, error) {
	var optionID string
	err := q.QueryRow(`
		SELECT option_id FROM vote WHERE poll_id = $1 AND user_id = $2
	`, pollID, userID).Scan(&optionID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", persistenceError("failed to query current vote", err)
	}
	return optionID, nil
}
