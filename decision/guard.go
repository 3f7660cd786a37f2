// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decision

import "database/sql"

// querier is satisfied by both *sql.DB and *sql.Tx so guard checks can run
// inside or outside a transaction.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

// isMember reports whether a membership row exists for (userID, groupID).
// Pure read; callers fail closed on error.
func isMember(q querier, userID, groupID string) (bool, error) {
	var exists bool
	err := q.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM group_member
			WHERE group_id = $1 AND user_id = $2
		)
	`, groupID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// isCreator reports whether userID is the group's creator. A missing group
// reports sql.ErrNoRows so callers can distinguish not-found from denied.
func isCreator(q querier, userID, groupID string) (bool, error) {
	var creatorID string
	err := q.QueryRow(`
		SELECT creator_id FROM friend_group WHERE id = $1
	`, groupID).Scan(&creatorID)
	if err != nil {
		return false, err
	}
	return creatorID == userID, nil
}

// requireMember denies with an authorization error unless userID belongs to
// the group. Read failures deny as well (fail closed).
func (e *Engine) requireMember(userID, groupID string) error {
	ok, err := isMember(e.db, userID, groupID)
	if err != nil {
		return persistenceError("failed to check membership", err)
	}
	if !ok {
		return authorizationError("not a member of this group")
	}
	return nil
}

// requireCreator denies unless userID created the group; a missing group is
// reported as not found.
func (e *Engine) requireCreator(userID, groupID string) error {
	ok, err := isCreator(e.db, userID, groupID)
	if err == sql.ErrNoRows {
		return notFoundError("group not found")
	}
	if err != nil {
		return persistenceError("failed to check group creator", err)
	}
	if !ok {
		return authorizationError("only the group creator may do this")
	}
	return nil
}
