// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decision

import (
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/lmk-app/decide-server/auth"
	"github.com/lmk-app/decide-server/models"
)

// createGroup inserts the group and the creator's membership as one
// transaction, so a group with zero members never exists.
func (e *Engine) createGroup(c CreateGroup) (*models.Group, error) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return nil, validationError("group name is required")
	}

	group := models.Group{
		ID:          auth.NewID(),
		Name:        name,
		Description: c.Description,
		CreatorID:   c.CreatorID,
		CreatedAt:   time.Now().UTC(),
	}

	tx, err := e.db.Begin()
	if err != nil {
		return nil, persistenceError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO friend_group (id, name, description, creator_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, group.ID, group.Name, group.Description, group.CreatorID, group.CreatedAt)
	if err != nil {
		return nil, persistenceError("failed to insert group", err)
	}

	_, err = tx.Exec(`
		INSERT INTO group_member (group_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`, group.ID, group.CreatorID, group.CreatedAt)
	if err != nil {
		return nil, persistenceError("failed to insert creator membership", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, persistenceError("failed to commit group creation", err)
	}

	slog.Info("group created", "group_id", group.ID, "creator", group.CreatorID)
	return &group, nil
}

// deleteGroup removes every row referencing the group in dependency order,
// the group row last, in one transaction. The store has no enforced cascade;
// the explicit order keeps an interrupted run from orphaning dependents, and
// re-running is idempotent because deleting absent rows is a no-op.
func (e *Engine) deleteGroup(c DeleteGroup) error {
	if err := e.requireCreator(c.RequesterID, c.GroupID); err != nil {
		return err
	}

	tx, err := e.db.Begin()
	if err != nil {
		return persistenceError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	cascade := []string{
		`DELETE FROM group_message WHERE group_id = $1`,
		`DELETE FROM group_invite WHERE group_id = $1`,
		`DELETE FROM vote WHERE poll_id IN (SELECT id FROM poll WHERE group_id = $1)`,
		`DELETE FROM poll_option WHERE poll_id IN (SELECT id FROM poll WHERE group_id = $1)`,
		`DELETE FROM poll WHERE group_id = $1`,
		`DELETE FROM group_member WHERE group_id = $1`,
		`DELETE FROM friend_group WHERE id = $1`,
	}
	for _, stmt := range cascade {
		if _, err := tx.Exec(stmt, c.GroupID); err != nil {
			return persistenceError("failed to delete group", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return persistenceError("failed to commit group deletion", err)
	}

	slog.Info("group deleted", "group_id", c.GroupID, "requester", c.RequesterID)
	return nil
}

// leaveGroup removes the requester's own membership. Creators cannot leave;
// they delete the group instead, which keeps the creator-membership
// invariant for the group's whole lifetime.
func (e *Engine) leaveGroup(c LeaveGroup) error {
	creator, err := isCreator(e.db, c.RequesterID, c.GroupID)
	if err == sql.ErrNoRows {
		return notFoundError("group not found")
	}
	if err != nil {
		return persistenceError("failed to check group creator", err)
	}
	if creator {
		return validationError("creators cannot leave - delete the group instead")
	}

	if err := e.requireMember(c.RequesterID, c.GroupID); err != nil {
		return err
	}

	_, err = e.db.Exec(`
		DELETE FROM group_member WHERE group_id = $1 AND user_id = $2
	`, c.GroupID, c.RequesterID)
	if err != nil {
		return persistenceError("failed to remove membership", err)
	}

	slog.Info("member left group", "group_id", c.GroupID, "user_id", c.RequesterID)
	return nil
}

// removeMember removes another user's membership. Creator-only; removing
// yourself goes through leaveGroup or deleteGroup instead.
func (e *Engine) removeMember(c RemoveMember) error {
	if err := e.requireCreator(c.RequesterID, c.GroupID); err != nil {
		return err
	}
	if c.TargetUserID == c.RequesterID {
		return validationError("cannot remove yourself")
	}

	res, err := e.db.Exec(`
		DELETE FROM group_member WHERE group_id = $1 AND user_id = $2
	`, c.GroupID, c.TargetUserID)
	if err != nil {
		return persistenceError("failed to remove membership", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFoundError("user is not a member of this group")
	}

	slog.Info("member removed", "group_id", c.GroupID, "target", c.TargetUserID, "requester", c.RequesterID)
	return nil
}

// ListGroups returns the groups the user belongs to, newest first.
func (e *Engine) ListGroups(userID string) ([]models.Group, error) {
	rows, err := e.db.Query(`
		SELECT g.id, g.name, g.description, g.creator_id, g.created_at
		FROM friend_group g
		JOIN group_member m ON m.group_id = g.id
		WHERE m.user_id = $1
		ORDER BY g.created_at DESC
	`, userID)
	if err != nil {
		return nil, persistenceError("failed to query groups", err)
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatorID, &g.CreatedAt); err != nil {
			return nil, persistenceError("failed to scan group", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceError("failed to read groups", err)
	}
	return groups, nil
}

// GroupMembers returns the group's membership, member-gated.
func (e *Engine) GroupMembers(requesterID, groupID string) ([]models.Member, error) {
	if err := e.requireMember(requesterID, groupID); err != nil {
		return nil, err
	}

	rows, err := e.db.Query(`
		SELECT group_id, user_id, joined_at
		FROM group_member
		WHERE group_id = $1
		ORDER BY joined_at
	`, groupID)
	if err != nil {
		return nil, persistenceError("failed to query members", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.GroupID, &m.UserID, &m.JoinedAt); err != nil {
			return nil, persistenceError("failed to scan member", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceError("failed to read members", err)
	}
	return members, nil
}
