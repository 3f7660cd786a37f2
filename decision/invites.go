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

// sendInvite creates a pending invite. Any group member may invite; at most
// one pending invite exists per (group, invitee), and existing members are
// not re-invitable. The partial unique index backs the duplicate check
// against races.
func (e *Engine) sendInvite(c SendInvite) (*models.Invite, error) {
	if c.InviteeID == "" {
		return nil, validationError("invitee_id is required")
	}
	if err := e.requireMember(c.InviterID, c.GroupID); err != nil {
		return nil, err
	}

	alreadyMember, err := isMember(e.db, c.InviteeID, c.GroupID)
	if err != nil {
		return nil, persistenceError("failed to check invitee membership", err)
	}
	if alreadyMember {
		return nil, conflictError("user is already a member of this group")
	}

	var pending bool
	err = e.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM group_invite
			WHERE group_id = $1 AND invited_user_id = $2 AND status = 'pending'
		)
	`, c.GroupID, c.InviteeID).Scan(&pending)
	if err != nil {
		return nil, persistenceError("failed to check pending invites", err)
	}
	if pending {
		return nil, conflictError("an invite for this user is already pending")
	}

	invite := models.Invite{
		ID:            auth.NewID(),
		GroupID:       c.GroupID,
		InvitedUserID: c.InviteeID,
		InvitedBy:     c.InviterID,
		Status:        models.InviteStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	_, err = e.db.Exec(`
		INSERT INTO group_invite (id, group_id, invited_user_id, invited_by, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, invite.ID, invite.GroupID, invite.InvitedUserID, invite.InvitedBy, invite.Status, invite.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, conflictError("an invite for this user is already pending")
		}
		return nil, persistenceError("failed to insert invite", err)
	}

	slog.Info("invite sent", "invite_id", invite.ID, "group_id", c.GroupID, "invitee", c.InviteeID)
	return &invite, nil
}

// acceptInvite creates the membership and marks the invite accepted in a
// single transaction; neither write lands without the other. A racing
// duplicate accept trips either the membership primary key or the
// status-guarded update, and both report a conflict rather than a silent
// duplicate.
func (e *Engine) acceptInvite(c AcceptInvite) error {
	invite, err := e.inviteByID(c.InviteID)
	if err != nil {
		return err
	}
	if invite.InvitedUserID != c.UserID {
		return authorizationError("this invite is for another user")
	}
	if invite.Status != models.InviteStatusPending {
		return conflictError("invite has already been resolved")
	}

	tx, err := e.db.Begin()
	if err != nil {
		return persistenceError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO group_member (group_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`, invite.GroupID, c.UserID, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return conflictError("already a member of this group")
		}
		return persistenceError("failed to insert membership", err)
	}

	res, err := tx.Exec(`
		UPDATE group_invite SET status = 'accepted'
		WHERE id = $1 AND status = 'pending'
	`, c.InviteID)
	if err != nil {
		return persistenceError("failed to update invite", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return conflictError("invite has already been resolved")
	}

	if err := tx.Commit(); err != nil {
		return persistenceError("failed to commit invite acceptance", err)
	}

	slog.Info("invite accepted", "invite_id", c.InviteID, "group_id", invite.GroupID, "user_id", c.UserID)
	return nil
}

// rejectInvite only flips the status; the row is kept for audit.
func (e *Engine) rejectInvite(c RejectInvite) error {
	invite, err := e.inviteByID(c.InviteID)
	if err != nil {
		return err
	}
	if invite.InvitedUserID != c.UserID {
		return authorizationError("this invite is for another user")
	}
	if invite.Status != models.InviteStatusPending {
		return conflictError("invite has already been resolved")
	}

	_, err = e.db.Exec(`
		UPDATE group_invite SET status = 'rejected'
		WHERE id = $1 AND status = 'pending'
	`, c.InviteID)
	if err != nil {
		return persistenceError("failed to update invite", err)
	}

	slog.Info("invite rejected", "invite_id", c.InviteID, "user_id", c.UserID)
	return nil
}

// PendingInvites returns the user's open invites, oldest first.
func (e *Engine) PendingInvites(userID string) ([]models.Invite, error) {
	rows, err := e.db.Query(`
		SELECT id, group_id, invited_user_id, invited_by, status, created_at
		FROM group_invite
		WHERE invited_user_id = $1 AND status = 'pending'
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, persistenceError("failed to query invites", err)
	}
	defer rows.Close()

	invites := []models.Invite{}
	for rows.Next() {
		var in models.Invite
		if err := rows.Scan(&in.ID, &in.GroupID, &in.InvitedUserID, &in.InvitedBy, &in.Status, &in.CreatedAt); err != nil {
			return nil, persistenceError("failed to scan invite", err)
		}
		invites = append(invites, in)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceError("failed to read invites", err)
	}
	return invites, nil
}

func (e *Engine) inviteByID(inviteID string) (*models.Invite, error) {
	var in models.Invite
	err := e.db.QueryRow(`
		SELECT id, group_id, invited_user_id, invited_by, status, created_at
		FROM group_invite
		WHERE id = $1
	`, inviteID).Scan(&in.ID, &in.GroupID, &in.InvitedUserID, &in.InvitedBy, &in.Status, &in.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, notFoundError("invite not found")
	}
	if err != nil {
		return nil, persistenceError("failed to query invite", err)
	}
	return &in, nil
}
