// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decision

import (
	"log/slog"
	"strings"
	"time"

	"github.com/lmk-app/decide-server/auth"
	"github.com/lmk-app/decide-server/models"
)

// sendMessage posts a chat message to the group, member-gated.
func (e *Engine) sendMessage(c SendMessage) (*models.Message, error) {
	if err := e.requireMember(c.UserID, c.GroupID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(c.Content) == "" {
		return nil, validationError("message content is required")
	}

	msg := models.Message{
		ID:        auth.NewID(),
		GroupID:   c.GroupID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: time.Now().UTC(),
	}

	_, err := e.db.Exec(`
		INSERT INTO group_message (id, group_id, user_id, content, poll_id, created_at)
		VALUES ($1, $2, $3, $4, NULL, $5)
	`, msg.ID, msg.GroupID, msg.UserID, msg.Content, msg.CreatedAt)
	if err != nil {
		return nil, persistenceError("failed to insert message", err)
	}

	slog.Info("message sent", "group_id", c.GroupID, "user_id", c.UserID)
	return &msg, nil
}

// GroupMessages returns the group's messages oldest first, member-gated.
func (e *Engine) GroupMessages(requesterID, groupID string) ([]models.Message, error) {
	if err := e.requireMember(requesterID, groupID); err != nil {
		return nil, err
	}

	rows, err := e.db.Query(`
		SELECT id, group_id, user_id, content, poll_id, created_at
		FROM group_message
		WHERE group_id = $1
		ORDER BY created_at
	`, groupID)
	if err != nil {
		return nil, persistenceError("failed to query messages", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.Content, &m.PollID, &m.CreatedAt); err != nil {
			return nil, persistenceError("failed to scan message", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceError("failed to read messages", err)
	}
	return messages, nil
}
