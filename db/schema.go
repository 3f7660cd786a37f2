// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The store offers no enforced referential cascade across these tables;
// group deletion removes dependents in explicit order (see decision package).
const schema = `
-- User profiles (taste summaries feed poll option prompts)
CREATE TABLE IF NOT EXISTS profile (
    id TEXT PRIMARY KEY,
    full_name TEXT NOT NULL DEFAULT '',
    taste_profile TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Per-user item ratings, sampled into poll prompts
CREATE TABLE IF NOT EXISTS rating (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    category TEXT NOT NULL,
    title TEXT NOT NULL,
    score REAL NOT NULL CHECK (score >= 0 AND score <= 10),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_rating_user_category ON rating(user_id, category);

-- Groups
CREATE TABLE IF NOT EXISTS friend_group (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    creator_id TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Memberships. The composite key makes a duplicate accept fail at the
-- store instead of silently creating a second row.
CREATE TABLE IF NOT EXISTS group_member (
    group_id TEXT NOT NULL REFERENCES friend_group(id),
    user_id TEXT NOT NULL,
    joined_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (group_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_group_member_user ON group_member(user_id);

-- Invites. Resolved invites are kept for audit; only one pending invite
-- may exist per (group, invitee).
CREATE TABLE IF NOT EXISTS group_invite (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL REFERENCES friend_group(id),
    invited_user_id TEXT NOT NULL,
    invited_by TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'rejected')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_group_invite_pending
    ON group_invite(group_id, invited_user_id) WHERE status = 'pending';
CREATE INDEX IF NOT EXISTS idx_group_invite_user ON group_invite(invited_user_id);

-- Group chat messages; poll_id links system notifications to their poll
CREATE TABLE IF NOT EXISTS group_message (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL REFERENCES friend_group(id),
    user_id TEXT NOT NULL,
    content TEXT NOT NULL,
    poll_id TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_group_message_group ON group_message(group_id);

-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL REFERENCES friend_group(id),
    title TEXT NOT NULL,
    category TEXT NOT NULL CHECK (category IN ('restaurants', 'movies', 'tv_shows', 'reading', 'activities')),
    created_by TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_poll_group ON poll(group_id);

-- Poll options. Vote counts are derived from the vote table, never stored.
CREATE TABLE IF NOT EXISTS poll_option (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL REFERENCES poll(id),
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    personalized_score INTEGER NOT NULL CHECK (personalized_score >= 0 AND personalized_score <= 100),
    position INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_poll_option_poll ON poll_option(poll_id);

-- Votes. One row per (poll, user); changing a vote is delete + insert.
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL REFERENCES poll(id),
    option_id TEXT NOT NULL REFERENCES poll_option(id),
    user_id TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (poll_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_option ON vote(option_id);
`
