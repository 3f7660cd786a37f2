// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema.

# Tables

  - profile: user display name and taste profile summary
  - rating: per-user item ratings by category
  - friend_group: groups with a single canonical creator_id
  - group_member: (group_id, user_id) membership rows
  - group_invite: pending/accepted/rejected invites, kept after resolution
  - group_message: chat messages and poll notifications
  - poll: group-scoped polls with a fixed category enum
  - poll_option: candidate answers with a 0-100 personalized score
  - vote: one row per (poll_id, user_id)

# Constraints that carry invariants

  - group_member PRIMARY KEY (group_id, user_id): a racing duplicate invite
    accept fails at the store instead of duplicating membership
  - idx_group_invite_pending partial unique index: at most one pending
    invite per (group, invitee); resolved invites do not block re-invites
  - vote UNIQUE (poll_id, user_id): single vote per user per poll

The DDL runs unchanged on PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite):
$N placeholders, CURRENT_TIMESTAMP defaults, partial indexes.
*/
package db
