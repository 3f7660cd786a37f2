// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateGroupRequest: name, description
  - RemoveMemberRequest: user_id
  - SendInviteRequest: invitee_id
  - CreatePollRequest: title, category
  - CastVoteRequest: option_id
  - SendMessageRequest: content
  - UpdateProfileRequest: full_name, taste_profile
  - AddRatingRequest: category, title, score

# Response Types

  - OKResponse: ok
  - PollWithOptions: poll, options (with derived vote counts), my_option_id
  - GroupListResponse / MemberListResponse / InviteListResponse /
    MessageListResponse: list wrappers
  - ErrorResponse: error, message

# Domain Types

  - Group: single canonical creator_id
  - Member: (group_id, user_id) membership
  - Invite: pending/accepted/rejected lifecycle, kept after resolution
  - Message: group chat message, optionally linked to a poll
  - Poll, OptionTally: vote_count is derived, never a stored counter
  - Profile, Rating: taste inputs for poll option suggestions

# Constants

Invite statuses:

	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusRejected = "rejected"

Poll categories: restaurants, movies, tv_shows, reading, activities.
*/
package models
