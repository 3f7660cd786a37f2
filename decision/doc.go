// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package decision implements the group decision engine: membership and
invitations, poll creation with AI-assisted options, vote tallying, and
cascading group deletion.

# Commands

Mutations form a closed, typed command set dispatched by Engine.Execute:

	result, err := engine.Execute(ctx, decision.CastVote{
		PollID:   pollID,
		OptionID: optionID,
		UserID:   userID,
	})

Each command's authorization is re-checked against the store on every call;
no cached membership state is trusted.

# Transactions

Multi-entity writes run as single transactions: group creation (group +
creator membership), invite acceptance (membership + status), vote switching
(delete + insert, with the tally read in the same transaction), and group
deletion (the full ordered cascade). The store enforces no referential
cascade, so deleteGroup removes messages, invites, votes, options, polls,
and memberships before the group row itself; re-running the cascade is
idempotent.

# Errors

Engine errors carry a Kind (authentication, authorization, validation,
conflict, not-found, external, persistence). Deterministic caller-caused
errors return immediately with a descriptive message. External completion
failures never surface from createPoll; the fallback option set is used
instead. Persistence errors wrap the store failure and map to a generic
internal failure at the HTTP layer.

# Reads

List/detail reads (ListGroups, GroupMembers, PendingInvites, PollDetail,
GroupMessages) are plain methods, not commands. Vote counts are always
recomputed from vote rows.
*/
package decision
