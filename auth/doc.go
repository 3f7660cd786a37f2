// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides caller identity extraction and entity ID generation.

Every authenticated route reads the caller's profile ID from the X-User-ID
header:

	userID, err := auth.CallerID(r)

A missing header is an authentication failure (401), distinct from the
authorization checks (membership, ownership) performed by the decision
engine per operation.

Entity IDs for groups, invites, polls, options, and votes are opaque UUID
strings from NewID.
*/
package auth
