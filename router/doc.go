// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the LMK decision API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(engine)

# Endpoints

Health:

	GET /health

Groups and membership (requires X-User-ID):

	POST   /groups                     - Create group (creator auto-joins)
	GET    /groups                     - List caller's groups
	DELETE /groups/{id}                - Delete group (creator only, cascades)
	POST   /groups/{id}/leave          - Leave group (creators cannot)
	POST   /groups/{id}/remove-member  - Remove a member (creator only)
	GET    /groups/{id}/members        - List members

Invitations:

	POST /groups/{id}/invites - Invite a user (members only)
	GET  /invites             - List caller's pending invites
	POST /invites/{id}/accept - Accept (joins the group)
	POST /invites/{id}/reject - Reject

Polls and voting:

	POST /groups/{id}/polls - Create poll (AI options with fallback)
	GET  /polls/{id}        - Poll detail with tallies
	POST /polls/{id}/votes  - Cast or switch a vote

Group messages:

	POST /groups/{id}/messages - Post a message
	GET  /groups/{id}/messages - Message history

Profiles and ratings:

	PUT  /profile - Upsert caller's profile
	POST /ratings - Record an item rating

# Handler Initialization

The router creates handler instances with dependency injection:

	groupHandler := handlers.NewGroupHandler(engine)
	inviteHandler := handlers.NewInviteHandler(engine)
	pollHandler := handlers.NewPollHandler(engine)
	messageHandler := handlers.NewMessageHandler(engine)
	profileHandler := handlers.NewProfileHandler(engine)

All handlers receive the single decision engine. CORS is applied by the
caller wrapping the returned mux.
*/
package router
