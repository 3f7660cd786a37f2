// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the LMK decision API.

# Handler Types

Each handler is a thin struct over the decision engine:

  - GroupHandler: Group lifecycle and membership (create, delete, leave, remove-member, list)
  - InviteHandler: Invitation flow (send, list, accept, reject)
  - PollHandler: Poll creation, detail retrieval, and voting
  - MessageHandler: Group message posting and history
  - ProfileHandler: Taste profile and rating updates

Handlers are created via constructor functions that accept *decision.Engine:

	groupHandler := handlers.NewGroupHandler(engine)

# Request Flow

Handlers do no business logic. Each one extracts the caller identity from
the X-User-ID header, decodes the request body, and hands a typed command
to the engine:

	result, err := h.engine.Execute(r.Context(), decision.CreateGroup{...})

Read endpoints call engine query methods directly (ListGroups, PollDetail,
GroupMessages) since reads are not commands.

# Error Mapping

Engine errors carry a kind; respondError translates it to a status code:

	KindAuthentication → 401
	KindAuthorization  → 403
	KindValidation     → 400
	KindConflict       → 409
	KindNotFound       → 404
	anything else      → 500 (logged, details withheld)
*/
package handlers
