// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the LMK decision API server.

LMK is a group decision service: friends form groups, invite each other,
and create polls whose options are suggested by an AI completion service
ranked against each member's taste profile, with a deterministic fallback
when the service is unavailable. One vote per member per poll; switching
a vote replaces the old one.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=decide.db go run main.go

Or with flags:

	go run main.go -p 3318 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or SQLite file path
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - AI_API_KEY (-ai-key): Completion API key; empty disables AI suggestions
  - AI_BASE_URL (-ai-url): Completion endpoint
  - AI_MODEL (-ai-model): Model name (default: gpt-4o-mini)
  - AI_TIMEOUT (-ai-timeout): Per-request AI deadline (default: 10s)

A .env file in the working directory is loaded if present.

# Architecture

The server keeps all business rules in a single engine behind typed
commands, with thin HTTP adapters on top:

  - decision: The engine; commands, authorization guards, transactions
  - ai: Completion client, prompt building, response parsing, fallback
  - handlers: HTTP request handlers (groups, invites, polls, messages, profiles)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging and JSON helpers
  - models: Request/response and domain types
  - auth: Caller identity and ID generation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
