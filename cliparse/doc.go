// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration.

Configuration is read from the environment first (struct tags parsed with
caarlos0/env), then CLI flags may override individual values:

	decide-server -p 3318 -d ./decide.db -t sqlite

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string, or a sqlite file path

Optional settings:

  - PORT (-p): server port (default: 3318)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - AI_API_KEY (-ai-key): completion service key; empty disables AI calls
  - AI_BASE_URL (-ai-url): completion endpoint
  - AI_MODEL (-ai-model): completion model name
  - AI_TIMEOUT (-ai-timeout): per-call deadline (default: 10s)

main loads a .env file via godotenv before calling ParseFlags, so a local
.env works for development.
*/
package cliparse
