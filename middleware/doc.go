// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

  - WithLogging: request/completion logging with method, path, and duration
  - JSONResponse / ErrorResponse: JSON encoding with consistent error shape
  - ParseJSONBody: request body decoding

Cross-origin handling is configured on the router with rs/cors rather than
here.
*/
package middleware
