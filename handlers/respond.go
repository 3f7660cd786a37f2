// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/lmk-app/decide-server/auth"
	"github.com/lmk-app/decide-server/decision"
	"github.com/lmk-app/decide-server/middleware"
)

// callerID extracts the caller's identity or writes a 401 and returns false.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, err := auth.CallerID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-User-ID header required")
		return "", false
	}
	return userID, true
}

// respondError maps an engine error kind to an HTTP status. Persistence and
// unknown errors are logged and surfaced as a generic internal failure.
func respondError(w http.ResponseWriter, err error) {
	switch decision.KindOf(err) {
	case decision.KindAuthentication:
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
	case decision.KindAuthorization:
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
	case decision.KindValidation:
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case decision.KindConflict:
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case decision.KindNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("internal error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
