// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

var ErrNoIdentity = errors.New("missing caller identity")

// UserIDHeader carries the authenticated caller's profile ID. Session
// issuance and token verification live in the auth gateway in front of this
// service; by the time a request arrives here the header is trusted.
const UserIDHeader = "X-User-ID"

// CallerID extracts the caller's user ID from the request.
func CallerID(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if id == "" {
		return "", ErrNoIdentity
	}
	return id, nil
}

// NewID returns a fresh opaque entity identifier.
func NewID() string {
	return uuid.NewString()
}
