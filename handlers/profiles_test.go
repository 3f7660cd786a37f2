// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lmk-app/decide-server/auth"
	"github.com/lmk-app/decide-server/decision"
	"github.com/lmk-app/decide-server/models"
	"github.com/lmk-app/decide-server/testutil"
)

func TestUpdateProfileHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := decision.New(conn, nil, 0)
	handler := NewProfileHandler(engine)

	req := testutil.MakeRequest("PUT", "/profile",
		models.UpdateProfileRequest{FullName: "Alice", TasteProfile: "loves thrillers"},
		map[string]string{auth.UserIDHeader: "user-1"})
	w := httptest.NewRecorder()

	handler.UpdateProfile(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var profile models.Profile
	testutil.AssertJSON(t, w, &profile)
	if profile.ID != "user-1" || profile.FullName != "Alice" {
		t.Errorf("Unexpected profile: %+v", profile)
	}

	// No identity header
	req = testutil.MakeRequest("PUT", "/profile", models.UpdateProfileRequest{FullName: "X"}, nil)
	w = httptest.NewRecorder()
	handler.UpdateProfile(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestAddRatingHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := decision.New(conn, nil, 0)
	handler := NewProfileHandler(engine)

	tests := []struct {
		name           string
		requestBody    models.AddRatingRequest
		expectedStatus int
	}{
		{
			name:           "valid rating",
			requestBody:    models.AddRatingRequest{Category: models.CategoryMovies, Title: "Heat", Score: 9},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "score out of range",
			requestBody:    models.AddRatingRequest{Category: models.CategoryMovies, Title: "Heat", Score: 11},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing title",
			requestBody:    models.AddRatingRequest{Category: models.CategoryMovies, Score: 5},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/ratings", tt.requestBody, map[string]string{
				auth.UserIDHeader: "user-1",
			})
			w := httptest.NewRecorder()

			handler.AddRating(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}
