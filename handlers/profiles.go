// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/lmk-app/decide-server/decision"
	"github.com/lmk-app/decide-server/middleware"
	"github.com/lmk-app/decide-server/models"
)

type ProfileHandler struct {
	engine *decision.Engine
}

func NewProfileHandler(engine *decision.Engine) *ProfileHandler {
	return &ProfileHandler{engine: engine}
}

// UpdateProfile handles PUT /profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	profile, err := h.engine.UpsertProfile(userID, req.FullName, req.TasteProfile)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// AddRating handles POST /ratings
func (h *ProfileHandler) AddRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.AddRatingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	rating, err := h.engine.AddRating(userID, req)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, rating)
}
