// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/lmk-app/decide-server/decision"
	"github.com/lmk-app/decide-server/middleware"
	"github.com/lmk-app/decide-server/models"
)

type InviteHandler struct {
	engine *decision.Engine
}

func NewInviteHandler(engine *decision.Engine) *InviteHandler {
	return &InviteHandler{engine: engine}
}

// SendInvite handles POST /groups/{id}/invites
func (h *InviteHandler) SendInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}

	var req models.SendInviteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := h.engine.Execute(r.Context(), decision.SendInvite{
		GroupID:   groupID,
		InviterID: userID,
		InviteeID: req.InviteeID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, result.(*models.Invite))
}

// ListInvites handles GET /invites
func (h *InviteHandler) ListInvites(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	invites, err := h.engine.PendingInvites(userID)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.InviteListResponse{Invites: invites})
}

// AcceptInvite handles POST /invites/{id}/accept
func (h *InviteHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	inviteID := r.PathValue("id")
	if inviteID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invite id is required")
		return
	}

	_, err := h.engine.Execute(r.Context(), decision.AcceptInvite{
		InviteID: inviteID,
		UserID:   userID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// RejectInvite handles POST /invites/{id}/reject
func (h *InviteHandler) RejectInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	inviteID := r.PathValue("id")
	if inviteID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invite id is required")
		return
	}

	_, err := h.engine.Execute(r.Context(), decision.RejectInvite{
		InviteID: inviteID,
		UserID:   userID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
