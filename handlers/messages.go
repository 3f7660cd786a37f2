// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/lmk-app/decide-server/decision"
	"github.com/lmk-app/decide-server/middleware"
	"github.com/lmk-app/decide-server/models"
)

type MessageHandler struct {
	engine *decision.Engine
}

func NewMessageHandler(engine *decision.Engine) *MessageHandler {
	return &MessageHandler{engine: engine}
}

// SendMessage handles POST /groups/{id}/messages
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}

	var req models.SendMessageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := h.engine.Execute(r.Context(), decision.SendMessage{
		GroupID: groupID,
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, result.(*models.Message))
}

// ListMessages handles GET /groups/{id}/messages
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	groupID := r.PathValue("id")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group id is required")
		return
	}

	messages, err := h.engine.GroupMessages(userID, groupID)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageListResponse{Messages: messages})
}
