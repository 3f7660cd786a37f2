// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/lmk-app/decide-server/decision"
	"github.com/lmk-app/decide-server/handlers"
	"github.com/lmk-app/decide-server/middleware"
)

func NewRouter(engine *decision.Engine) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	groupHandler := handlers.NewGroupHandler(engine)
	inviteHandler := handlers.NewInviteHandler(engine)
	pollHandler := handlers.NewPollHandler(engine)
	messageHandler := handlers.NewMessageHandler(engine)
	profileHandler := handlers.NewProfileHandler(engine)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Groups and membership
	mux.HandleFunc("POST /groups", middleware.WithLogging(groupHandler.CreateGroup))
	mux.HandleFunc("GET /groups", middleware.WithLogging(groupHandler.ListGroups))
	mux.HandleFunc("DELETE /groups/{id}", middleware.WithLogging(groupHandler.DeleteGroup))
	mux.HandleFunc("POST /groups/{id}/leave", middleware.WithLogging(groupHandler.LeaveGroup))
	mux.HandleFunc("POST /groups/{id}/remove-member", middleware.WithLogging(groupHandler.RemoveMember))
	mux.HandleFunc("GET /groups/{id}/members", middleware.WithLogging(groupHandler.ListMembers))

	// Invitations
	mux.HandleFunc("POST /groups/{id}/invites", middleware.WithLogging(inviteHandler.SendInvite))
	mux.HandleFunc("GET /invites", middleware.WithLogging(inviteHandler.ListInvites))
	mux.HandleFunc("POST /invites/{id}/accept", middleware.WithLogging(inviteHandler.AcceptInvite))
	mux.HandleFunc("POST /invites/{id}/reject", middleware.WithLogging(inviteHandler.RejectInvite))

	// Polls and voting
	mux.HandleFunc("POST /groups/{id}/polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /polls/{id}/votes", middleware.WithLogging(pollHandler.CastVote))

	// Group messages
	mux.HandleFunc("POST /groups/{id}/messages", middleware.WithLogging(messageHandler.SendMessage))
	mux.HandleFunc("GET /groups/{id}/messages", middleware.WithLogging(messageHandler.ListMessages))

	// Profiles and ratings
	mux.HandleFunc("PUT /profile", middleware.WithLogging(profileHandler.UpdateProfile))
	mux.HandleFunc("POST /ratings", middleware.WithLogging(profileHandler.AddRating))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lmk decide API v1"))
	})

	return mux
}
