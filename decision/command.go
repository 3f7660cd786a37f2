// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decision

import "context"

// Command is the closed set of mutating operations. Each command is a typed
// payload; Execute dispatches through a single type switch rather than a
// string-keyed handler table, so an unhandled command is a compile-visible
// gap instead of a silent miss.
type Command interface {
	isCommand()
}

type CreateGroup struct {
	Name        string
	Description string
	CreatorID   string
}

type DeleteGroup struct {
	RequesterID string
	GroupID     string
}

type LeaveGroup struct {
	RequesterID string
	GroupID     string
}

type RemoveMember struct {
	RequesterID  string
	GroupID      string
	TargetUserID string
}

type SendInvite struct {
	GroupID   string
	InviterID string
	InviteeID string
}

type AcceptInvite struct {
	InviteID string
	UserID   string
}

type RejectInvite struct {
	InviteID string
	UserID   string
}

type CreatePoll struct {
	GroupID     string
	RequesterID string
	Title       string
	Category    string
}

type CastVote struct {
	PollID   string
	OptionID string
	UserID   string
}

type SendMessage struct {
	GroupID string
	UserID  string
	Content string
}

func (CreateGroup) isCommand()  {}
func (DeleteGroup) isCommand()  {}
func (LeaveGroup) isCommand()   {}
func (RemoveMember) isCommand() {}
func (SendInvite) isCommand()   {}
func (AcceptInvite) isCommand() {}
func (RejectInvite) isCommand() {}
func (CreatePoll) isCommand()   {}
func (CastVote) isCommand()     {}
func (SendMessage) isCommand()  {}

// Execute runs one command as one request-scoped unit of work and returns
// its typed result (nil for commands whose success response is just "ok").
func (e *Engine) Execute(ctx context.Context, cmd Command) (any, error) {
	switch c := cmd.(type) {
	case CreateGroup:
		return e.createGroup(c)
	case DeleteGroup:
		return nil, e.deleteGroup(c)
	case LeaveGroup:
		return nil, e.leaveGroup(c)
	case RemoveMember:
		return nil, e.removeMember(c)
	case SendInvite:
		return e.sendInvite(c)
	case AcceptInvite:
		return nil, e.acceptInvite(c)
	case RejectInvite:
		return nil, e.rejectInvite(c)
	case CreatePoll:
		return e.createPoll(ctx, c)
	case CastVote:
		return e.castVote(c)
	case SendMessage:
		return e.sendMessage(c)
	default:
		return nil, validationError("unknown command")
	}
}
