// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decision

import (
	"context"
	"testing"

	"github.com/lmk-app/decide-server/models"
	"github.com/lmk-app/decide-server/testutil"
)

func TestSendInvite(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := New(conn, nil, 0)

	alice := testutil.CreateTestUser(t, conn, "Alice")
	bob := testutil.CreateTestUser(t, conn, "Bob")
	carol := testutil.CreateTestUser(t, conn, "Carol")
	groupID := testutil.CreateTestGroup(t, conn, alice, "Brunch Squad")
	testutil.AddTestMember(t, conn, groupID, bob)

	tests := []struct {
		name         string
		cmd          SendInvite
		expectedKind Kind
	}{
		{
			name:         "missing invitee",
			cmd:          SendInvite{GroupID: groupID, InviterID: alice, InviteeID: ""},
			expectedKind: KindValidation,
		},
		{
			name:         "non-member cannot invite",
			cmd:          SendInvite{GroupID: groupID, InviterID: carol, InviteeID: "dave-id"},
			expectedKind: KindAuthorization,
		},
		{
			name:         "invitee already a member",
			cmd:          SendInvite{GroupID: groupID, InviterID: alice, InviteeID: bob},
			expectedKind: KindConflict,
		},
		{
			name: "member invites",
			cmd:  SendInvite{GroupID: groupID, InviterID: bob, InviteeID: carol},
		},
		{
			name:         "duplicate pending invite",
			cmd:          SendInvite{GroupID: groupID, InviterID: alice, InviteeID: carol},
			expectedKind: KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Execute(context.Background(), tt.cmd)
			if KindOf(err) != tt.expectedKind {
				t.Fatalf("Expected error kind %v, got %v (err: %v)", tt.expectedKind, KindOf(err), err)
			}
			if tt.expectedKind == KindUnknown {
				invite := result.(*models.Invite)
				if invite.Status != models.InviteStatusPending {
					t.Errorf("Expected pending status, got %s", invite.Status)
				}
				if invite.InvitedBy != tt.cmd.InviterID {
					t.Errorf("Expected inviter %s, got %s", tt.cmd.InviterID, invite.InvitedBy)
				}
			}
		})
	}
}

func TestAcceptInvite(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := New(conn, nil, 0)

	alice := testutil.CreateTestUser(t, conn, "Alice")
	bob := testutil.CreateTestUser(t, conn, "Bob")
	groupID := testutil.CreateTestGroup(t, conn, alice, "Trivia Team")
	inviteID := testutil.CreateTestInvite(t, conn, groupID, bob, alice, models.InviteStatusPending)

	// Wrong user cannot accept
	if _, err := engine.Execute(context.Background(), AcceptInvite{InviteID: inviteID, UserID: alice}); KindOf(err) != KindAuthorization {
		t.Fatalf("Expected authorization error, got %v", err)
	}

	// Unknown invite
	if _, err := engine.Execute(context.Background(), AcceptInvite{InviteID: "nonexistent", UserID: bob}); KindOf(err) != KindNotFound {
		t.Fatalf("Expected not found, got %v", err)
	}

	// Invitee accepts: membership created, status flipped
	if _, err := engine.Execute(context.Background(), AcceptInvite{InviteID: inviteID, UserID: bob}); err != nil {
		t.Fatalf("Expected accept to succeed, got %v", err)
	}

	var isMember bool
	if err := conn.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM group_member WHERE group_id = $1 AND user_id = $2)
	`, groupID, bob).Scan(&isMember); err != nil {
		t.Fatalf("Failed to query membership: %v", err)
	}
	if !isMember {
		t.Error("Expected bob to be a member after accepting")
	}

	var status string
	if err := conn.QueryRow(`SELECT status FROM group_invite WHERE id = $1`, inviteID).Scan(&status); err != nil {
		t.Fatalf("Failed to query invite: %v", err)
	}
	if status != models.InviteStatusAccepted {
		t.Errorf("Expected status accepted, got %s", status)
	}

	// Second accept is a conflict, and membership stays single
	if _, err := engine.Execute(context.Background(), AcceptInvite{InviteID: inviteID, UserID: bob}); KindOf(err) != KindConflict {
		t.Errorf("Expected conflict on repeat accept, got %v", err)
	}

	var count int
	if err := conn.QueryRow(`
		SELECT COUNT(*) FROM group_member WHERE group_id = $1 AND user_id = $2
	`, groupID, bob).Scan(&count); err != nil {
		t.Fatalf("Failed to count memberships: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 membership row, got %d", count)
	}
}

func TestRejectInvite(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := New(conn, nil, 0)

	alice := testutil.CreateTestUser(t, conn, "Alice")
	bob := testutil.CreateTestUser(t, conn, "Bob")
	groupID := testutil.CreateTestGroup(t, conn, alice, "Hiking Group")
	inviteID := testutil.CreateTestInvite(t, conn, groupID, bob, alice, models.InviteStatusPending)

	if _, err := engine.Execute(context.Background(), RejectInvite{InviteID: inviteID, UserID: bob}); err != nil {
		t.Fatalf("Expected reject to succeed, got %v", err)
	}

	// No membership was created
	var isMember bool
	if err := conn.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM group_member WHERE group_id = $1 AND user_id = $2)
	`, groupID, bob).Scan(&isMember); err != nil {
		t.Fatalf("Failed to query membership: %v", err)
	}
	if isMember {
		t.Error("Expected no membership after reject")
	}

	// The row is kept with its resolved status
	var status string
	if err := conn.QueryRow(`SELECT status FROM group_invite WHERE id = $1`, inviteID).Scan(&status); err != nil {
		t.Fatalf("Failed to query invite: %v", err)
	}
	if status != models.InviteStatusRejected {
		t.Errorf("Expected status rejected, got %s", status)
	}

	// Accepting a rejected invite is a conflict
	if _, err := engine.Execute(context.Background(), AcceptInvite{InviteID: inviteID, UserID: bob}); KindOf(err) != KindConflict {
		t.Errorf("Expected conflict accepting resolved invite, got %v", err)
	}

	// Once resolved, a fresh invite may be sent
	if _, err := engine.Execute(context.Background(), SendInvite{GroupID: groupID, InviterID: alice, InviteeID: bob}); err != nil {
		t.Errorf("Expected re-invite after rejection to succeed, got %v", err)
	}
}

func TestPendingInvites(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := New(conn, nil, 0)

	alice := testutil.CreateTestUser(t, conn, "Alice")
	bob := testutil.CreateTestUser(t, conn, "Bob")
	g1 := testutil.CreateTestGroup(t, conn, alice, "One")
	g2 := testutil.CreateTestGroup(t, conn, alice, "Two")
	testutil.CreateTestInvite(t, conn, g1, bob, alice, models.InviteStatusPending)
	testutil.CreateTestInvite(t, conn, g2, bob, alice, models.InviteStatusRejected)

	invites, err := engine.PendingInvites(bob)
	if err != nil {
		t.Fatalf("Failed to list invites: %v", err)
	}
	if len(invites) != 1 {
		t.Fatalf("Expected 1 pending invite, got %d", len(invites))
	}
	if invites[0].GroupID != g1 {
		t.Errorf("Expected invite for group %s, got %s", g1, invites[0].GroupID)
	}
}

// TestInviteAcceptFlow walks the full happy path: create, invite, list,
// accept, and verify the new member sees the group.
func TestInviteAcceptFlow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := New(conn, nil, 0)
	ctx := context.Background()

	alice := testutil.CreateTestUser(t, conn, "Alice")
	bob := testutil.CreateTestUser(t, conn, "Bob")

	result, err := engine.Execute(ctx, CreateGroup{Name: "Weekend Plans", CreatorID: alice})
	if err != nil {
		t.Fatalf("Failed to create group: %v", err)
	}
	group := result.(*models.Group)

	result, err = engine.Execute(ctx, SendInvite{GroupID: group.ID, InviterID: alice, InviteeID: bob})
	if err != nil {
		t.Fatalf("Failed to send invite: %v", err)
	}
	invite := result.(*models.Invite)

	pending, err := engine.PendingInvites(bob)
	if err != nil {
		t.Fatalf("Failed to list invites: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != invite.ID {
		t.Fatalf("Expected bob's pending invite to be listed, got %+v", pending)
	}

	if _, err := engine.Execute(ctx, AcceptInvite{InviteID: invite.ID, UserID: bob}); err != nil {
		t.Fatalf("Failed to accept invite: %v", err)
	}

	groups, err := engine.ListGroups(bob)
	if err != nil {
		t.Fatalf("Failed to list groups: %v", err)
	}
	if len(groups) != 1 || groups[0].ID != group.ID {
		t.Fatalf("Expected bob to see the joined group, got %+v", groups)
	}
}
