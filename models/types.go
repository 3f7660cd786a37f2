package models

import "time"

// Invite status constants
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusRejected = "rejected"
)

// Poll category constants
const (
	CategoryRestaurants = "restaurants"
	CategoryMovies      = "movies"
	CategoryTVShows     = "tv_shows"
	CategoryReading     = "reading"
	CategoryActivities  = "activities"
)

// Categories lists every valid poll category.
var Categories = []string{
	CategoryRestaurants,
	CategoryMovies,
	CategoryTVShows,
	CategoryReading,
	CategoryActivities,
}

// ValidCategory reports whether s is a known poll category.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if s == c {
			return true
		}
	}
	return false
}

// Request types

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type RemoveMemberRequest struct {
	UserID string `json:"user_id"`
}

type SendInviteRequest struct {
	InviteeID string `json:"invitee_id"`
}

type CreatePollRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type CastVoteRequest struct {
	OptionID string `json:"option_id"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type UpdateProfileRequest struct {
	FullName     string `json:"full_name"`
	TasteProfile string `json:"taste_profile"`
}

type AddRatingRequest struct {
	Category string  `json:"category"`
	Title    string  `json:"title"`
	Score    float64 `json:"score"`
}

// Response types

type OKResponse struct {
	OK bool `json:"ok"`
}

type GroupListResponse struct {
	Groups []Group `json:"groups"`
}

type MemberListResponse struct {
	Members []Member `json:"members"`
}

type InviteListResponse struct {
	Invites []Invite `json:"invites"`
}

type MessageListResponse struct {
	Messages []Message `json:"messages"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type Member struct {
	GroupID  string    `json:"group_id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

type Invite struct {
	ID            string    `json:"id"`
	GroupID       string    `json:"group_id"`
	InvitedUserID string    `json:"invited_user_id"`
	InvitedBy     string    `json:"invited_by"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type Message struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	PollID    *string   `json:"poll_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Poll struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// OptionTally is a poll option with its derived vote count. The count is
// recomputed from vote rows on every read, never stored.
type OptionTally struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	PersonalizedScore int    `json:"personalized_score"`
	VoteCount         int    `json:"vote_count"`
}

type PollWithOptions struct {
	Poll       Poll          `json:"poll"`
	Options    []OptionTally `json:"options"`
	MyOptionID string        `json:"my_option_id,omitempty"`
}

type Profile struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	TasteProfile string    `json:"taste_profile"`
	CreatedAt    time.Time `json:"created_at"`
}

type Rating struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
