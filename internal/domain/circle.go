package domain

import "time"

type CircleRole string

const (
	CircleRoleAdmin  CircleRole = "admin"
	CircleRoleMember CircleRole = "member"
)

// Circle is a group of users that share events. Private circles are only
// visible to their members and can only be joined through an admin.
type Circle struct {
	ID          string    `json:"id"`
	CreatorID   string    `json:"creator_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPrivate   bool      `json:"is_private"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type CircleMember struct {
	CircleID string     `json:"circle_id"`
	UserID   string     `json:"user_id"`
	Username string     `json:"username"`
	FullName string     `json:"full_name"`
	Role     CircleRole `json:"role"`
	JoinedAt time.Time  `json:"joined_at"`
}

type CircleDetails struct {
	Circle  Circle         `json:"circle"`
	Members []CircleMember `json:"members"`
	Events  []Event        `json:"events"`
}

type CreateCircleInput struct {
	CreatorID   string
	Name        string
	Description string
	IsPrivate   bool
}
