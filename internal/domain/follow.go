package domain

import "time"

type Follow struct {
	FollowerID  string    `json:"follower_id"`
	FollowingID string    `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// FeedActivity is a "going" RSVP of someone in the reader's network.
type FeedActivity struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Event     Event     `json:"event"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Feed struct {
	Events    []Event        `json:"events"`
	Activity  []FeedActivity `json:"activity"`
	Suggested []User         `json:"suggested"`
}
