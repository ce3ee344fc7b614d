package domain

import "time"

// FeedMode selects which tweets the home feed shows.
type FeedMode string

const (
	// FeedGlobal shows every tweet from every user.
	FeedGlobal FeedMode = "global"

	// FeedPersonalized shows tweets authored by the viewer or by anyone
	// the viewer follows.
	FeedPersonalized FeedMode = "personalized"
)

// FeedItem is a single entry of an assembled home feed.
type FeedItem struct {
	TweetID        string    `json:"tweet_id"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	ImageURL       *string   `json:"image_url,omitempty"`
	LikeCount      int64     `json:"like_count"`
	CreatedAt      time.Time `json:"created_at"`

	// Liked is nil when the feed was assembled for an anonymous viewer.
	Liked *bool `json:"liked,omitempty"`
}
