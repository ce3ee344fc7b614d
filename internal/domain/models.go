package domain

import "time"

// User represents a registered account.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	Username     string    `gorm:"size:255;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

// Tweet is a short text post, optionally carrying an image URL.
type Tweet struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID string  `gorm:"type:uuid;not null;index" json:"author_id"`
	Content  string  `gorm:"type:text;not null" json:"content"`
	ImageURL *string `gorm:"size:512" json:"image_url,omitempty"`

	// Seq is a monotonically increasing insertion counter used to keep
	// feed ordering stable when two tweets share a timestamp.
	Seq       int64     `gorm:"autoIncrement;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Tweet) TableName() string { return "tweets" }

// Like marks that a user liked a tweet. The composite primary key makes a
// repeated like a conflict, which callers treat as a no-op.
type Like struct {
	TweetID   string    `gorm:"type:uuid;primaryKey" json:"tweet_id"`
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string { return "likes" }

// Follow is a directed edge in the social graph. Self-loops are rejected
// before the edge ever reaches the store.
type Follow struct {
	FollowerID  string    `gorm:"type:uuid;primaryKey" json:"follower_id"`
	FollowingID string    `gorm:"type:uuid;primaryKey" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Follow) TableName() string { return "follows" }

// NotificationKind distinguishes the events that produce notifications.
type NotificationKind string

const (
	NotificationFollow NotificationKind = "follow"
	NotificationLike   NotificationKind = "like"
)

// Notification is an append-only event addressed to a single recipient.
// FromUser stores the acting user's username, not their id.
type Notification struct {
	ID        string           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      NotificationKind `gorm:"size:20;not null" json:"type"`
	FromUser  string           `gorm:"size:255;not null" json:"from_user"`
	TweetID   *string          `gorm:"type:uuid" json:"tweet_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// Profile is a user as seen by another user.
type Profile struct {
	User           *User `json:"user"`
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`

	// FollowedByViewer is nil when there is no viewer or the viewer is
	// looking at their own profile.
	FollowedByViewer *bool `json:"followed_by_viewer,omitempty"`
}
