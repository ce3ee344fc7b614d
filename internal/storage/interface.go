package storage

import (
	"context"

	"minitwitter/backend/internal/domain"
)

// Storage is the contract the domain services are built against. Two
// implementations exist: a gorm/Postgres store and an in-memory store used
// for single-process deployments and tests.
//
// Uniqueness rules live here: CreateUser fails with domain.ErrUsernameTaken
// on a username conflict, and the Create*/Delete* pair methods for follows
// and likes are idempotent, reporting through their boolean return whether
// the call actually changed anything.
type Storage interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	CreateFollow(ctx context.Context, followerID, followingID string) (created bool, err error)
	DeleteFollow(ctx context.Context, followerID, followingID string) error
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	GetFollowing(ctx context.Context, userID string) ([]string, error)
	GetFollowers(ctx context.Context, userID string) ([]string, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)

	CreateTweet(ctx context.Context, tweet *domain.Tweet) error
	GetTweetByID(ctx context.Context, id string) (*domain.Tweet, error)
	GetLatestTweetByAuthor(ctx context.Context, authorID string) (*domain.Tweet, error)

	// DeleteTweet removes the tweet and its likes, but only when authorID
	// matches the stored author. Anything else is a silent no-op.
	DeleteTweet(ctx context.Context, authorID, tweetID string) error

	// ListTweets returns tweets newest first with Author populated. A nil
	// authorIDs slice means all tweets; an empty slice means none.
	// Tweets sharing a timestamp keep their insertion order.
	ListTweets(ctx context.Context, authorIDs []string) ([]*domain.Tweet, error)

	CreateLike(ctx context.Context, tweetID, userID string) (created bool, err error)
	DeleteLike(ctx context.Context, tweetID, userID string) error
	HasLiked(ctx context.Context, tweetID, userID string) (bool, error)
	CountLikes(ctx context.Context, tweetID string) (int64, error)

	CreateNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, userID string) ([]*domain.Notification, error)
}
