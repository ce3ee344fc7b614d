package service

import (
	"context"

	"minitwitter/backend/internal/domain"

	"github.com/google/uuid"
)

// Like records that the user liked the tweet. A repeated like is a no-op.
// The first like notifies the tweet's author, unless the liker is the
// author.
func (s *Service) Like(ctx context.Context, userID, tweetID string) error {
	tweet, err := s.store.GetTweetByID(ctx, tweetID)
	if err != nil {
		return err
	}

	created, err := s.store.CreateLike(ctx, tweetID, userID)
	if err != nil {
		return err
	}
	if !created || tweet.AuthorID == userID {
		return nil
	}

	liker, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	return s.store.CreateNotification(ctx, &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    tweet.AuthorID,
		Type:      domain.NotificationLike,
		FromUser:  liker.Username,
		TweetID:   &tweet.ID,
		CreatedAt: s.now().UTC(),
	})
}

// Unlike removes the user's like from the tweet if present; otherwise it
// does nothing.
func (s *Service) Unlike(ctx context.Context, userID, tweetID string) error {
	return s.store.DeleteLike(ctx, tweetID, userID)
}

// HasLiked reports whether the user has liked the tweet.
func (s *Service) HasLiked(ctx context.Context, userID, tweetID string) (bool, error) {
	return s.store.HasLiked(ctx, tweetID, userID)
}

// LikeCount returns the number of likes on the tweet.
func (s *Service) LikeCount(ctx context.Context, tweetID string) (int64, error) {
	return s.store.CountLikes(ctx, tweetID)
}
