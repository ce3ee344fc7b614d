package service

import (
	"context"

	"minitwitter/backend/internal/domain"

	"github.com/google/uuid"
)

// Follow adds a follow edge from the caller to the named user. Following
// someone already followed is a silent no-op; only the first insert
// notifies the target.
func (s *Service) Follow(ctx context.Context, followerID, targetUsername string) error {
	target, err := s.store.GetUserByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}
	if target.ID == followerID {
		return domain.ErrSelfFollow
	}

	created, err := s.store.CreateFollow(ctx, followerID, target.ID)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	follower, err := s.store.GetUserByID(ctx, followerID)
	if err != nil {
		return err
	}
	return s.store.CreateNotification(ctx, &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    target.ID,
		Type:      domain.NotificationFollow,
		FromUser:  follower.Username,
		CreatedAt: s.now().UTC(),
	})
}

// Unfollow removes the edge to the named user if it exists. Removing an
// absent edge is a no-op and nobody is notified either way.
func (s *Service) Unfollow(ctx context.Context, followerID, targetUsername string) error {
	target, err := s.store.GetUserByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}
	return s.store.DeleteFollow(ctx, followerID, target.ID)
}

// Following returns the ids of everyone the user follows.
func (s *Service) Following(ctx context.Context, userID string) ([]string, error) {
	return s.store.GetFollowing(ctx, userID)
}

// Followers returns the ids of everyone following the user.
func (s *Service) Followers(ctx context.Context, userID string) ([]string, error) {
	return s.store.GetFollowers(ctx, userID)
}

// FollowerCount returns how many users follow the given user.
func (s *Service) FollowerCount(ctx context.Context, userID string) (int64, error) {
	return s.store.CountFollowers(ctx, userID)
}

// Profile assembles the named user's public profile as seen by viewerID.
// viewerID may be empty for an anonymous viewer.
func (s *Service) Profile(ctx context.Context, viewerID, username string) (*domain.Profile, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	followers, err := s.store.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.store.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		User:           user,
		FollowersCount: followers,
		FollowingCount: following,
	}
	if viewerID != "" && viewerID != user.ID {
		followed, err := s.store.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		profile.FollowedByViewer = &followed
	}
	return profile, nil
}
