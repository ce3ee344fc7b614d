package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"minitwitter/backend/internal/domain"

	"github.com/google/uuid"
)

// MaxTweetLength is the content length limit in characters.
const MaxTweetLength = 280

// CreateTweet validates and persists a new tweet. Checks run in a fixed
// order: empty, length, moderation, duplicate-of-last-post, cooldown.
func (s *Service) CreateTweet(ctx context.Context, authorID, text, imageURL string) (*domain.Tweet, error) {
	if text == "" {
		return nil, domain.ErrEmptyTweet
	}
	if utf8.RuneCountInString(text) > MaxTweetLength {
		return nil, domain.ErrTweetTooLong
	}
	if !s.filter.IsAllowed(text) {
		s.logger.Info("tweet blocked by moderation", "author_id", authorID)
		return nil, domain.ErrTweetBlocked
	}

	if s.cfg.RejectDuplicates {
		last, err := s.store.GetLatestTweetByAuthor(ctx, authorID)
		if err != nil && !errors.Is(err, domain.ErrTweetNotFound) {
			return nil, err
		}
		if last != nil && last.Content == text {
			return nil, domain.ErrDuplicateTweet
		}
	}

	if err := s.checkCooldown(authorID); err != nil {
		return nil, err
	}

	tweet := &domain.Tweet{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Content:   text,
		CreatedAt: s.now().UTC(),
	}
	if imageURL != "" {
		tweet.ImageURL = &imageURL
	}
	if err := s.store.CreateTweet(ctx, tweet); err != nil {
		return nil, err
	}

	s.markPosted(authorID)
	return tweet, nil
}

// DeleteTweet removes the tweet only when the caller authored it. A missing
// tweet or a different author is a silent no-op, not an error.
func (s *Service) DeleteTweet(ctx context.Context, authorID, tweetID string) error {
	return s.store.DeleteTweet(ctx, authorID, tweetID)
}

func (s *Service) checkCooldown(authorID string) error {
	if s.cfg.Cooldown <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.lastPost[authorID]
	if !ok {
		return nil
	}
	elapsed := s.now().Sub(last)
	if elapsed < s.cfg.Cooldown {
		return &domain.CooldownError{Remaining: s.cfg.Cooldown - elapsed}
	}
	return nil
}

func (s *Service) markPosted(authorID string) {
	if s.cfg.Cooldown <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPost[authorID] = s.now()
}
