package service

import (
	"context"

	"minitwitter/backend/internal/domain"
)

// HomeFeed assembles the feed for the given viewer, newest first. An empty
// viewerID means an anonymous viewer, which the personalized mode rejects.
func (s *Service) HomeFeed(ctx context.Context, viewerID string) ([]domain.FeedItem, error) {
	var authorIDs []string
	if s.cfg.FeedMode == domain.FeedPersonalized {
		if viewerID == "" {
			return nil, domain.ErrViewerRequired
		}
		following, err := s.store.GetFollowing(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		authorIDs = append(following, viewerID)
	}

	tweets, err := s.store.ListTweets(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	items := make([]domain.FeedItem, 0, len(tweets))
	for _, tweet := range tweets {
		item := domain.FeedItem{
			TweetID:        tweet.ID,
			AuthorID:       tweet.AuthorID,
			AuthorUsername: "Unknown",
			Content:        tweet.Content,
			ImageURL:       tweet.ImageURL,
			CreatedAt:      tweet.CreatedAt,
		}
		if tweet.Author != nil {
			item.AuthorUsername = tweet.Author.Username
		}

		count, err := s.store.CountLikes(ctx, tweet.ID)
		if err != nil {
			return nil, err
		}
		item.LikeCount = count

		if viewerID != "" {
			liked, err := s.store.HasLiked(ctx, tweet.ID, viewerID)
			if err != nil {
				return nil, err
			}
			item.Liked = &liked
		}
		items = append(items, item)
	}
	return items, nil
}
