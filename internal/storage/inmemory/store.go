package inmemory

import (
	"context"
	"sort"
	"sync"

	"minitwitter/backend/internal/domain"
)

// Store implements storage.Storage with plain maps. It backs tests and
// single-process deployments where nothing needs to survive a restart.
type Store struct {
	mu sync.RWMutex

	users       map[string]*domain.User // keyed by id
	usersByName map[string]string       // username -> id

	tweets     map[string]*domain.Tweet
	tweetOrder []string // tweet ids in insertion order
	nextSeq    int64

	follows map[string]map[string]bool // follower id -> set of following ids
	likes   map[string]map[string]bool // tweet id -> set of liker ids

	notifications map[string][]*domain.Notification // recipient id -> events, oldest first
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:         make(map[string]*domain.User),
		usersByName:   make(map[string]string),
		tweets:        make(map[string]*domain.Tweet),
		follows:       make(map[string]map[string]bool),
		likes:         make(map[string]map[string]bool),
		notifications: make(map[string][]*domain.Notification),
	}
}

// === Users ===

func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usersByName[user.Username]; taken {
		return domain.ErrUsernameTaken
	}
	s.users[user.ID] = user
	s.usersByName[user.Username] = user.ID
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.users[id], nil
}

// === Follows ===

func (s *Store) CreateFollow(ctx context.Context, followerID, followingID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.follows[followerID]
	if !ok {
		set = make(map[string]bool)
		s.follows[followerID] = set
	}
	if set[followingID] {
		return false, nil
	}
	set[followingID] = true
	return true, nil
}

func (s *Store) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.follows[followerID], followingID)
	return nil
}

func (s *Store) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.follows[followerID][followingID], nil
}

func (s *Store) GetFollowing(ctx context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for id := range s.follows[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Store) GetFollowers(ctx context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for follower, set := range s.follows {
		if set[userID] {
			ids = append(ids, follower)
		}
	}
	return ids, nil
}

func (s *Store) CountFollowers(ctx context.Context, userID string) (int64, error) {
	ids, _ := s.GetFollowers(ctx, userID)
	return int64(len(ids)), nil
}

func (s *Store) CountFollowing(ctx context.Context, userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.follows[userID])), nil
}

// === Tweets ===

func (s *Store) CreateTweet(ctx context.Context, tweet *domain.Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	tweet.Seq = s.nextSeq
	if tweet.Author == nil {
		tweet.Author = s.users[tweet.AuthorID]
	}
	s.tweets[tweet.ID] = tweet
	s.tweetOrder = append(s.tweetOrder, tweet.ID)
	return nil
}

func (s *Store) GetTweetByID(ctx context.Context, id string) (*domain.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tweet, ok := s.tweets[id]
	if !ok {
		return nil, domain.ErrTweetNotFound
	}
	return tweet, nil
}

func (s *Store) GetLatestTweetByAuthor(ctx context.Context, authorID string) (*domain.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.tweetOrder) - 1; i >= 0; i-- {
		tweet := s.tweets[s.tweetOrder[i]]
		if tweet != nil && tweet.AuthorID == authorID {
			return tweet, nil
		}
	}
	return nil, domain.ErrTweetNotFound
}

func (s *Store) DeleteTweet(ctx context.Context, authorID, tweetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tweet, ok := s.tweets[tweetID]
	if !ok || tweet.AuthorID != authorID {
		return nil
	}
	delete(s.tweets, tweetID)
	delete(s.likes, tweetID)
	for i, id := range s.tweetOrder {
		if id == tweetID {
			s.tweetOrder = append(s.tweetOrder[:i], s.tweetOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) ListTweets(ctx context.Context, authorIDs []string) ([]*domain.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filter map[string]bool
	if authorIDs != nil {
		filter = make(map[string]bool, len(authorIDs))
		for _, id := range authorIDs {
			filter[id] = true
		}
	}

	tweets := make([]*domain.Tweet, 0, len(s.tweetOrder))
	for _, id := range s.tweetOrder {
		tweet := s.tweets[id]
		if filter != nil && !filter[tweet.AuthorID] {
			continue
		}
		tweets = append(tweets, tweet)
	}

	// Stable so that tweets sharing a timestamp keep insertion order.
	sort.SliceStable(tweets, func(i, j int) bool {
		return tweets[i].CreatedAt.After(tweets[j].CreatedAt)
	})
	return tweets, nil
}

// === Likes ===

func (s *Store) CreateLike(ctx context.Context, tweetID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.likes[tweetID]
	if !ok {
		set = make(map[string]bool)
		s.likes[tweetID] = set
	}
	if set[userID] {
		return false, nil
	}
	set[userID] = true
	return true, nil
}

func (s *Store) DeleteLike(ctx context.Context, tweetID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.likes[tweetID], userID)
	return nil
}

func (s *Store) HasLiked(ctx context.Context, tweetID, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.likes[tweetID][userID], nil
}

func (s *Store) CountLikes(ctx context.Context, tweetID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.likes[tweetID])), nil
}

// === Notifications ===

func (s *Store) CreateNotification(ctx context.Context, n *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications[n.UserID] = append(s.notifications[n.UserID], n)
	return nil
}

func (s *Store) ListNotifications(ctx context.Context, userID string) ([]*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.notifications[userID]
	out := make([]*domain.Notification, len(stored))
	for i, n := range stored {
		out[len(stored)-1-i] = n
	}
	return out, nil
}
