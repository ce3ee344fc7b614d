package inmemory

import (
	"context"
	"testing"
	"time"

	"minitwitter/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, s *Store, username string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func newTweet(t *testing.T, s *Store, author *domain.User, content string, at time.Time) *domain.Tweet {
	t.Helper()
	tweet := &domain.Tweet{
		ID:        uuid.NewString(),
		AuthorID:  author.ID,
		Content:   content,
		CreatedAt: at,
	}
	require.NoError(t, s.CreateTweet(context.Background(), tweet))
	return tweet
}

func TestStore_CreateUser_UsernameTaken(t *testing.T) {
	store := New()
	ctx := context.Background()

	alice := newUser(t, store, "alice")

	err := store.CreateUser(ctx, &domain.User{ID: uuid.NewString(), Username: "alice"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// The original account is untouched.
	got, err := store.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
}

func TestStore_GetUser_NotFound(t *testing.T) {
	store := New()
	ctx := context.Background()

	_, err := store.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = store.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestStore_Follow_Idempotent(t *testing.T) {
	store := New()
	ctx := context.Background()
	alice := newUser(t, store, "alice")
	bob := newUser(t, store, "bob")

	created, err := store.CreateFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.CreateFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, created)

	count, err := store.CountFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	followers, err := store.GetFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID}, followers)
}

func TestStore_Unfollow_RemovesEdge(t *testing.T) {
	store := New()
	ctx := context.Background()
	alice := newUser(t, store, "alice")
	bob := newUser(t, store, "bob")

	_, err := store.CreateFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, store.DeleteFollow(ctx, alice.ID, bob.ID))

	following, err := store.GetFollowing(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, following)

	// Removing an absent edge is a no-op.
	assert.NoError(t, store.DeleteFollow(ctx, alice.ID, bob.ID))
}

func TestStore_Like_Idempotent(t *testing.T) {
	store := New()
	ctx := context.Background()
	alice := newUser(t, store, "alice")
	bob := newUser(t, store, "bob")
	tweet := newTweet(t, store, bob, "hello", time.Now().UTC())

	created, err := store.CreateLike(ctx, tweet.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.CreateLike(ctx, tweet.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, created)

	count, err := store.CountLikes(ctx, tweet.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, store.DeleteLike(ctx, tweet.ID, alice.ID))
	liked, err := store.HasLiked(ctx, tweet.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestStore_ListTweets_OrderAndFilter(t *testing.T) {
	store := New()
	ctx := context.Background()
	alice := newUser(t, store, "alice")
	bob := newUser(t, store, "bob")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	first := newTweet(t, store, alice, "first", base)
	second := newTweet(t, store, bob, "second", base.Add(time.Minute))
	// Same timestamp as second: insertion order must win.
	third := newTweet(t, store, alice, "third", base.Add(time.Minute))

	all, err := store.ListTweets(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, third.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)
	assert.Equal(t, "alice", all[2].Author.Username)

	onlyAlice, err := store.ListTweets(ctx, []string{alice.ID})
	require.NoError(t, err)
	require.Len(t, onlyAlice, 2)
	assert.Equal(t, third.ID, onlyAlice[0].ID)
	assert.Equal(t, first.ID, onlyAlice[1].ID)

	none, err := store.ListTweets(ctx, []string{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_GetLatestTweetByAuthor(t *testing.T) {
	store := New()
	ctx := context.Background()
	alice := newUser(t, store, "alice")

	_, err := store.GetLatestTweetByAuthor(ctx, alice.ID)
	assert.ErrorIs(t, err, domain.ErrTweetNotFound)

	newTweet(t, store, alice, "older", time.Now().UTC())
	latest := newTweet(t, store, alice, "newer", time.Now().UTC())

	got, err := store.GetLatestTweetByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, got.ID)
}

func TestStore_DeleteTweet_AuthorOnly(t *testing.T) {
	store := New()
	ctx := context.Background()
	alice := newUser(t, store, "alice")
	bob := newUser(t, store, "bob")
	tweet := newTweet(t, store, alice, "mine", time.Now().UTC())

	_, err := store.CreateLike(ctx, tweet.ID, bob.ID)
	require.NoError(t, err)

	// Somebody else's delete is a silent no-op.
	require.NoError(t, store.DeleteTweet(ctx, bob.ID, tweet.ID))
	_, err = store.GetTweetByID(ctx, tweet.ID)
	assert.NoError(t, err)

	// The author's delete removes the tweet and its likes.
	require.NoError(t, store.DeleteTweet(ctx, alice.ID, tweet.ID))
	_, err = store.GetTweetByID(ctx, tweet.ID)
	assert.ErrorIs(t, err, domain.ErrTweetNotFound)
	count, err := store.CountLikes(ctx, tweet.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Deleting an unknown tweet does not error.
	assert.NoError(t, store.DeleteTweet(ctx, alice.ID, "missing"))
}

func TestStore_Notifications_NewestFirst(t *testing.T) {
	store := New()
	ctx := context.Background()
	alice := newUser(t, store, "alice")

	first := &domain.Notification{ID: uuid.NewString(), UserID: alice.ID, Type: domain.NotificationFollow, FromUser: "bob"}
	second := &domain.Notification{ID: uuid.NewString(), UserID: alice.ID, Type: domain.NotificationLike, FromUser: "carol"}
	require.NoError(t, store.CreateNotification(ctx, first))
	require.NoError(t, store.CreateNotification(ctx, second))

	got, err := store.ListNotifications(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)

	empty, err := store.ListNotifications(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
