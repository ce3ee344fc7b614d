package domain

import (
	"errors"
	"fmt"
	"time"
)

// Operation failures callers are expected to branch on. Everything else a
// component returns is treated as an internal error.
var (
	ErrUsernameTaken  = errors.New("username taken")
	ErrInvalidLogin   = errors.New("invalid username or password")
	ErrUserNotFound   = errors.New("user not found")
	ErrSelfFollow     = errors.New("cannot follow yourself")
	ErrTweetNotFound  = errors.New("tweet not found")
	ErrEmptyTweet     = errors.New("tweet cannot be empty")
	ErrTweetTooLong   = errors.New("tweet too long")
	ErrTweetBlocked   = errors.New("tweet blocked by moderation")
	ErrDuplicateTweet = errors.New("tweet is identical to your previous tweet")
	ErrViewerRequired = errors.New("a signed-in viewer is required")
)

// CooldownError reports that the author posted again before the configured
// cooldown window elapsed.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("posting too fast, retry in %ds", e.RetryAfterSeconds())
}

// RetryAfterSeconds returns the remaining wait rounded up to whole seconds.
func (e *CooldownError) RetryAfterSeconds() int {
	secs := int((e.Remaining + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
