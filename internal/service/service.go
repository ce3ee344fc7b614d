package service

import (
	"log/slog"
	"sync"
	"time"

	"minitwitter/backend/internal/domain"
	"minitwitter/backend/internal/storage"
)

// Config carries the behavioral switches that varied across deployments.
type Config struct {
	// FeedMode selects the global or the personalized home feed.
	FeedMode domain.FeedMode

	// RejectDuplicates makes posting the same text as the author's most
	// recent tweet fail.
	RejectDuplicates bool

	// Cooldown is the minimum gap between two posts by the same author.
	// Zero disables the check.
	Cooldown time.Duration
}

// Service implements the application's operations over an injected store.
type Service struct {
	store  storage.Storage
	filter *domain.ModerationFilter
	cfg    Config
	logger *slog.Logger
	now    func() time.Time

	// lastPost tracks each author's most recent post time for cooldown
	// enforcement. Process-local and lost on restart, which matches how
	// deployments treated it: a convenience guard, not authoritative
	// state.
	mu       sync.Mutex
	lastPost map[string]time.Time
}

// New creates a Service.
func New(store storage.Storage, filter *domain.ModerationFilter, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:    store,
		filter:   filter,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		lastPost: make(map[string]time.Time),
	}
}
