package service

import (
	"context"

	"minitwitter/backend/internal/domain"
)

// NotificationsFor returns the user's notifications, newest first.
func (s *Service) NotificationsFor(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.store.ListNotifications(ctx, userID)
}
