package service

import (
	"context"
	"fmt"

	"peer-review-workflow/internal/domain"
	"peer-review-workflow/internal/repository"
)

// notificationPageSize limits the notifications returned per listing.
const notificationPageSize = 20

// NotificationService implements in-app notification reads.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List returns a user's most recent notifications and the unread count.
func (s *NotificationService) List(ctx context.Context, userID string) ([]domain.Notification, int, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID, notificationPageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count unread: %w", err)
	}

	return notifications, unread, nil
}

// MarkRead marks one notification as read, or all of the user's
// notifications when notificationID is empty.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	if notificationID == "" {
		return s.notificationRepo.MarkAllRead(ctx, userID)
	}
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}
