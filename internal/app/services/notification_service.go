package services

import (
	"context"

	"github.com/yigit/internhub/internal/app/models/dto"
	"github.com/yigit/internhub/internal/app/repositories"
)

// NotificationService exposes the mentor notification feed
type NotificationService interface {
	ListForFaculty(ctx context.Context, facultyID int64) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, notificationID, facultyID int64) error
	MarkAllRead(ctx context.Context, facultyID int64) (int64, error)
}

type notificationService struct {
	notifications *repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifications *repositories.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

// ListForFaculty returns a mentor's notifications, newest first, with the
// unread count for the dashboard badge
func (s *notificationService) ListForFaculty(ctx context.Context, facultyID int64) (*dto.NotificationListResponse, error) {
	notifications, err := s.notifications.ListByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	unread, err := s.notifications.UnreadCount(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkRead marks one of the mentor's notifications as read
func (s *notificationService) MarkRead(ctx context.Context, notificationID, facultyID int64) error {
	return s.notifications.MarkRead(ctx, notificationID, facultyID)
}

// MarkAllRead marks all of a mentor's notifications as read
func (s *notificationService) MarkAllRead(ctx context.Context, facultyID int64) (int64, error) {
	return s.notifications.MarkAllRead(ctx, facultyID)
}
