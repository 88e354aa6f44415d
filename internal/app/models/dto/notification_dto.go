package dto

import "github.com/yigit/internhub/internal/app/models"

// NotificationListResponse is the recency-ordered notification feed for a mentor
type NotificationListResponse struct {
	Notifications []*models.Notification `json:"notifications"`
	UnreadCount   int64                  `json:"unreadCount" example:"3"`
}
