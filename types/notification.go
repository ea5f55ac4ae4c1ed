package types

import "time"

type NotificationItem struct {
	ID           uint64    `json:"id,string"`
	DiscussionID uint64    `json:"discussion_id"`
	CommentID    uint64    `json:"comment_id,string"`
	Message      string    `json:"message"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Items []*NotificationItem `json:"items"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
