package models

import "time"

// Notification 站内通知, 创建后只有 is_read 会从 false 变为 true
type Notification struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"` // snowflake
	UserID       uint64    `gorm:"column:user_id;not null;index:idx_notification_user_read,priority:1" json:"user_id"`
	DiscussionID uint64    `gorm:"column:discussion_id;not null" json:"discussion_id"`
	CommentID    uint64    `gorm:"column:comment_id;not null;index" json:"comment_id,string"`
	Message      string    `gorm:"column:message;type:text;not null" json:"message"`
	IsRead       bool      `gorm:"column:is_read;not null;default:false;index:idx_notification_user_read,priority:2" json:"is_read"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
