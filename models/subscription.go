package models

import "time"

// DiscussionSubscription 订阅讨论, 有新回复时收到通知
type DiscussionSubscription struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_subscription_user_discussion,priority:1" json:"user_id"`
	DiscussionID uint64    `gorm:"column:discussion_id;not null;uniqueIndex:uk_subscription_user_discussion,priority:2;index" json:"discussion_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DiscussionSubscription) TableName() string {
	return "discussion_subscriptions"
}
