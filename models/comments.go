package models

import (
	"time"
)

// Comment 讨论下的回复
type Comment struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"` // snowflake
	DiscussionID uint64    `gorm:"column:discussion_id;not null;index:idx_discussion_created" json:"discussion_id"`
	UserID       uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Content      string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime;index:idx_discussion_created" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定 GORM 使用的表名
func (Comment) TableName() string {
	return "comments"
}
