package models

import "time"

// Discussion 课程讨论帖
type Discussion struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CourseID  uint64    `gorm:"column:course_id;not null;index" json:"course_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Title     string    `gorm:"column:title;size:255;not null" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Discussion) TableName() string {
	return "discussions"
}
