package models

import "time"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Users 用户表, 账号体系由外部身份服务维护, 这里只读取昵称与邮箱
type Users struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nickname  string    `gorm:"column:nickname;size:64" json:"nickname"`
	Email     string    `gorm:"column:email;size:255" json:"email"`
	Role      string    `gorm:"column:role;size:20;default:student" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
