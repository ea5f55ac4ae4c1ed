package dao

import (
	"Learnhub/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// BatchGetContacts 批量查询用户昵称与邮箱
func (u *Users) BatchGetContacts(ctx context.Context, ids []uint64) (map[uint64]*models.Users, error) {
	result := make(map[uint64]*models.Users, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var items []*models.Users
	err := u.Db.WithContext(ctx).
		Select("id", "nickname", "email").
		Where("id IN ?", ids).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		result[item.ID] = item
	}
	return result, nil
}
