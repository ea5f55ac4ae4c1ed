package dao

import (
	"Learnhub/models"
	"context"

	"gorm.io/gorm"
)

type NotificationDAO struct {
	Repo[models.Notification]
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{Repo: NewRepo[models.Notification](db)}
}

// ListByUser 用户通知, 最新的在前; limit <= 0 不限制条数
func (d *NotificationDAO) ListByUser(ctx context.Context, userID uint64, limit int) ([]*models.Notification, error) {
	items := make([]*models.Notification, 0)
	query := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&items).Error
	return items, err
}

func (d *NotificationDAO) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	return d.FindCount(ctx, "user_id = ? AND is_read = ?", userID, false)
}

// MarkRead 标记已读, 记录不存在或不属于该用户时 found=false; 已读的记录直接返回
func (d *NotificationDAO) MarkRead(ctx context.Context, userID, id uint64) (found bool, err error) {
	var item models.Notification
	err = d.Db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Limit(1).
		Find(&item).Error
	if err != nil {
		return false, err
	}
	if item.ID == 0 {
		return false, nil
	}
	if item.IsRead {
		return true, nil
	}

	err = d.Model(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error
	return true, err
}

// MarkAllRead 全部标记已读, 返回本次变更的条数
func (d *NotificationDAO) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	res := d.Model(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
