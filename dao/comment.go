package dao

import (
	"Learnhub/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

func (d *Comment) Exists(ctx context.Context, id uint64) (bool, error) {
	return d.IsExist(ctx, "id = ?", id)
}

// ListByDiscussion 讨论下的回复(按时间正序), cursor 为上一页最后一条的纳秒时间戳
func (d *Comment) ListByDiscussion(ctx context.Context, discussionID uint64, cursor int64, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	query := d.Db.WithContext(ctx).
		Where("discussion_id = ?", discussionID)

	if cursor > 0 {
		query = query.Where("created_at > ?", time.Unix(0, cursor))
	}

	err := query.
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&comments).Error

	return comments, err
}

