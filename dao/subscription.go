package dao

import (
	"Learnhub/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionDAO struct {
	Repo[models.DiscussionSubscription]
}

func NewSubscriptionDAO(db *gorm.DB) *SubscriptionDAO {
	return &SubscriptionDAO{Repo: NewRepo[models.DiscussionSubscription](db)}
}

// Subscribe 幂等订阅, 返回(可能已存在的)订阅记录, created 表示本次新建
func (d *SubscriptionDAO) Subscribe(ctx context.Context, userID, discussionID uint64) (*models.DiscussionSubscription, bool, error) {
	item := &models.DiscussionSubscription{UserID: userID, DiscussionID: discussionID}
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "discussion_id"}},
			DoNothing: true,
		}).
		Create(item)
	if res.Error != nil {
		return nil, false, res.Error
	}

	existing, err := d.FindByWhere(ctx, "user_id = ? AND discussion_id = ?", userID, discussionID)
	if err != nil {
		return nil, false, err
	}
	return existing, res.RowsAffected > 0, nil
}

func (d *SubscriptionDAO) IsSubscribed(ctx context.Context, userID, discussionID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND discussion_id = ?", userID, discussionID)
}

// ListSubscriberIDs 讨论的订阅用户, 排除 excludeUserID
func (d *SubscriptionDAO) ListSubscriberIDs(ctx context.Context, discussionID, excludeUserID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := d.Model(ctx).
		Where("discussion_id = ? AND user_id <> ?", discussionID, excludeUserID).
		Order("id ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}
