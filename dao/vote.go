package dao

import (
	"Learnhub/models"
	"Learnhub/pkg/log"
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 并发首投时唯一索引冲突/死锁的整体重试次数
const maxCastAttempts = 3

type VoteDAO struct {
	Repo[models.Vote]
}

func NewVoteDAO(db *gorm.DB) *VoteDAO {
	return &VoteDAO{Repo: NewRepo[models.Vote](db)}
}

// Get 查询用户对对象的投票, 不存在返回 nil
func (d *VoteDAO) Get(ctx context.Context, userID uint64, target models.Target) (*models.Vote, error) {
	var item models.Vote
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, target.Kind, target.ID).
		Limit(1).
		Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// Cast 投票: 不存在则创建, 同值则撤销, 异值则切换
//
// 查找与写入在同一事务内完成, 已有记录加行锁; 两个请求同时首投时
// 后提交的一方会触发唯一索引冲突, 此时整体重跑事务, 读到对方的记录后
// 再按撤销/切换处理, 结果等价于两次投票串行执行。
func (d *VoteDAO) Cast(ctx context.Context, userID uint64, target models.Target, value int8) (models.VoteResult, error) {
	var (
		result models.VoteResult
		err    error
	)
	for attempt := 1; attempt <= maxCastAttempts; attempt++ {
		result, err = d.cast(ctx, userID, target, value)
		if err == nil || !(IsDuplicateKey(err) || IsDeadlock(err)) {
			return result, err
		}
		log.L.Warn("vote conflict, retrying",
			zap.Uint64("user_id", userID),
			zap.String("target", target.String()),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
	return result, err
}

func (d *VoteDAO) cast(ctx context.Context, userID uint64, target models.Target, value int8) (models.VoteResult, error) {
	var result models.VoteResult
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Vote
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, target.Kind, target.ID).
			Limit(1).
			Find(&item).Error
		if err != nil {
			return err
		}

		switch {
		case item.ID == 0: // create
			item = models.Vote{UserID: userID, TargetKind: target.Kind, TargetID: target.ID, Value: value}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			result = models.VoteCreated
		case item.Value == value: // toggle off
			if err := tx.Delete(&models.Vote{}, item.ID).Error; err != nil {
				return err
			}
			result = models.VoteRemoved
		default: // switch
			if err := tx.Model(&models.Vote{}).Where("id = ?", item.ID).Update("value", value).Error; err != nil {
				return err
			}
			result = models.VoteSwitched
		}
		return nil
	})
	return result, err
}

type voteCount struct {
	Value int8
	Total int64
}

// Counts 对象的赞/踩数
func (d *VoteDAO) Counts(ctx context.Context, target models.Target) (likes int64, dislikes int64, err error) {
	var rows []voteCount
	err = d.Model(ctx).
		Select("value, COUNT(*) AS total").
		Where("target_kind = ? AND target_id = ?", target.Kind, target.ID).
		Group("value").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, err
	}

	for _, row := range rows {
		switch row.Value {
		case models.VoteLike:
			likes = row.Total
		case models.VoteDislike:
			dislikes = row.Total
		}
	}
	return likes, dislikes, nil
}
