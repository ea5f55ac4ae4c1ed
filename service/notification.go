package service

import (
	"Learnhub/dao"
	"Learnhub/dao/cache"
	"Learnhub/models"
	"Learnhub/pkg/log"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var _ INotificationService = (*NotificationService)(nil)

type INotificationService interface {
	// List 用户全部通知, 最新的在前
	List(ctx context.Context, userID uint64) ([]*models.Notification, error)
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
	// MarkRead 通知不存在与不属于该用户同样返回 ErrNotFound
	MarkRead(ctx context.Context, userID, notificationID uint64) error
	MarkAllRead(ctx context.Context, userID uint64) (int64, error)
}

type NotificationService struct {
	NotificationDAO *dao.NotificationDAO
	UnreadStorage   *cache.UnreadStorage
}

func (s *NotificationService) List(ctx context.Context, userID uint64) ([]*models.Notification, error) {
	return s.NotificationDAO.ListByUser(ctx, userID, 0)
}

// UnreadCount 优先读缓存, redis 异常时直接查库
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	var countErr error
	n, err := s.UnreadStorage.Load(ctx, userID, func(ctx context.Context) (int64, error) {
		n, err := s.NotificationDAO.CountUnread(ctx, userID)
		countErr = err
		return n, err
	})
	switch {
	case countErr != nil:
		return 0, countErr
	case err == nil, errors.Is(err, cache.ErrUnreadConflict):
		return n, nil
	}

	log.L.Warn("load unread cache failed", zap.Uint64("user_id", userID), zap.Error(err))
	return s.NotificationDAO.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint64) error {
	found, err := s.NotificationDAO.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("notification %d: %w", notificationID, ErrNotFound)
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	n, err := s.NotificationDAO.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx, userID)
	return n, nil
}

func (s *NotificationService) invalidate(ctx context.Context, userID uint64) {
	if err := s.UnreadStorage.Invalidate(ctx, userID); err != nil {
		log.L.Warn("invalidate unread cache failed", zap.Uint64("user_id", userID), zap.Error(err))
	}
}
