package service

import (
	"Learnhub/dao"
	"Learnhub/models"
	"context"
	"fmt"
)

var _ ISubscriptionService = (*SubscriptionService)(nil)

type ISubscriptionService interface {
	// Subscribe 重复订阅返回已有记录, created=false
	Subscribe(ctx context.Context, userID, discussionID uint64) (*models.DiscussionSubscription, bool, error)
	// ListSubscribers 讨论的订阅者, 不含 excludeUserID
	ListSubscribers(ctx context.Context, discussionID, excludeUserID uint64) ([]uint64, error)
	IsSubscribed(ctx context.Context, userID, discussionID uint64) (bool, error)
}

type SubscriptionService struct {
	SubscriptionDAO *dao.SubscriptionDAO
	DiscussionDAO   *dao.Discussion
}

func (s *SubscriptionService) Subscribe(ctx context.Context, userID, discussionID uint64) (*models.DiscussionSubscription, bool, error) {
	exists, err := s.DiscussionDAO.Exists(ctx, discussionID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, fmt.Errorf("discussion %d: %w", discussionID, ErrNotFound)
	}

	return s.SubscriptionDAO.Subscribe(ctx, userID, discussionID)
}

func (s *SubscriptionService) ListSubscribers(ctx context.Context, discussionID, excludeUserID uint64) ([]uint64, error) {
	return s.SubscriptionDAO.ListSubscriberIDs(ctx, discussionID, excludeUserID)
}

func (s *SubscriptionService) IsSubscribed(ctx context.Context, userID, discussionID uint64) (bool, error) {
	return s.SubscriptionDAO.IsSubscribed(ctx, userID, discussionID)
}
