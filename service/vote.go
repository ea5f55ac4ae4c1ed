package service

import (
	"Learnhub/dao"
	"Learnhub/models"
	"context"
	"fmt"
)

var _ IVoteService = (*VoteService)(nil)

type IVoteService interface {
	// CastVote 赞/踩: 首次投票创建, 同值撤销, 异值切换
	CastVote(ctx context.Context, userID uint64, target models.Target, value int) (models.VoteResult, error)
	Counts(ctx context.Context, target models.Target) (likes int64, dislikes int64, err error)
	// MyVote 当前用户的投票值, 未投票为 0
	MyVote(ctx context.Context, userID uint64, target models.Target) (int8, error)
}

type VoteService struct {
	VoteDAO       *dao.VoteDAO
	DiscussionDAO *dao.Discussion
	CommentDAO    *dao.Comment
}

func (s *VoteService) CastVote(ctx context.Context, userID uint64, target models.Target, value int) (models.VoteResult, error) {
	if value != int(models.VoteLike) && value != int(models.VoteDislike) {
		return 0, fmt.Errorf("vote value %d: %w", value, ErrInvalidInput)
	}
	if err := s.checkTarget(ctx, target); err != nil {
		return 0, err
	}

	return s.VoteDAO.Cast(ctx, userID, target, int8(value))
}

func (s *VoteService) Counts(ctx context.Context, target models.Target) (int64, int64, error) {
	if err := s.checkTarget(ctx, target); err != nil {
		return 0, 0, err
	}
	return s.VoteDAO.Counts(ctx, target)
}

func (s *VoteService) MyVote(ctx context.Context, userID uint64, target models.Target) (int8, error) {
	vote, err := s.VoteDAO.Get(ctx, userID, target)
	if err != nil {
		return 0, err
	}
	if vote == nil {
		return 0, nil
	}
	return vote.Value, nil
}

func (s *VoteService) checkTarget(ctx context.Context, target models.Target) error {
	var (
		exists bool
		err    error
	)
	switch target.Kind {
	case models.TargetDiscussion:
		exists, err = s.DiscussionDAO.Exists(ctx, target.ID)
	case models.TargetComment:
		exists, err = s.CommentDAO.Exists(ctx, target.ID)
	default:
		return fmt.Errorf("target kind %q: %w", target.Kind, ErrInvalidInput)
	}
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s: %w", target, ErrNotFound)
	}
	return nil
}
