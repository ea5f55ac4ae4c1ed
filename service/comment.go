package service

import (
	"Learnhub/config"
	"Learnhub/dao"
	"Learnhub/models"
	"Learnhub/pkg/email"
	"Learnhub/pkg/eventbus"
	"Learnhub/pkg/log"
	"Learnhub/pkg/snowflake"
	"Learnhub/pkg/utils"
	"Learnhub/types"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	// Create 保存评论, 提交成功后发布评论事件
	Create(ctx context.Context, userID, discussionID uint64, content string) (*models.Comment, error)
	List(ctx context.Context, discussionID uint64, cursor int64, limit int) (*types.CommentsListResponse, error)
}

type CommentService struct {
	Config        *config.Config
	CommentDAO    *dao.Comment
	DiscussionDAO *dao.Discussion
	Bus           eventbus.Bus
}

func (s *CommentService) Create(ctx context.Context, userID, discussionID uint64, content string) (*models.Comment, error) {
	exists, err := s.DiscussionDAO.Exists(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("discussion %d: %w", discussionID, ErrNotFound)
	}

	comment := &models.Comment{
		ID:           uint64(snowflake.GenID()),
		DiscussionID: discussionID,
		UserID:       userID,
		Content:      content,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	// 评论已提交; 事件发布失败只影响通知, 不影响本次写入
	event := &types.CommentCreatedEvent{
		EventID:        uuid.NewString(),
		CommentID:      comment.ID,
		DiscussionID:   discussionID,
		AuthorID:       userID,
		ContentExcerpt: utils.Truncate(email.PlainText(content), s.Config.Notify.GetExcerptLen()),
		CreatedAt:      comment.CreatedAt,
	}
	if err := s.Bus.Publish(context.WithoutCancel(ctx), event); err != nil {
		log.L.Error("publish comment event failed",
			zap.Uint64("comment_id", comment.ID),
			zap.Uint64("discussion_id", discussionID),
			zap.Error(err),
		)
	}

	return comment, nil
}

func (s *CommentService) List(ctx context.Context, discussionID uint64, cursor int64, limit int) (*types.CommentsListResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	// 多取一条判断是否还有下一页
	comments, err := s.CommentDAO.ListByDiscussion(ctx, discussionID, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	resp := &types.CommentsListResponse{Items: make([]*types.CommentResponse, 0, len(comments))}
	if len(comments) > limit {
		resp.HasMore = true
		comments = comments[:limit]
	}
	for _, comment := range comments {
		resp.Items = append(resp.Items, &types.CommentResponse{
			ID:           comment.ID,
			DiscussionID: comment.DiscussionID,
			UserID:       comment.UserID,
			Content:      comment.Content,
			CreatedAt:    comment.CreatedAt,
		})
	}
	if resp.HasMore && len(comments) > 0 {
		resp.NextCursor = comments[len(comments)-1].CreatedAt.UnixNano()
	}
	return resp, nil
}
