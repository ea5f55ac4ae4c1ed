package handler

import (
	"Learnhub/config"
	"Learnhub/middleware"
	"Learnhub/pkg/context"
	"Learnhub/pkg/response"
	"Learnhub/service"
	"Learnhub/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentsHandler struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(ch.Config.Jwt.Secret), ch.Config.Jwt.GetExpire())
	discussions := r.Group("/v1/discussions", authorize)
	discussions.POST("/:discussion_id/comments", context.Wrap(ch.CreateComment)) // 发表回复
	discussions.GET("/:discussion_id/comments", context.Wrap(ch.GetComments))
}

// CreateComment 创建评论
func (ch *CommentsHandler) CreateComment(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	discussionID, err := paramID(c, "discussion_id")
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	comment, err := ch.CommentService.Create(c.Request.Context(), userID, discussionID, req.Content)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, &types.CommentResponse{
		ID:           comment.ID,
		DiscussionID: comment.DiscussionID,
		UserID:       comment.UserID,
		Content:      comment.Content,
		CreatedAt:    comment.CreatedAt,
	})
	return nil
}

// GetComments 获取评论列表(游标分页)
func (ch *CommentsHandler) GetComments(c *gin.Context) error {
	discussionID, err := paramID(c, "discussion_id")
	if err != nil {
		return err
	}
	cursor, _ := strconv.ParseInt(c.DefaultQuery("cursor", "0"), 10, 64)
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := ch.CommentService.List(c.Request.Context(), discussionID, cursor, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
