package handler

import (
	"Learnhub/config"
	"Learnhub/middleware"
	"Learnhub/models"
	"Learnhub/pkg/context"
	"Learnhub/pkg/response"
	"Learnhub/service"
	"Learnhub/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	Config      *config.Config
	VoteService service.IVoteService
}

func (h *VoteHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.GetExpire())
	v1 := r.Group("/v1", authorize)
	v1.POST("/discussions/:discussion_id/vote", context.Wrap(h.VoteDiscussion)) // 讨论赞/踩
	v1.POST("/comments/:comment_id/vote", context.Wrap(h.VoteComment))          // 评论赞/踩
	v1.GET("/votes/:kind/:id", context.Wrap(h.Summary))
}

func (h *VoteHandler) VoteDiscussion(c *gin.Context) error {
	id, err := paramID(c, "discussion_id")
	if err != nil {
		return err
	}
	return h.cast(c, models.Target{Kind: models.TargetDiscussion, ID: id})
}

func (h *VoteHandler) VoteComment(c *gin.Context) error {
	id, err := paramID(c, "comment_id")
	if err != nil {
		return err
	}
	return h.cast(c, models.Target{Kind: models.TargetComment, ID: id})
}

func (h *VoteHandler) cast(c *gin.Context, target models.Target) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req types.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "value 只能为 1 或 -1")
	}

	result, err := h.VoteService.CastVote(c.Request.Context(), userID, target, req.Value)
	if err != nil {
		return bizError(err)
	}

	summary, err := h.summary(c, userID, target)
	if err != nil {
		return err
	}
	response.Success(c, &types.VoteResponse{
		Result:   result.String(),
		Likes:    summary.Likes,
		Dislikes: summary.Dislikes,
		MyVote:   summary.MyVote,
	})
	return nil
}

// Summary 对象的赞踩数与当前用户的投票
func (h *VoteHandler) Summary(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	kind := models.TargetKind(c.Param("kind"))
	if !kind.Valid() {
		return response.NewError(http.StatusBadRequest, "无效的投票对象")
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.summary(c, userID, models.Target{Kind: kind, ID: id})
	if err != nil {
		return err
	}
	response.Success(c, summary)
	return nil
}

func (h *VoteHandler) summary(c *gin.Context, userID uint64, target models.Target) (*types.VoteSummaryResponse, error) {
	ctx := c.Request.Context()
	likes, dislikes, err := h.VoteService.Counts(ctx, target)
	if err != nil {
		return nil, bizError(err)
	}
	my, err := h.VoteService.MyVote(ctx, userID, target)
	if err != nil {
		return nil, err
	}
	return &types.VoteSummaryResponse{Likes: likes, Dislikes: dislikes, MyVote: my}, nil
}
