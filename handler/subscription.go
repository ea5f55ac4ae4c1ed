package handler

import (
	"Learnhub/config"
	"Learnhub/middleware"
	"Learnhub/pkg/context"
	"Learnhub/pkg/response"
	"Learnhub/service"
	"Learnhub/types"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	Config              *config.Config
	SubscriptionService service.ISubscriptionService
}

func (h *SubscriptionHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.GetExpire())
	r.POST("/v1/discussions/:discussion_id/subscribe", authorize, context.Wrap(h.Subscribe)) // 订阅讨论
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	discussionID, err := paramID(c, "discussion_id")
	if err != nil {
		return err
	}

	sub, created, err := h.SubscriptionService.Subscribe(c.Request.Context(), userID, discussionID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, &types.SubscriptionResponse{
		ID:           sub.ID,
		DiscussionID: sub.DiscussionID,
		Created:      created,
		CreatedAt:    sub.CreatedAt,
	})
	return nil
}
