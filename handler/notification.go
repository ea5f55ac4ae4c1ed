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

type NotificationHandler struct {
	Config              *config.Config
	NotificationService service.INotificationService
}

func (h *NotificationHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.GetExpire())
	notifications := r.Group("/v1/notifications", authorize)
	notifications.GET("", context.Wrap(h.List))
	notifications.GET("/unread-count", context.Wrap(h.UnreadCount))
	notifications.POST("/:id/read", context.Wrap(h.MarkRead))
	notifications.POST("/read-all", context.Wrap(h.MarkAllRead))
}

func (h *NotificationHandler) List(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.NotificationService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	resp := &types.NotificationListResponse{Items: make([]*types.NotificationItem, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, &types.NotificationItem{
			ID:           item.ID,
			DiscussionID: item.DiscussionID,
			CommentID:    item.CommentID,
			Message:      item.Message,
			IsRead:       item.IsRead,
			CreatedAt:    item.CreatedAt,
		})
	}
	response.Success(c, resp)
	return nil
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	n, err := h.NotificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, &types.UnreadCountResponse{UnreadCount: n})
	return nil
}

func (h *NotificationHandler) MarkRead(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.NotificationService.MarkRead(c.Request.Context(), userID, id); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	n, err := h.NotificationService.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, &types.MarkAllReadResponse{Updated: n})
	return nil
}
