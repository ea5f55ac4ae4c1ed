package types

import "time"

// 创建评论请求
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

type CommentResponse struct {
	ID           uint64    `json:"id,string"`
	DiscussionID uint64    `json:"discussion_id"`
	UserID       uint64    `json:"user_id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

type CommentsListResponse struct {
	Items      []*CommentResponse `json:"items"`
	NextCursor int64              `json:"next_cursor"`
	HasMore    bool               `json:"has_more"`
}
