package types

import "time"

// CommentCreatedEvent 评论提交成功后发布, 是通知扇出的唯一触发源
type CommentCreatedEvent struct {
	EventID        string    `json:"event_id"`
	CommentID      uint64    `json:"comment_id,string"`
	DiscussionID   uint64    `json:"discussion_id"`
	AuthorID       uint64    `json:"author_id"`
	ContentExcerpt string    `json:"content_excerpt"`
	CreatedAt      time.Time `json:"created_at"`
}
