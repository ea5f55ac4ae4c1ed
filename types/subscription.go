package types

import "time"

type SubscriptionResponse struct {
	ID           uint64    `json:"id"`
	DiscussionID uint64    `json:"discussion_id"`
	Created      bool      `json:"created"` // false 表示之前已订阅
	CreatedAt    time.Time `json:"created_at"`
}
