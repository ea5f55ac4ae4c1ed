package models

import (
	"fmt"
	"time"
)

type TargetKind string

const (
	TargetDiscussion TargetKind = "discussion"
	TargetComment    TargetKind = "comment"
)

func (k TargetKind) Valid() bool {
	return k == TargetDiscussion || k == TargetComment
}

// Target 投票对象: 讨论或评论
type Target struct {
	Kind TargetKind `json:"kind"`
	ID   uint64     `json:"id"`
}

func (t Target) String() string {
	return fmt.Sprintf("%s:%d", t.Kind, t.ID)
}

const (
	VoteLike    int8 = 1
	VoteDislike int8 = -1
)

// Vote 每个用户对每个对象至多一条
type Vote struct {
	ID         uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint64     `gorm:"column:user_id;not null;uniqueIndex:uk_vote_user_target,priority:1" json:"user_id"`
	TargetKind TargetKind `gorm:"column:target_kind;size:16;not null;uniqueIndex:uk_vote_user_target,priority:2;index:idx_vote_target,priority:1" json:"target_kind"`
	TargetID   uint64     `gorm:"column:target_id;not null;uniqueIndex:uk_vote_user_target,priority:3;index:idx_vote_target,priority:2" json:"target_id"`
	Value      int8       `gorm:"column:value;not null" json:"value"` // 1 赞 -1 踩
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Vote) TableName() string {
	return "votes"
}

func (v *Vote) Target() Target {
	return Target{Kind: v.TargetKind, ID: v.TargetID}
}

// VoteResult 一次投票对记录造成的变化
type VoteResult int

const (
	VoteCreated VoteResult = iota + 1
	VoteRemoved
	VoteSwitched
)

func (r VoteResult) String() string {
	switch r {
	case VoteCreated:
		return "created"
	case VoteRemoved:
		return "removed"
	case VoteSwitched:
		return "switched"
	default:
		return "unknown"
	}
}
