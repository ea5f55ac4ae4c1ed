package service

import (
	"context"
	"testing"

	"Learnhub/dao"
	"Learnhub/internal/testutil"
	"Learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVoteService(db *gorm.DB) *VoteService {
	return &VoteService{
		VoteDAO:       dao.NewVoteDAO(db),
		DiscussionDAO: dao.NewDiscussion(db),
		CommentDAO:    dao.NewComment(db),
	}
}

func TestVoteService_CastVote(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := newVoteService(db)
	user := testutil.CreateUser(t, db, "alice", "")
	discussion := testutil.CreateDiscussion(t, db, user.ID, "votes")
	target := models.Target{Kind: models.TargetDiscussion, ID: discussion.ID}

	result, err := svc.CastVote(ctx, user.ID, target, 1)
	require.NoError(t, err)
	assert.Equal(t, models.VoteCreated, result)

	likes, dislikes, err := svc.Counts(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
	assert.Equal(t, int64(0), dislikes)

	result, err = svc.CastVote(ctx, user.ID, target, -1)
	require.NoError(t, err)
	assert.Equal(t, models.VoteSwitched, result)

	my, err := svc.MyVote(ctx, user.ID, target)
	require.NoError(t, err)
	assert.Equal(t, models.VoteDislike, my)

	result, err = svc.CastVote(ctx, user.ID, target, -1)
	require.NoError(t, err)
	assert.Equal(t, models.VoteRemoved, result)

	my, err = svc.MyVote(ctx, user.ID, target)
	require.NoError(t, err)
	assert.Equal(t, int8(0), my)
}

func TestVoteService_Validation(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := newVoteService(db)
	user := testutil.CreateUser(t, db, "alice", "")
	discussion := testutil.CreateDiscussion(t, db, user.ID, "votes")
	comment := testutil.CreateComment(t, db, 42, discussion.ID, user.ID, "hi")

	for _, value := range []int{0, 2, -2} {
		_, err := svc.CastVote(ctx, user.ID, models.Target{Kind: models.TargetDiscussion, ID: discussion.ID}, value)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	_, err := svc.CastVote(ctx, user.ID, models.Target{Kind: "note", ID: discussion.ID}, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CastVote(ctx, user.ID, models.Target{Kind: models.TargetComment, ID: 43}, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	result, err := svc.CastVote(ctx, user.ID, models.Target{Kind: models.TargetComment, ID: comment.ID}, 1)
	require.NoError(t, err)
	assert.Equal(t, models.VoteCreated, result)

	var count int64
	require.NoError(t, db.Model(&models.Vote{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
