package service

import (
	"context"
	"testing"

	"Learnhub/dao"
	"Learnhub/internal/testutil"
	"Learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionService(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := &SubscriptionService{SubscriptionDAO: dao.NewSubscriptionDAO(db), DiscussionDAO: dao.NewDiscussion(db)}

	a := testutil.CreateUser(t, db, "alice", "")
	b := testutil.CreateUser(t, db, "bob", "")
	discussion := testutil.CreateDiscussion(t, db, a.ID, "subs")

	first, created, err := svc.Subscribe(ctx, a.ID, discussion.ID)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := svc.Subscribe(ctx, a.ID, discussion.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	_, _, err = svc.Subscribe(ctx, b.ID, discussion.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.DiscussionSubscription{}).Where("user_id = ?", a.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	ids, err := svc.ListSubscribers(ctx, discussion.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a.ID}, ids)

	ok, err := svc.IsSubscribed(ctx, b.ID, discussion.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, _, err = svc.Subscribe(ctx, a.ID, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
