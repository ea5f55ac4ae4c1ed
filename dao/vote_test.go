package dao

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"Learnhub/internal/testutil"
	"Learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestVoteDAO_Cast(t *testing.T) {
	ctx := context.Background()
	d := NewVoteDAO(testutil.NewDB(t))
	target := models.Target{Kind: models.TargetDiscussion, ID: 10}

	result, err := d.Cast(ctx, 1, target, models.VoteLike)
	require.NoError(t, err)
	assert.Equal(t, models.VoteCreated, result)

	result, err = d.Cast(ctx, 1, target, models.VoteDislike)
	require.NoError(t, err)
	assert.Equal(t, models.VoteSwitched, result)

	vote, err := d.Get(ctx, 1, target)
	require.NoError(t, err)
	require.NotNil(t, vote)
	assert.Equal(t, models.VoteDislike, vote.Value)

	result, err = d.Cast(ctx, 1, target, models.VoteDislike)
	require.NoError(t, err)
	assert.Equal(t, models.VoteRemoved, result)

	vote, err = d.Get(ctx, 1, target)
	require.NoError(t, err)
	assert.Nil(t, vote)
}

func TestVoteDAO_TargetsAreIndependent(t *testing.T) {
	ctx := context.Background()
	d := NewVoteDAO(testutil.NewDB(t))

	// 同一个 id 的讨论和评论是两个不同对象
	discussion := models.Target{Kind: models.TargetDiscussion, ID: 5}
	comment := models.Target{Kind: models.TargetComment, ID: 5}

	_, err := d.Cast(ctx, 1, discussion, models.VoteLike)
	require.NoError(t, err)
	result, err := d.Cast(ctx, 1, comment, models.VoteLike)
	require.NoError(t, err)
	assert.Equal(t, models.VoteCreated, result)

	likes, _, err := d.Counts(ctx, discussion)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
	likes, _, err = d.Counts(ctx, comment)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
}

func TestVoteDAO_Counts(t *testing.T) {
	ctx := context.Background()
	d := NewVoteDAO(testutil.NewDB(t))
	target := models.Target{Kind: models.TargetComment, ID: 99}

	for uid := uint64(1); uid <= 3; uid++ {
		_, err := d.Cast(ctx, uid, target, models.VoteLike)
		require.NoError(t, err)
	}
	_, err := d.Cast(ctx, 4, target, models.VoteDislike)
	require.NoError(t, err)

	likes, dislikes, err := d.Counts(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, int64(3), likes)
	assert.Equal(t, int64(1), dislikes)

	likes, dislikes, err = d.Counts(ctx, models.Target{Kind: models.TargetComment, ID: 100})
	require.NoError(t, err)
	assert.Zero(t, likes)
	assert.Zero(t, dislikes)
}

func TestVoteDAO_ConcurrentCast(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	d := NewVoteDAO(db)
	target := models.Target{Kind: models.TargetDiscussion, ID: 1}

	tests := []struct {
		name  string
		casts int
		want  int64
	}{
		// 同值投票串行等价: 奇数次留下一条, 偶数次全部撤销
		{name: "even", casts: 10, want: 0},
		{name: "odd", casts: 7, want: 1},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uid := uint64(100 + i)

			var wg sync.WaitGroup
			errs := make(chan error, tt.casts)
			for n := 0; n < tt.casts; n++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if _, err := d.Cast(ctx, uid, target, models.VoteLike); err != nil {
						errs <- err
					}
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}

			var rows int64
			require.NoError(t, db.Model(&models.Vote{}).
				Where("user_id = ? AND target_kind = ? AND target_id = ?", uid, target.Kind, target.ID).
				Count(&rows).Error)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestVoteDAO_UniqueIndex(t *testing.T) {
	db := testutil.NewDB(t)

	vote := models.Vote{UserID: 1, TargetKind: models.TargetDiscussion, TargetID: 1, Value: models.VoteLike}
	require.NoError(t, db.Create(&vote).Error)

	dup := models.Vote{UserID: 1, TargetKind: models.TargetDiscussion, TargetID: 1, Value: models.VoteDislike}
	err := db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
}

// hideVotes 让接下来 n 次投票查询读不到已有记录, 模拟查询发生在对方提交之前
func hideVotes(t *testing.T, db *gorm.DB, n int32) *atomic.Int32 {
	t.Helper()
	var remaining atomic.Int32
	remaining.Store(n)
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:hide_votes", func(tx *gorm.DB) {
		if tx.Statement.Table != "votes" || remaining.Add(-1) < 0 {
			return
		}
		if v, ok := tx.Statement.Dest.(*models.Vote); ok {
			*v = models.Vote{}
		}
	}))
	return &remaining
}

func TestVoteDAO_CastRetriesOnDuplicate(t *testing.T) {
	target := models.Target{Kind: models.TargetComment, ID: 5}

	tests := []struct {
		name      string
		value     int8
		want      models.VoteResult
		wantRows  int64
		wantValue int8
	}{
		{name: "same value removes", value: models.VoteLike, want: models.VoteRemoved, wantRows: 0},
		{name: "other value switches", value: models.VoteDislike, want: models.VoteSwitched, wantRows: 1, wantValue: models.VoteDislike},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			db := testutil.NewDB(t)
			d := NewVoteDAO(db)

			// 并发的另一请求已提交了点赞
			require.NoError(t, db.Create(&models.Vote{UserID: 1, TargetKind: target.Kind, TargetID: target.ID, Value: models.VoteLike}).Error)
			hideVotes(t, db, 1)

			result, err := d.Cast(ctx, 1, target, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)

			var rows []models.Vote
			require.NoError(t, db.Where("user_id = ? AND target_kind = ? AND target_id = ?", 1, target.Kind, target.ID).Find(&rows).Error)
			require.Len(t, rows, int(tt.wantRows))
			if tt.wantRows == 1 {
				assert.Equal(t, tt.wantValue, rows[0].Value)
			}
		})
	}
}

func TestVoteDAO_CastGivesUpAfterRetries(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	d := NewVoteDAO(db)
	target := models.Target{Kind: models.TargetComment, ID: 6}

	require.NoError(t, db.Create(&models.Vote{UserID: 1, TargetKind: target.Kind, TargetID: target.ID, Value: models.VoteLike}).Error)
	remaining := hideVotes(t, db, maxCastAttempts)

	_, err := d.Cast(ctx, 1, target, models.VoteLike)
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
	assert.Equal(t, int32(0), remaining.Load(), "every attempt ran the lookup once")

	var rows int64
	require.NoError(t, db.Model(&models.Vote{}).Where("user_id = ?", 1).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}
