package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"Learnhub/config"
	"Learnhub/dao"
	"Learnhub/internal/testutil"
	"Learnhub/models"
	"Learnhub/pkg/eventbus"
	"Learnhub/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeBus struct {
	mu     sync.Mutex
	events []*types.CommentCreatedEvent
	err    error
}

func (f *fakeBus) Publish(_ context.Context, event *types.CommentCreatedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeBus) Run(ctx context.Context, _ eventbus.Handler) error {
	<-ctx.Done()
	return nil
}

func newCommentService(db *gorm.DB, bus eventbus.Bus) *CommentService {
	return &CommentService{
		Config:        &config.Config{Notify: &config.Notify{ExcerptLen: 10}},
		CommentDAO:    dao.NewComment(db),
		DiscussionDAO: dao.NewDiscussion(db),
		Bus:           bus,
	}
}

func TestCommentService_CreatePublishesEvent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	bus := &fakeBus{}
	svc := newCommentService(db, bus)

	user := testutil.CreateUser(t, db, "carol", "")
	discussion := testutil.CreateDiscussion(t, db, user.ID, "events")

	comment, err := svc.Create(ctx, user.ID, discussion.ID, "<p>hello <b>everyone</b> here</p>")
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)

	require.Len(t, bus.events, 1)
	event := bus.events[0]
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, comment.ID, event.CommentID)
	assert.Equal(t, discussion.ID, event.DiscussionID)
	assert.Equal(t, user.ID, event.AuthorID)
	assert.Equal(t, "hello ever...", event.ContentExcerpt)

	_, err = svc.Create(ctx, user.ID, 404, "orphan")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, bus.events, 1)
}

func TestCommentService_PublishFailureKeepsComment(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := newCommentService(db, &fakeBus{err: errors.New("broker down")})

	user := testutil.CreateUser(t, db, "carol", "")
	discussion := testutil.CreateDiscussion(t, db, user.ID, "events")

	comment, err := svc.Create(ctx, user.ID, discussion.ID, "still saved")
	require.NoError(t, err)

	var stored models.Comment
	require.NoError(t, db.First(&stored, comment.ID).Error)
	assert.Equal(t, "still saved", stored.Content)
}

func TestCommentService_List(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := newCommentService(db, &fakeBus{})

	user := testutil.CreateUser(t, db, "carol", "")
	discussion := testutil.CreateDiscussion(t, db, user.ID, "pages")
	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, user.ID, discussion.ID, strings.Repeat("x", i+1))
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	page, err := svc.List(ctx, discussion.ID, 0, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.True(t, page.HasMore)
	assert.Equal(t, "x", page.Items[0].Content)

	page, err = svc.List(ctx, discussion.ID, page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.False(t, page.HasMore)
	assert.Equal(t, "xxx", page.Items[0].Content)
}

// 评论写入 -> 内存总线 -> 扇出 -> 订阅者通知
func TestCommentToNotification(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db := testutil.NewDB(t)
	_, rdb := testutil.NewRedis(t)
	bus := eventbus.NewMemoryBus(&config.Queue{Buffer: 8, Consumers: 1})

	a := testutil.CreateUser(t, db, "alice", "alice@example.com")
	b := testutil.CreateUser(t, db, "bob", "bob@example.com")
	c := testutil.CreateUser(t, db, "carol", "carol@example.com")
	discussion := testutil.CreateDiscussion(t, db, a.ID, "Pipelines")
	subscribe(t, db, discussion.ID, a, b, c)

	pusher := &fakePusher{}
	worker := &FanoutWorker{Bus: bus, Fanout: newFanoutService(db, rdb, pusher, &fakeMailer{})}
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	svc := newCommentService(db, bus)
	comment, err := svc.Create(ctx, c.ID, discussion.ID, "fan out please")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(pusher.pushed()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	rows := notificationsOf(t, db, comment.ID)
	assert.Len(t, rows, 2)
	assert.NotContains(t, rows, c.ID)

	cancel()
	<-done
}
