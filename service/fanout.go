package service

import (
	"Learnhub/config"
	"Learnhub/dao"
	"Learnhub/dao/cache"
	"Learnhub/models"
	"Learnhub/pkg/email"
	"Learnhub/pkg/log"
	"Learnhub/pkg/snowflake"
	"Learnhub/pkg/utils"
	"Learnhub/types"
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IFanoutService = (*FanoutService)(nil)

// FanoutReport 一次扇出的统计
type FanoutReport struct {
	Subscribers int
	Persisted   int
	Pushed      int
	PushSkipped int // 不在线, 未推送
	Emailed     int
	Failures    int
}

type IFanoutService interface {
	// Fanout 为讨论的每个订阅者(评论作者除外)生成一条站内通知, 并尽力推送和发送邮件
	//
	// 只有查询订阅者/讨论失败时返回 error, 调用方可以整体重试;
	// 推送与邮件的失败只记录, 不影响通知记录。
	Fanout(ctx context.Context, event *types.CommentCreatedEvent) (*FanoutReport, error)
}

type FanoutService struct {
	Config              *config.Config
	SubscriptionService ISubscriptionService
	DiscussionDAO       *dao.Discussion
	UsersDAO            *dao.Users
	NotificationDAO     *dao.NotificationDAO
	UnreadStorage       *cache.UnreadStorage
	Pusher              Pusher
	Mailer              email.Sender
}

type fanoutCounter struct {
	persisted atomic.Int64
	pushed    atomic.Int64
	skipped   atomic.Int64
	emailed   atomic.Int64
	failures  atomic.Int64
}

func (s *FanoutService) Fanout(ctx context.Context, event *types.CommentCreatedEvent) (*FanoutReport, error) {
	start := time.Now()
	report := &FanoutReport{}

	subscribers, err := s.SubscriptionService.ListSubscribers(ctx, event.DiscussionID, event.AuthorID)
	if err != nil {
		notifyFanoutDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return report, fmt.Errorf("list subscribers: %w", err)
	}
	report.Subscribers = len(subscribers)
	if len(subscribers) == 0 {
		notifyFanoutDuration.WithLabelValues("empty").Observe(time.Since(start).Seconds())
		return report, nil
	}

	discussion, err := s.DiscussionDAO.FindById(ctx, event.DiscussionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 讨论已删除, 重试也没有意义
		log.L.Warn("fanout discussion not found", zap.Uint64("discussion_id", event.DiscussionID))
		return report, nil
	}
	if err != nil {
		notifyFanoutDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return report, fmt.Errorf("load discussion: %w", err)
	}

	message := fmt.Sprintf("New reply in discussion '%s'", discussion.Title)

	contacts, err := s.UsersDAO.BatchGetContacts(ctx, append(subscribers, event.AuthorID))
	if err != nil {
		// 没有联系方式只影响邮件
		log.L.Error("fanout get contacts failed", zap.Uint64("discussion_id", event.DiscussionID), zap.Error(err))
		contacts = make(map[uint64]*models.Users)
	}

	var counter fanoutCounter

	// 先全部落库, 再推送/发邮件; 慢的旁路渠道不会拖住其他订阅者的通知写入
	notifications := s.persist(ctx, event, subscribers, message, &counter)

	authorName := ""
	if author, ok := contacts[event.AuthorID]; ok {
		authorName = author.Nickname
	}
	s.dispatch(ctx, notifications, contacts, func(to email.Address) *email.Message {
		return email.NewReplyMessage(to, authorName, discussion.Title, event.ContentExcerpt)
	}, &counter)

	report.Persisted = int(counter.persisted.Load())
	report.Pushed = int(counter.pushed.Load())
	report.PushSkipped = int(counter.skipped.Load())
	report.Emailed = int(counter.emailed.Load())
	report.Failures = int(counter.failures.Load())

	notifyFanoutDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	log.L.Info("fanout finished",
		zap.String("event_id", event.EventID),
		zap.Uint64("comment_id", event.CommentID),
		zap.Int("subscribers", report.Subscribers),
		zap.Int("persisted", report.Persisted),
		zap.Int("pushed", report.Pushed),
		zap.Int("push_skipped", report.PushSkipped),
		zap.Int("emailed", report.Emailed),
		zap.Int("failures", report.Failures),
		zap.Duration("cost", time.Since(start)),
	)
	return report, nil
}

// persist 每个订阅者写一条通知, 返回写入成功的记录
func (s *FanoutService) persist(ctx context.Context, event *types.CommentCreatedEvent, subscribers []uint64, message string, counter *fanoutCounter) []*models.Notification {
	results := make([]*models.Notification, len(subscribers))

	p := pool.New().WithMaxGoroutines(s.Config.Notify.GetPersistWorkers())
	for i, uid := range subscribers {
		p.Go(func() {
			defer recoverTask("persist", uid, counter)

			item := &models.Notification{
				ID:           uint64(snowflake.GenID()),
				UserID:       uid,
				DiscussionID: event.DiscussionID,
				CommentID:    event.CommentID,
				Message:      message,
			}
			if err := s.NotificationDAO.Create(ctx, item); err != nil {
				counter.failures.Add(1)
				notifyDeliveriesTotal.WithLabelValues("store", "failed").Inc()
				log.L.Error("persist notification failed",
					zap.Uint64("user_id", uid),
					zap.Uint64("comment_id", event.CommentID),
					zap.Error(err),
				)
				return
			}
			counter.persisted.Add(1)
			notifyDeliveriesTotal.WithLabelValues("store", "ok").Inc()

			if err := s.UnreadStorage.Invalidate(ctx, uid); err != nil {
				log.L.Warn("invalidate unread cache failed", zap.Uint64("user_id", uid), zap.Error(err))
			}
			results[i] = item
		})
	}
	p.Wait()

	items := make([]*models.Notification, 0, len(results))
	for _, item := range results {
		if item != nil {
			items = append(items, item)
		}
	}
	return items
}

// dispatch 推送与邮件, 任一失败都不影响其他订阅者
func (s *FanoutService) dispatch(ctx context.Context, notifications []*models.Notification, contacts map[uint64]*models.Users, build func(email.Address) *email.Message, counter *fanoutCounter) {
	conf := s.Config.Notify

	p := pool.New().WithMaxGoroutines(conf.GetWorkers())
	for _, item := range notifications {
		p.Go(func() {
			defer recoverTask("dispatch", item.UserID, counter)

			s.push(ctx, item, conf.GetPushTimeout(), counter)

			contact, ok := contacts[item.UserID]
			if !ok || contact.Email == "" {
				notifyDeliveriesTotal.WithLabelValues("email", "skipped").Inc()
				return
			}
			s.mail(ctx, build(email.Address{Name: contact.Nickname, Address: contact.Email}), conf.GetEmailTimeout(), counter)
		})
	}
	p.Wait()
}

func (s *FanoutService) push(ctx context.Context, item *models.Notification, timeout time.Duration, counter *fanoutCounter) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := s.Pusher.Push(ctx, item.UserID, &types.PushPayload{
		Type:    types.PushTypeNotification,
		Message: item.Message,
	})
	if errors.Is(err, ErrUserOffline) {
		counter.skipped.Add(1)
		notifyDeliveriesTotal.WithLabelValues("push", "skipped").Inc()
		return
	}
	if err != nil {
		counter.failures.Add(1)
		notifyDeliveriesTotal.WithLabelValues("push", "failed").Inc()
		log.L.Warn("push notification failed", zap.Uint64("user_id", item.UserID), zap.Error(err))
		return
	}
	counter.pushed.Add(1)
	notifyDeliveriesTotal.WithLabelValues("push", "ok").Inc()
}

func (s *FanoutService) mail(ctx context.Context, msg *email.Message, timeout time.Duration, counter *fanoutCounter) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.Mailer.Send(ctx, msg); err != nil {
		counter.failures.Add(1)
		notifyDeliveriesTotal.WithLabelValues("email", "failed").Inc()
		log.L.Warn("send notification email failed", zap.String("to", msg.To.Address), zap.Error(err))
		return
	}
	counter.emailed.Add(1)
	notifyDeliveriesTotal.WithLabelValues("email", "ok").Inc()
}

func recoverTask(stage string, uid uint64, counter *fanoutCounter) {
	if err := recover(); err != nil {
		counter.failures.Add(1)
		log.L.Error("fanout task panic",
			zap.String("stage", stage),
			zap.Uint64("user_id", uid),
			zap.String("trace", utils.PanicTrace(err)),
		)
	}
}
