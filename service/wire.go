package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(VoteService), "*"),
	wire.Bind(new(IVoteService), new(*VoteService)),

	wire.Struct(new(QuizService), "*"),
	wire.Bind(new(IQuizService), new(*QuizService)),

	wire.Struct(new(SubscriptionService), "*"),
	wire.Bind(new(ISubscriptionService), new(*SubscriptionService)),

	wire.Struct(new(NotificationService), "*"),
	wire.Bind(new(INotificationService), new(*NotificationService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(PushService), "*"),
	wire.Bind(new(Pusher), new(*PushService)),

	wire.Struct(new(FanoutService), "*"),
	wire.Bind(new(IFanoutService), new(*FanoutService)),

	wire.Struct(new(FanoutWorker), "*"),
)
