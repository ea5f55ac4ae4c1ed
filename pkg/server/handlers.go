package server

import (
	"Learnhub/handler"
)

type Handlers struct {
	Vote         *handler.VoteHandler
	Quiz         *handler.QuizHandler
	Subscription *handler.SubscriptionHandler
	Notification *handler.NotificationHandler
	Comments     *handler.CommentsHandler
}
