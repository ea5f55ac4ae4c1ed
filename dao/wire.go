package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewDiscussion,
	NewComment,
	NewVoteDAO,
	NewQuizDAO,
	NewQuizResultDAO,
	NewSubscriptionDAO,
	NewNotificationDAO,
)
