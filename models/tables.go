package models

// Tables 需要迁移的表
func Tables() []any {
	return []any{
		&Users{},
		&Discussion{},
		&Comment{},
		&Vote{},
		&Quiz{},
		&Question{},
		&Choice{},
		&QuizResult{},
		&DiscussionSubscription{},
		&Notification{},
	}
}
