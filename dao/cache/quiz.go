package cache

import (
	"Learnhub/config"
	"Learnhub/models"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// QuizStorage 测验题目与选项的本地缓存, 提交判分时避免每次都加载整套题
type QuizStorage struct {
	lru *expirable.LRU[uint64, *models.Quiz]
}

func NewQuizStorage(conf *config.Config) *QuizStorage {
	return newQuizStorage(conf.Quiz.GetCacheSize(), conf.Quiz.GetCacheTTL())
}

func newQuizStorage(size int, ttl time.Duration) *QuizStorage {
	return &QuizStorage{lru: expirable.NewLRU[uint64, *models.Quiz](size, nil, ttl)}
}

// Get 缓存不存在或已过期返回 nil
func (q *QuizStorage) Get(quizID uint64) *models.Quiz {
	quiz, ok := q.lru.Get(quizID)
	if !ok {
		return nil
	}
	return quiz
}

func (q *QuizStorage) Set(quiz *models.Quiz) {
	q.lru.Add(quiz.ID, quiz)
}
