// Package testutil 单元测试用的 sqlite 内存库与 miniredis
package testutil

import (
	"fmt"
	"testing"

	"Learnhub/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 每个测试独立的内存库, 已迁移全部表
//
// 只保留一个连接: 并发测试中的事务会在连接池上排队, 行为等价于串行执行。
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.Tables()...))
	return db
}

// NewRedis miniredis 及其客户端
func NewRedis(t testing.TB) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func CreateUser(t testing.TB, db *gorm.DB, nickname, email string) *models.Users {
	t.Helper()

	user := &models.Users{Nickname: nickname, Email: email, Role: models.RoleStudent}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateDiscussion(t testing.TB, db *gorm.DB, authorID uint64, title string) *models.Discussion {
	t.Helper()

	discussion := &models.Discussion{CourseID: 1, UserID: authorID, Title: title, Content: "content"}
	require.NoError(t, db.Create(discussion).Error)
	return discussion
}

func CreateComment(t testing.TB, db *gorm.DB, id, discussionID, authorID uint64, content string) *models.Comment {
	t.Helper()

	comment := &models.Comment{ID: id, DiscussionID: discussionID, UserID: authorID, Content: content}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

// CreateQuiz 按 correct[i][j] 生成第 i 题第 j 个选项, true 为正确选项
func CreateQuiz(t testing.TB, db *gorm.DB, title string, correct [][]bool) *models.Quiz {
	t.Helper()

	quiz := &models.Quiz{CourseID: 1, Title: title}
	for i, choices := range correct {
		question := models.Question{Text: fmt.Sprintf("question %d", i+1)}
		for j, ok := range choices {
			question.Choices = append(question.Choices, models.Choice{
				Text:      fmt.Sprintf("choice %d.%d", i+1, j+1),
				IsCorrect: ok,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	require.NoError(t, db.Create(quiz).Error)
	return quiz
}
