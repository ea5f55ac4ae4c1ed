package dao

import (
	"Learnhub/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizResultDAO struct {
	Repo[models.QuizResult]
}

func NewQuizResultDAO(db *gorm.DB) *QuizResultDAO {
	return &QuizResultDAO{Repo: NewRepo[models.QuizResult](db)}
}

// Upsert 按 (user_id, quiz_id) 写入成绩, 已存在时整体覆盖
//
// 单条 INSERT ... ON CONFLICT / ON DUPLICATE KEY UPDATE, 并发提交时
// 最终行一定是某一次提交的完整结果。
func (d *QuizResultDAO) Upsert(ctx context.Context, result *models.QuizResult) error {
	return d.Db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "quiz_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"score", "correct_count", "total_questions", "answers", "taken_at",
			}),
		}).
		Create(result).Error
}

// GetByUserQuiz 用户在测验上的成绩, 未作答返回 gorm.ErrRecordNotFound
func (d *QuizResultDAO) GetByUserQuiz(ctx context.Context, userID, quizID uint64) (*models.QuizResult, error) {
	return d.FindByWhere(ctx, "user_id = ? AND quiz_id = ?", userID, quizID)
}
