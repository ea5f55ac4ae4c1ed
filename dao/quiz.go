package dao

import (
	"Learnhub/models"
	"context"

	"gorm.io/gorm"
)

type QuizDAO struct {
	Repo[models.Quiz]
}

func NewQuizDAO(db *gorm.DB) *QuizDAO {
	return &QuizDAO{Repo: NewRepo[models.Quiz](db)}
}

// GetWithQuestions 一次性加载测验的全部题目与选项
func (d *QuizDAO) GetWithQuestions(ctx context.Context, quizID uint64) (*models.Quiz, error) {
	var quiz models.Quiz
	err := d.Db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&quiz, quizID).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}
