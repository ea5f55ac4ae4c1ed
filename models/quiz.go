package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID        uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CourseID  uint64     `gorm:"column:course_id;not null;index" json:"course_id"`
	Title     string     `gorm:"column:title;size:255;not null" json:"title"`
	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

type Question struct {
	ID      uint64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuizID  uint64   `gorm:"column:quiz_id;not null;index" json:"quiz_id"`
	Text    string   `gorm:"column:text;type:text;not null" json:"text"`
	Choices []Choice `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"choices,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// Choice 选项, 不强制每题恰好一个正确选项
type Choice struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuestionID uint64 `gorm:"column:question_id;not null;index" json:"question_id"`
	Text       string `gorm:"column:text;size:500;not null" json:"text"`
	IsCorrect  bool   `gorm:"column:is_correct;not null;default:false" json:"-"`
}

func (Choice) TableName() string {
	return "choices"
}

// QuizResult 每个用户每个测验一条, 重复提交覆盖
type QuizResult struct {
	ID             uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID         uint64          `gorm:"column:user_id;not null;uniqueIndex:uk_quiz_result_user_quiz,priority:1" json:"user_id"`
	QuizID         uint64          `gorm:"column:quiz_id;not null;uniqueIndex:uk_quiz_result_user_quiz,priority:2;index" json:"quiz_id"`
	Score          decimal.Decimal `gorm:"column:score;type:decimal(5,2);not null" json:"score"`
	CorrectCount   int             `gorm:"column:correct_count;not null;default:0" json:"correct_count"`
	TotalQuestions int             `gorm:"column:total_questions;not null;default:0" json:"total_questions"`
	Answers        datatypes.JSON  `gorm:"column:answers" json:"answers,omitempty"` // 最近一次提交的答案快照
	TakenAt        time.Time       `gorm:"column:taken_at;not null" json:"taken_at"`

	User *Users `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Quiz *Quiz  `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
