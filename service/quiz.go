package service

import (
	"Learnhub/dao"
	"Learnhub/dao/cache"
	"Learnhub/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IQuizService = (*QuizService)(nil)

// SubmitResult 一次提交的判分结果
type SubmitResult struct {
	Score          decimal.Decimal
	CorrectCount   int
	TotalQuestions int
}

type IQuizService interface {
	// Submit 判分并覆盖写入用户在该测验上的成绩
	Submit(ctx context.Context, userID, quizID uint64, answers map[uint64]uint64) (*SubmitResult, error)
	// SubmitBody 测验不存在时先返回 ErrNotFound, 存在才解析请求体中的答案
	SubmitBody(ctx context.Context, userID, quizID uint64, body []byte) (*SubmitResult, error)
	// Result 用户最近一次的成绩
	Result(ctx context.Context, userID, quizID uint64) (*models.QuizResult, error)
}

type QuizService struct {
	QuizDAO       *dao.QuizDAO
	QuizResultDAO *dao.QuizResultDAO
	QuizStorage   *cache.QuizStorage
}

// ParseAnswers 解析请求体 {"answers": {"<question_id>": <choice_id>}}
//
// answers 不是对象时返回 ErrInvalidInput; 无法识别的题号忽略,
// 无法识别的选项记为 0, 判分时按答错处理。
func ParseAnswers(body []byte) (map[uint64]uint64, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("answers: malformed json: %w", ErrInvalidInput)
	}

	raw := gjson.GetBytes(body, "answers")
	if !raw.IsObject() {
		return nil, fmt.Errorf("answers must be an object: %w", ErrInvalidInput)
	}

	answers := make(map[uint64]uint64)
	raw.ForEach(func(key, value gjson.Result) bool {
		questionID, err := strconv.ParseUint(key.String(), 10, 64)
		if err != nil {
			return true
		}

		var choiceID uint64
		switch value.Type {
		case gjson.Number:
			choiceID, _ = strconv.ParseUint(value.Raw, 10, 64)
		case gjson.String:
			choiceID, _ = strconv.ParseUint(value.Str, 10, 64)
		}
		answers[questionID] = choiceID
		return true
	})
	return answers, nil
}

func (s *QuizService) Submit(ctx context.Context, userID, quizID uint64, answers map[uint64]uint64) (*SubmitResult, error) {
	if answers == nil {
		return nil, fmt.Errorf("answers is nil: %w", ErrInvalidInput)
	}

	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return s.submit(ctx, userID, quiz, answers)
}

func (s *QuizService) SubmitBody(ctx context.Context, userID, quizID uint64, body []byte) (*SubmitResult, error) {
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	answers, err := ParseAnswers(body)
	if err != nil {
		return nil, err
	}
	return s.submit(ctx, userID, quiz, answers)
}

func (s *QuizService) submit(ctx context.Context, userID uint64, quiz *models.Quiz, answers map[uint64]uint64) (*SubmitResult, error) {
	result := Grade(quiz, answers)

	snapshot, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	err = s.QuizResultDAO.Upsert(ctx, &models.QuizResult{
		UserID:         userID,
		QuizID:         quiz.ID,
		Score:          result.Score,
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		Answers:        datatypes.JSON(snapshot),
		TakenAt:        time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("save quiz result: %w", err)
	}

	return result, nil
}

// Grade 选项必须属于该题且为正确选项才计分, 其余情况一律按答错处理
func Grade(quiz *models.Quiz, answers map[uint64]uint64) *SubmitResult {
	result := &SubmitResult{
		Score:          decimal.Zero,
		TotalQuestions: len(quiz.Questions),
	}

	for _, question := range quiz.Questions {
		choiceID, ok := answers[question.ID]
		if !ok {
			continue
		}
		for _, choice := range question.Choices {
			if choice.ID == choiceID {
				if choice.IsCorrect {
					result.CorrectCount++
				}
				break
			}
		}
	}

	if result.TotalQuestions > 0 {
		result.Score = decimal.NewFromInt(int64(result.CorrectCount * 100)).
			Div(decimal.NewFromInt(int64(result.TotalQuestions))).
			Round(2)
	}
	return result
}

func (s *QuizService) Result(ctx context.Context, userID, quizID uint64) (*models.QuizResult, error) {
	result, err := s.QuizResultDAO.GetByUserQuiz(ctx, userID, quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("quiz %d result: %w", quizID, ErrNotFound)
	}
	return result, err
}

// loadQuiz 先查本地缓存, 未命中再整套加载
func (s *QuizService) loadQuiz(ctx context.Context, quizID uint64) (*models.Quiz, error) {
	if quiz := s.QuizStorage.Get(quizID); quiz != nil {
		return quiz, nil
	}

	quiz, err := s.QuizDAO.GetWithQuestions(ctx, quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("quiz %d: %w", quizID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	s.QuizStorage.Set(quiz)
	return quiz, nil
}
