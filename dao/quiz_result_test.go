package dao

import (
	"context"
	"testing"
	"time"

	"Learnhub/internal/testutil"
	"Learnhub/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestQuizResultDAO_Upsert(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	d := NewQuizResultDAO(db)

	user := testutil.CreateUser(t, db, "amir", "amir@example.com")
	quiz := testutil.CreateQuiz(t, db, "go basics", [][]bool{{true, false}, {false, true}})

	first := &models.QuizResult{
		UserID:         user.ID,
		QuizID:         quiz.ID,
		Score:          decimal.RequireFromString("50.00"),
		CorrectCount:   1,
		TotalQuestions: 2,
		Answers:        datatypes.JSON(`{"1":1}`),
		TakenAt:        time.Now(),
	}
	require.NoError(t, d.Upsert(ctx, first))

	second := &models.QuizResult{
		UserID:         user.ID,
		QuizID:         quiz.ID,
		Score:          decimal.RequireFromString("100.00"),
		CorrectCount:   2,
		TotalQuestions: 2,
		Answers:        datatypes.JSON(`{"1":1,"2":4}`),
		TakenAt:        time.Now(),
	}
	require.NoError(t, d.Upsert(ctx, second))

	var rows int64
	require.NoError(t, db.Model(&models.QuizResult{}).
		Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).
		Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	got, err := d.GetByUserQuiz(ctx, user.ID, quiz.ID)
	require.NoError(t, err)
	assert.True(t, got.Score.Equal(decimal.NewFromInt(100)), "score %s", got.Score)
	assert.Equal(t, 2, got.CorrectCount)
	assert.JSONEq(t, `{"1":1,"2":4}`, string(got.Answers))
}

func TestQuizResultDAO_NotTaken(t *testing.T) {
	d := NewQuizResultDAO(testutil.NewDB(t))

	_, err := d.GetByUserQuiz(context.Background(), 1, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestQuizDAO_GetWithQuestions(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	d := NewQuizDAO(db)

	quiz := testutil.CreateQuiz(t, db, "sql", [][]bool{{true, false, false}, {false, true}})

	got, err := d.GetWithQuestions(ctx, quiz.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)
	assert.Len(t, got.Questions[0].Choices, 3)
	assert.Len(t, got.Questions[1].Choices, 2)
	assert.True(t, got.Questions[0].Choices[0].IsCorrect)

	_, err = d.GetWithQuestions(ctx, quiz.ID+100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
