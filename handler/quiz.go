package handler

import (
	"Learnhub/config"
	"Learnhub/middleware"
	"Learnhub/pkg/context"
	"Learnhub/pkg/response"
	"Learnhub/service"
	"Learnhub/types"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// 提交答案的请求体上限
const maxQuizBody = 1 << 20

type QuizHandler struct {
	Config      *config.Config
	QuizService service.IQuizService
}

func (h *QuizHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.GetExpire())
	quizzes := r.Group("/v1/quizzes", authorize)
	quizzes.POST("/:quiz_id/submit", context.Wrap(h.Submit))  // 提交测验
	quizzes.GET("/:quiz_id/my-score", context.Wrap(h.MyScore)) // 我的成绩
}

func (h *QuizHandler) Submit(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	quizID, err := paramID(c, "quiz_id")
	if err != nil {
		return err
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxQuizBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return response.NewError(http.StatusRequestEntityTooLarge, "请求体过大")
		}
		return response.NewError(http.StatusBadRequest, "读取请求失败")
	}

	result, err := h.QuizService.SubmitBody(c.Request.Context(), userID, quizID, body)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, &types.SubmitQuizResponse{
		Score:          result.Score.InexactFloat64(),
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
	})
	return nil
}

func (h *QuizHandler) MyScore(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	quizID, err := paramID(c, "quiz_id")
	if err != nil {
		return err
	}

	result, err := h.QuizService.Result(c.Request.Context(), userID, quizID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, &types.QuizScoreResponse{
		QuizID:         result.QuizID,
		Score:          result.Score.InexactFloat64(),
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		TakenAt:        result.TakenAt,
	})
	return nil
}
