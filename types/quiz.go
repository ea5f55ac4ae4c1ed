package types

import "time"

// SubmitQuizResponse 提交测验的判分结果
type SubmitQuizResponse struct {
	Score          float64 `json:"score"`
	CorrectCount   int     `json:"correct_count"`
	TotalQuestions int     `json:"total_questions"`
}

type QuizScoreResponse struct {
	QuizID         uint64    `json:"quiz_id"`
	Score          float64   `json:"score"`
	CorrectCount   int       `json:"correct_count"`
	TotalQuestions int       `json:"total_questions"`
	TakenAt        time.Time `json:"taken_at"`
}
