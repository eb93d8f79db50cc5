package api

import (
	"encoding/json"

	"quizzo-bot/quiz"
)

// QuizRequest stages a question for a host over HTTP. The question document
// uses the same schema as the fetched questionnaires.
type QuizRequest struct {
	HostID   int64           `json:"host_id" binding:"required"`
	Question json.RawMessage `json:"question" binding:"required"`
}

type QuizResponse struct {
	Staged bool  `json:"staged"`
	HostID int64 `json:"host_id"`
}

type LeaderboardResponse struct {
	Entries []quiz.Entry `json:"entries"`
}
