package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"quizzo-bot/common"
	"quizzo-bot/quiz"
)

func handleNewQuiz(ctx *gin.Context) {
	var req QuizRequest
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		handleUserError(ctx, err)
		return
	}

	q, err := quiz.Parse(req.Question, bounds)
	if err != nil {
		handleUserError(ctx, err)
		return
	}

	registry.Stage(req.HostID, q)

	logger.WithFields(logrus.Fields{
		"request_id": ctx.GetString("request_id"),
		"host":       req.HostID,
	}).Info("quiz staged via API")

	ctx.JSON(http.StatusOK, QuizResponse{Staged: true, HostID: req.HostID})
}

func handleLeaderboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, LeaderboardResponse{
		Entries: board.Snapshot(resolveName),
	})
}

func handleHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "version": common.Version})
}
