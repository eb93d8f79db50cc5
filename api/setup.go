package api

import (
	"github.com/gin-gonic/gin"
	"gitlab.com/MikeTTh/env"

	"quizzo-bot/common"
	"quizzo-bot/quiz"
	"quizzo-bot/utils"
)

var (
	registry          *quiz.Registry
	board             *quiz.Leaderboard
	resolveName       func(int64) string
	bounds            quiz.Bounds
	expectedTokenHash []byte
	logger            = common.GetLogger("api")
)

type Config struct {
	Registry    *quiz.Registry
	Board       *quiz.Leaderboard
	ResolveName func(int64) string
	Bounds      quiz.Bounds
	Token       string
	Debug       bool
}

func InitApi(cfg Config) (func(), error) {
	registry = cfg.Registry
	board = cfg.Board
	resolveName = cfg.ResolveName
	bounds = cfg.Bounds
	expectedTokenHash = utils.TokenHash(cfg.Token)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter()

	runFunc := func() {
		err := router.Run(env.String("API_BIND", ":8081"))
		if err != nil {
			panic(err)
		}
	}

	return runFunc, nil
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(requestIDMiddleware)
	router.GET("/healthz", handleHealth)

	// this is RPC style instead of REST style
	authorized := router.Group("", requireValidTokenMiddleware)
	authorized.POST("/quiz", handleNewQuiz)
	authorized.GET("/leaderboard", handleLeaderboard)

	return router
}
