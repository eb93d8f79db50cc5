package main

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gitlab.com/MikeTTh/env"

	"quizzo-bot/api"
	"quizzo-bot/common"
	"quizzo-bot/fetch"
	"quizzo-bot/quiz"
	"quizzo-bot/telegram"
)

func questionBounds(log logrus.FieldLogger) quiz.Bounds {
	b := quiz.DefaultBounds
	if v := env.String("QUIZ_MAX_CHOICES", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.WithError(err).Fatal("invalid QUIZ_MAX_CHOICES")
		}
		b.MaxChoices = n
	}
	if v := env.String("QUIZ_MIN_LIMIT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.WithError(err).Fatal("invalid QUIZ_MIN_LIMIT")
		}
		b.MinLimit = d
	}
	if v := env.String("QUIZ_MAX_LIMIT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.WithError(err).Fatal("invalid QUIZ_MAX_LIMIT")
		}
		b.MaxLimit = d
	}
	return b
}

func main() {
	debug := env.String("DEBUG", "") != ""
	common.SetDebug(debug)
	log := common.GetLogger("main")

	log.Info("Starting Quizzo bot...")

	bounds := questionBounds(log)
	registry := quiz.NewRegistry()
	votes := quiz.NewCollector()
	board := quiz.NewLeaderboard()
	scheduler := quiz.NewScheduler(votes, board, common.GetLogger("session"))

	botRun, err := telegram.InitTelegramBot(telegram.Config{
		Registry:  registry,
		Scheduler: scheduler,
		Collector: votes,
		Board:     board,
		Fetcher:   fetch.NewClient(),
		Bounds:    bounds,
		Debug:     debug,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to initialize the Telegram bot")
	}

	if token := env.String("API_TOKEN", ""); token != "" {
		apiRun, err := api.InitApi(api.Config{
			Registry:    registry,
			Board:       board,
			ResolveName: telegram.ResolveName,
			Bounds:      bounds,
			Token:       token,
			Debug:       debug,
		})
		if err != nil {
			log.WithError(err).Fatal("failed to initialize the API")
		}
		go apiRun()
	} else {
		log.Warn("API_TOKEN not set, the HTTP API stays disabled")
	}

	log.Info("Everything is ready! Listening for commands!")
	botRun()
}
