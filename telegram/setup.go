package telegram

import (
	"time"

	"gitlab.com/MikeTTh/env"
	"gopkg.in/telebot.v3"

	"quizzo-bot/common"
	"quizzo-bot/fetch"
	"quizzo-bot/quiz"
)

var (
	telegramBot *telebot.Bot
	registry    *quiz.Registry
	scheduler   *quiz.Scheduler
	votes       *quiz.Collector
	board       *quiz.Leaderboard
	fetcher     *fetch.Client
	bounds      quiz.Bounds
	names       = newNameCache()
	logger      = common.GetLogger("telegram")
)

// Config carries the engine stores into the bot. They are constructed and
// owned by main; this package only holds references.
type Config struct {
	Registry  *quiz.Registry
	Scheduler *quiz.Scheduler
	Collector *quiz.Collector
	Board     *quiz.Leaderboard
	Fetcher   *fetch.Client
	Bounds    quiz.Bounds
	Debug     bool
}

func InitTelegramBot(cfg Config) (func(), error) {
	registry = cfg.Registry
	scheduler = cfg.Scheduler
	votes = cfg.Collector
	board = cfg.Board
	fetcher = cfg.Fetcher
	bounds = cfg.Bounds

	// webhook when a public URL is configured, long polling otherwise
	var poller telebot.Poller
	if publicURL := env.String("WEBHOOK_PUBLIC_URL", ""); publicURL != "" {
		poller = &telebot.Webhook{
			Listen: env.String("WEBHOOK_BIND", ":8080"),
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: publicURL,
			},
		}
	} else {
		poller = &telebot.LongPoller{Timeout: 10 * time.Second}
	}

	var err error
	telegramBot, err = telebot.NewBot(telebot.Settings{
		Token:   env.StringOrPanic("TELEGRAM_TOKEN"),
		Poller:  poller,
		Verbose: cfg.Debug,
	})
	if err != nil {
		return nil, err
	}

	setupHandlers(telegramBot)

	runFunc := func() {
		telegramBot.Start()
	}

	return runFunc, nil
}

// ResolveName is the display-name lookup injected into leaderboard reads.
func ResolveName(userID int64) string {
	return names.resolve(userID)
}
