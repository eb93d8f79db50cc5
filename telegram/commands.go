package telegram

import (
	"fmt"
	"strings"

	"emperror.dev/errors"
	"gopkg.in/telebot.v3"

	"quizzo-bot/common"
	"quizzo-bot/quiz"
)

type command struct {
	trigger     string
	usage       string
	description string
	handler     telebot.HandlerFunc
}

// botCommands lists every registered command. /help is not part of the list:
// it is synthesized over it, so it always reflects what is actually
// registered.
func botCommands() []command {
	return []command{
		{"/create", "/create <url>", "Fetch the linked JSON questionnaire and stage it as your quiz.", cmdCreate},
		{"/start", "/start", "Launch your staged quiz in this chat.", cmdStart},
		{"/leaderboard", "/leaderboard", "Show the current standings.", cmdLeaderboard},
		{"/ping", "/ping", "Pong!", cmdPing},
		{"/about", "/about", "Show version information.", cmdAbout},
	}
}

func cmdCreate(ctx telebot.Context) error {
	if len(ctx.Args()) != 1 {
		return ctx.Reply("Usage: /create <url>", telebot.ModeDefault)
	}

	raw, err := fetcher.JSON(ctx.Args()[0])
	if err != nil {
		logger.WithError(err).Debug("questionnaire fetch failed")
		return ctx.Reply("Could not parse questionnaire.", telebot.ModeDefault)
	}

	q, err := quiz.Parse(raw, bounds)
	if err != nil {
		logger.WithError(err).Debug("questionnaire rejected")
		if errors.Is(err, quiz.ErrOutOfRange) {
			return ctx.Reply("Invalid question parameters.", telebot.ModeDefault)
		}
		return ctx.Reply("Could not parse questionnaire.", telebot.ModeDefault)
	}

	names.remember(ctx.Sender())
	registry.Stage(ctx.Sender().ID, q)

	logger.WithField("host", ctx.Sender().ID).Info("quiz staged")
	return ctx.Reply("Successfully set you as the host of this quiz! Launch it with /start.", telebot.ModeDefault)
}

func cmdStart(ctx telebot.Context) error {
	q, ok := registry.Take(ctx.Sender().ID)
	if !ok {
		return ctx.Reply("You currently don't host a quiz! Create one with /create <url>.", telebot.ModeDefault)
	}

	names.remember(ctx.Sender())
	m := &pollMessenger{
		bot:  telegramBot,
		chat: ctx.Chat(),
		host: displayName(ctx.Sender()),
	}

	_, err := scheduler.Launch(q, m)
	if err != nil {
		logger.WithError(err).Error("failed to launch session")
		return ctx.Reply("Could not start the quiz, try again later.", telebot.ModeDefault)
	}
	return nil
}

func cmdLeaderboard(ctx telebot.Context) error {
	entries := board.Snapshot(names.resolve)
	if len(entries) == 0 {
		return ctx.Reply("The leaderboards are currently empty!", telebot.ModeDefault)
	}

	var sb strings.Builder
	sb.WriteString("Leaderboard:\n")
	for i, e := range entries {
		fmt.Fprintf(&sb, "%d. %s [%d]\n", i+1, e.Name, e.Wins)
	}

	return ctx.Reply(sb.String(), telebot.ModeDefault)
}

func cmdPing(ctx telebot.Context) error {
	return ctx.Reply("Pong!", telebot.ModeDefault)
}

func cmdAbout(ctx telebot.Context) error {
	return ctx.Reply("Quizzo bot "+common.Version, telebot.ModeDefault)
}

func cmdHelp(ctx telebot.Context) error {
	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, c := range botCommands() {
		fmt.Fprintf(&sb, "%s - %s\n", c.usage, c.description)
	}
	sb.WriteString("/help - Show this message.\n")

	return ctx.Reply(sb.String(), telebot.ModeDefault)
}
