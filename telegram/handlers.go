package telegram

import (
	"gopkg.in/telebot.v3"
)

// handlePollAnswer feeds Telegram poll updates into the vote collector.
// An answer with options records each of them; an answer without options is
// a retracted vote. Events for polls that are not live sessions fall through
// as no-ops inside the collector.
func handlePollAnswer(ctx telebot.Context) error {
	pa := ctx.PollAnswer()
	if pa == nil || pa.Sender == nil {
		return nil
	}
	if pa.Sender.IsBot {
		// the collector assumes human voters only
		return nil
	}

	names.remember(pa.Sender)

	if len(pa.Options) == 0 {
		votes.DropVoter(pa.PollID, pa.Sender.ID)
		logger.WithField("session", pa.PollID).Debug("vote retracted")
		return nil
	}

	for _, choice := range pa.Options {
		votes.Record(pa.PollID, pa.Sender.ID, choice)
	}
	return nil
}

func setupHandlers(bot *telebot.Bot) {
	human := bot.Group()
	human.Use(humanSenderOnlyMiddleware)
	for _, c := range botCommands() {
		human.Handle(c.trigger, c.handler)
	}
	human.Handle("/help", cmdHelp)

	bot.Handle(telebot.OnPollAnswer, handlePollAnswer)
}
