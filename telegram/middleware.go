package telegram

import (
	"gopkg.in/telebot.v3"
)

// humanSenderOnlyMiddleware drops updates from bot accounts before any
// command handler runs.
func humanSenderOnlyMiddleware(next telebot.HandlerFunc) telebot.HandlerFunc {
	return func(ctx telebot.Context) error {
		if ctx.Sender() == nil || ctx.Sender().IsBot {
			return nil
		}
		return next(ctx)
	}
}
