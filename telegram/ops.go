package telegram

import (
	"fmt"
	"strings"

	"emperror.dev/errors"
	"gopkg.in/telebot.v3"

	"quizzo-bot/quiz"
)

// pollMessenger runs one session's outbound traffic in the chat where the
// launch command was issued. Telegram polls carry their options, so the
// broadcast publishes the choice affordances as well; the poll id doubles as
// the session id.
type pollMessenger struct {
	bot  *telebot.Bot
	chat *telebot.Chat
	host string
	msg  *telebot.Message
}

func (m *pollMessenger) Broadcast(q quiz.Question) (string, error) {
	poll := &telebot.Poll{
		Type:            telebot.PollRegular,
		Question:        fmt.Sprintf("%s asks:\n%s", m.host, q.Description),
		Anonymous:       false,
		MultipleAnswers: true,
	}
	poll.AddOptions(q.Choices...)

	msg, err := m.bot.Send(m.chat, poll)
	if err != nil {
		return "", err
	}
	if msg.Poll == nil {
		return "", errors.New("telegram did not echo the poll back")
	}

	m.msg = msg
	return msg.Poll.ID, nil
}

func (m *pollMessenger) Announce(correctChoice string, winners []int64) error {
	if _, err := m.bot.StopPoll(m.msg); err != nil {
		// the results message still has to go out
		logger.WithError(err).Warn("failed to stop poll")
	}

	text := fmt.Sprintf("Time's up! The correct answer is *%s*.", correctChoice)
	if len(winners) > 0 {
		mentions := make([]string, len(winners))
		for i, id := range winners {
			mentions[i] = mention(id)
		}
		text += "\nCongratulations to " + strings.Join(mentions, " ") + "!"
	} else {
		text += "\nNobody got the correct answer..."
	}

	_, err := m.bot.Send(m.chat, text, telebot.ModeMarkdown)
	return err
}

func mention(userID int64) string {
	return fmt.Sprintf("[%s](tg://user?id=%d)", names.resolve(userID), userID)
}
