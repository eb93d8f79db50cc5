package quiz

import (
	"sort"
	"time"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
)

// Messenger is the outbound side of a session, supplied by the platform
// glue. Broadcast posts the question with its choices and returns the opaque
// session id the platform assigned to the poll; the choice affordances are
// published as part of the broadcast itself, so collection may open as soon
// as it returns. Announce delivers the result message once the session is
// resolved.
type Messenger interface {
	Broadcast(q Question) (string, error)
	Announce(correctChoice string, winners []int64) error
}

// Scheduler runs quiz sessions. Each launched session gets its own countdown
// goroutine; all of them share one Collector and one Leaderboard, which keep
// per-session state strictly separated.
type Scheduler struct {
	votes *Collector
	board *Leaderboard
	log   logrus.FieldLogger
}

func NewScheduler(votes *Collector, board *Leaderboard, log logrus.FieldLogger) *Scheduler {
	return &Scheduler{
		votes: votes,
		board: board,
		log:   log,
	}
}

// Launch broadcasts the question, opens vote collection and starts the
// countdown. It returns the session id as soon as the session is live; the
// resolution happens in the background exactly q.Limit later.
func (s *Scheduler) Launch(q Question, m Messenger) (string, error) {
	sessionID, err := m.Broadcast(q)
	if err != nil {
		return "", errors.WithMessage(err, "broadcasting question failed")
	}

	s.votes.Begin(sessionID)
	s.log.WithFields(logrus.Fields{
		"session": sessionID,
		"choices": len(q.Choices),
		"limit":   q.Limit,
	}).Info("session opened")

	go s.countdown(sessionID, q, m)
	return sessionID, nil
}

func (s *Scheduler) countdown(sessionID string, q Question, m Messenger) {
	t := time.NewTimer(q.Limit)
	defer t.Stop()
	<-t.C
	s.resolve(sessionID, q, m)
}

// resolve drains the session and scores it. A voter wins when the first
// choice they recorded is the correct one; whatever they piled on afterwards
// does not count.
func (s *Scheduler) resolve(sessionID string, q Question, m Messenger) {
	ballots := s.votes.End(sessionID)

	winners := make([]int64, 0, len(ballots))
	for voterID, choices := range ballots {
		if len(choices) > 0 && choices[0] == q.Answer {
			winners = append(winners, voterID)
		}
	}
	sort.Slice(winners, func(i, j int) bool { return winners[i] < winners[j] })

	for _, w := range winners {
		s.board.Increment(w)
	}

	if err := m.Announce(q.Choices[q.Answer], winners); err != nil {
		s.log.WithError(err).WithField("session", sessionID).Error("failed announcing results")
	}

	s.log.WithFields(logrus.Fields{
		"session": sessionID,
		"voters":  len(ballots),
		"winners": len(winners),
	}).Info("session resolved")
}
