package quiz

import (
	"encoding/json"
	"time"

	"emperror.dev/errors"
)

// Bounds holds the configurable limits a question has to satisfy.
type Bounds struct {
	MaxChoices int
	MinLimit   time.Duration
	MaxLimit   time.Duration
}

// DefaultBounds matches the limits the hosted quizzes have always used.
var DefaultBounds = Bounds{
	MaxChoices: 10,
	MinLimit:   5 * time.Second,
	MaxLimit:   10 * time.Minute,
}

// Question is a single validated quiz unit. A Question obtained from Parse
// always satisfies every bound simultaneously; nothing else constructs them.
type Question struct {
	Description string
	Choices     []string
	Answer      int
	Limit       time.Duration
}

// rawQuestion accepts both field spellings found in the wild: the older
// documents use description/limit (milliseconds), the slash-command era ones
// use question/timeout (seconds).
type rawQuestion struct {
	Description *string  `json:"description"`
	Question    *string  `json:"question"`
	Choices     []string `json:"choices"`
	Answer      *int     `json:"answer"`
	Limit       *int64   `json:"limit"`
	Timeout     *int64   `json:"timeout"`
}

// Parse decodes raw JSON into a Question and checks it against b.
// Structural problems yield ErrMalformed, bound violations ErrOutOfRange.
// It never panics on hostile input.
func Parse(raw []byte, b Bounds) (Question, error) {
	var rq rawQuestion
	if err := json.Unmarshal(raw, &rq); err != nil {
		return Question{}, errors.WithMessage(ErrMalformed, err.Error())
	}

	var q Question

	switch {
	case rq.Description != nil:
		q.Description = *rq.Description
	case rq.Question != nil:
		q.Description = *rq.Question
	default:
		return Question{}, errors.WithMessage(ErrMalformed, "missing question text")
	}
	if q.Description == "" {
		return Question{}, errors.WithMessage(ErrMalformed, "empty question text")
	}

	if rq.Choices == nil {
		return Question{}, errors.WithMessage(ErrMalformed, "missing choices")
	}
	for _, c := range rq.Choices {
		if c == "" {
			return Question{}, errors.WithMessage(ErrMalformed, "empty choice")
		}
	}
	q.Choices = rq.Choices

	if rq.Answer == nil {
		return Question{}, errors.WithMessage(ErrMalformed, "missing answer")
	}
	q.Answer = *rq.Answer

	switch {
	case rq.Limit != nil:
		q.Limit = time.Duration(*rq.Limit) * time.Millisecond
	case rq.Timeout != nil:
		q.Limit = time.Duration(*rq.Timeout) * time.Second
	default:
		return Question{}, errors.WithMessage(ErrMalformed, "missing time limit")
	}

	if err := Validate(q, b); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks an assembled Question against b. The checks run in a fixed
// order and stop at the first violation: choice count, answer index, time
// limit.
func Validate(q Question, b Bounds) error {
	if len(q.Choices) < 2 || len(q.Choices) > b.MaxChoices {
		return errors.WithMessagef(ErrOutOfRange, "need 2..%d choices, got %d", b.MaxChoices, len(q.Choices))
	}
	if q.Answer < 0 || q.Answer >= len(q.Choices) {
		return errors.WithMessagef(ErrOutOfRange, "answer index %d outside choices", q.Answer)
	}
	if q.Limit < b.MinLimit || q.Limit > b.MaxLimit {
		return errors.WithMessagef(ErrOutOfRange, "time limit %s outside %s..%s", q.Limit, b.MinLimit, b.MaxLimit)
	}
	return nil
}
