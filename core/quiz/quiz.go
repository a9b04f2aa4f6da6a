// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package quiz runs a timed multiple-choice quiz over a fixed question bank.
// Time is advanced explicitly through Tick so the session stays independent
// of any clock; the TUI sends one tick per second.
package quiz

import "errors"

// DefaultSecondsPerQuestion is the countdown each question starts with.
const DefaultSecondsPerQuestion = 30

const unanswered = -1

var ErrEmptyBank = errors.New("quiz: question bank is empty")

type Question struct {
	ID          string
	Prompt      string
	Options     []string
	Correct     int
	Explanation string
}

// Grade buckets a score percentage.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradeNeedsWork Grade = "needs-work"
)

type Session struct {
	questions []Question
	limit     int

	current   int
	selected  int
	revealed  bool
	completed bool
	score     int
	timeLeft  int
	answers   []int
}

// NewSession starts a quiz. A non-positive limit falls back to
// DefaultSecondsPerQuestion.
func NewSession(questions []Question, secondsPerQuestion int) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}
	if secondsPerQuestion <= 0 {
		secondsPerQuestion = DefaultSecondsPerQuestion
	}
	s := &Session{
		questions: append([]Question(nil), questions...),
		limit:     secondsPerQuestion,
	}
	s.Reset()
	return s, nil
}

func (s *Session) Question() Question { return s.questions[s.current] }
func (s *Session) Index() int         { return s.current }
func (s *Session) Len() int           { return len(s.questions) }
func (s *Session) Score() int         { return s.score }
func (s *Session) TimeLeft() int      { return s.timeLeft }
func (s *Session) Revealed() bool     { return s.revealed }
func (s *Session) Completed() bool    { return s.completed }

// Selected returns the chosen option, or false when nothing is selected.
func (s *Session) Selected() (int, bool) {
	return s.selected, s.selected != unanswered
}

// Answers returns the recorded answer per submitted question, -1 for
// questions that timed out unanswered.
func (s *Session) Answers() []int {
	return append([]int(nil), s.answers...)
}

// Correct reports whether the answer recorded for question i was right.
func (s *Session) Correct(i int) bool {
	return i >= 0 && i < len(s.answers) && s.answers[i] == s.questions[i].Correct
}

// Select picks an option of the open question. Out of range choices and
// choices after the result was revealed are ignored.
func (s *Session) Select(option int) {
	if s.revealed || s.completed {
		return
	}
	if option < 0 || option >= len(s.Question().Options) {
		return
	}
	s.selected = option
}

// Submit reveals the result of the open question. With nothing selected it
// only goes through once the countdown has expired.
func (s *Session) Submit() bool {
	if s.revealed || s.completed {
		return false
	}
	if s.selected == unanswered && s.timeLeft > 0 {
		return false
	}

	s.revealed = true
	if s.selected == s.Question().Correct {
		s.score++
	}
	s.answers = append(s.answers, s.selected)
	return true
}

// Tick advances the countdown by one second. When it reaches zero the open
// question is submitted as is.
func (s *Session) Tick() {
	if s.revealed || s.completed || s.timeLeft <= 0 {
		return
	}
	s.timeLeft--
	if s.timeLeft == 0 {
		s.Submit()
	}
}

// Running reports whether the countdown is still active.
func (s *Session) Running() bool {
	return !s.revealed && !s.completed && s.timeLeft > 0
}

// Next moves on after a reveal, completing the quiz after the last question.
func (s *Session) Next() {
	if !s.revealed || s.completed {
		return
	}
	if s.current < len(s.questions)-1 {
		s.current++
		s.selected = unanswered
		s.revealed = false
		s.timeLeft = s.limit
		return
	}
	s.completed = true
}

func (s *Session) Reset() {
	s.current = 0
	s.selected = unanswered
	s.revealed = false
	s.completed = false
	s.score = 0
	s.timeLeft = s.limit
	s.answers = nil
}

// Percent is the score as a percentage of the bank size.
func (s *Session) Percent() float64 {
	return float64(s.score) / float64(len(s.questions)) * 100
}

func (s *Session) Grade() Grade {
	switch p := s.Percent(); {
	case p >= 80:
		return GradeExcellent
	case p >= 60:
		return GradeGood
	default:
		return GradeNeedsWork
	}
}
