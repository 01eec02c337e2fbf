// Package assessment drives one quiz attempt: question sequencing,
// per-type answer evaluation, the countdown, scoring, and pass/fail.
package assessment

import (
	"errors"
	"math"
	"strings"

	"github.com/trevsky25/easypayuniversity-sub001/internal/model"
)

// Phase is the session lifecycle state. Finished is terminal; a retake
// is a fresh session, never a transition out of Finished.
type Phase int

// Session phases.
const (
	NotStarted Phase = iota
	Running
	Finished
)

// Sentinel errors for invalid submissions.
var (
	ErrNotRunning      = errors.New("assessment: session is not running")
	ErrIndexOutOfRange = errors.New("assessment: question index out of range")
)

// Free-text answers pass on trimmed length alone. This mirrors the
// product's placeholder grading; it is not semantic.
const freeTextMinLength = 10

// Result is the outcome of a finished session.
type Result struct {
	Score          int
	Passed         bool
	CorrectCount   int
	ElapsedSeconds int
}

// Session is one quiz attempt. It is ephemeral and owned by the UI
// flow; abandoning it touches nothing outside the session.
type Session struct {
	questions []model.Question
	answers   []*model.Answer
	cfg       model.QuizConfig

	current   int
	remaining int
	phase     Phase
	result    Result
}

// New builds a session in NotStarted over a fixed question sequence.
func New(questions []model.Question, cfg model.QuizConfig) *Session {
	return &Session{
		questions: questions,
		answers:   make([]*model.Answer, len(questions)),
		cfg:       cfg,
		remaining: cfg.TimeLimitMinutes * 60,
	}
}

// Start begins the attempt and the countdown. It does nothing unless
// the session is NotStarted.
func (s *Session) Start() {
	if s.phase != NotStarted {
		return
	}
	s.phase = Running
}

// SubmitAnswer records a response for the question at index. For
// multi-select questions ans.Option is a toggle: submitting an option
// already in the selection removes it. Other types replace the stored
// answer outright.
func (s *Session) SubmitAnswer(index int, ans model.Answer) error {
	if s.phase != Running {
		return ErrNotRunning
	}
	if index < 0 || index >= len(s.questions) {
		return ErrIndexOutOfRange
	}
	switch s.questions[index].Type {
	case model.MultiSelect:
		current := s.answers[index]
		if current == nil {
			current = &model.Answer{}
			s.answers[index] = current
		}
		current.Options = toggle(current.Options, ans.Option)
	case model.FreeText:
		s.answers[index] = &model.Answer{Text: ans.Text}
	default:
		s.answers[index] = &model.Answer{Option: ans.Option}
	}
	return nil
}

func toggle(options []int, option int) []int {
	for i, o := range options {
		if o == option {
			return append(options[:i], options[i+1:]...)
		}
	}
	return append(options, option)
}

// Answer returns the stored response for a question, if any.
func (s *Session) Answer(index int) (model.Answer, bool) {
	if index < 0 || index >= len(s.answers) || s.answers[index] == nil {
		return model.Answer{}, false
	}
	return *s.answers[index], true
}

// IsCorrect grades one question. Unanswered questions are incorrect.
func (s *Session) IsCorrect(index int) bool {
	if index < 0 || index >= len(s.questions) {
		return false
	}
	ans := s.answers[index]
	if ans == nil {
		return false
	}
	q := s.questions[index]
	switch q.Type {
	case model.MultiSelect:
		return sameSet(ans.Options, q.CorrectOptions)
	case model.FreeText:
		return len(strings.TrimSpace(ans.Text)) > freeTextMinLength
	default:
		return ans.Option == q.CorrectOption
	}
}

func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[int]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		if !set[v] {
			return false
		}
	}
	return true
}

// Score returns the percentage of correct answers, rounded. Unanswered
// questions count against the score.
func (s *Session) Score() int {
	return scoreOf(s.correctCount(), len(s.questions))
}

func (s *Session) correctCount() int {
	correct := 0
	for i := range s.questions {
		if s.IsCorrect(i) {
			correct++
		}
	}
	return correct
}

func scoreOf(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// Finish scores the attempt and transitions to Finished. It is
// idempotent: once finished, repeat calls return the cached result
// without re-scoring.
func (s *Session) Finish() Result {
	if s.phase == Finished {
		return s.result
	}
	correct := s.correctCount()
	score := scoreOf(correct, len(s.questions))
	s.result = Result{
		Score:          score,
		Passed:         score >= s.cfg.PassingScore,
		CorrectCount:   correct,
		ElapsedSeconds: s.cfg.TimeLimitMinutes*60 - s.remaining,
	}
	s.phase = Finished
	return s.result
}

// Tick consumes one second of the countdown and reports whether the
// session is still running. Reaching zero forces Finish exactly once;
// ticks after any finish are no-ops, so a late tick cannot
// double-finish.
func (s *Session) Tick() bool {
	if s.phase != Running {
		return false
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.Finish()
	}
	return s.phase == Running
}

// Next advances to the following question. On the last question it is
// a finish, not an out-of-bounds move.
func (s *Session) Next() {
	if s.phase != Running {
		return
	}
	if s.current >= len(s.questions)-1 {
		s.Finish()
		return
	}
	s.current++
}

// Previous moves back one question, clamped at the first.
func (s *Session) Previous() {
	if s.phase != Running {
		return
	}
	if s.current > 0 {
		s.current--
	}
}

// Retake returns a fresh NotStarted session over the same questions.
// The old session and anything already posted to the ledger are left
// untouched.
func (s *Session) Retake() *Session {
	return New(s.questions, s.cfg)
}

// Current returns the index of the question in view.
func (s *Session) Current() int {
	return s.current
}

// Remaining returns the countdown's remaining seconds.
func (s *Session) Remaining() int {
	return s.remaining
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.questions)
}

// Question returns the question at index.
func (s *Session) Question(index int) model.Question {
	return s.questions[index]
}

// Result returns the outcome of a finished session. It is the zero
// Result while the session is unfinished.
func (s *Session) Result() Result {
	return s.result
}
