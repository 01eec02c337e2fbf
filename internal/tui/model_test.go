package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trevsky25/easypayuniversity-sub001/internal/assessment"
	"github.com/trevsky25/easypayuniversity-sub001/internal/course"
	"github.com/trevsky25/easypayuniversity-sub001/internal/ledger"
	"github.com/trevsky25/easypayuniversity-sub001/internal/model"
	"github.com/trevsky25/easypayuniversity-sub001/internal/store"
)

func testUnit() course.Unit {
	return course.Unit{
		ID:    1,
		Title: "Test Unit",
		Quiz:  model.QuizConfig{TimeLimitMinutes: 1, PassingScore: 80},
		Questions: []model.Question{
			{ID: 1, Type: model.SingleChoice, Prompt: "Pick b.", Options: []string{"a", "b"}, CorrectOption: 1},
		},
	}
}

func newTestModel(t *testing.T) (*Model, *ledger.Ledger) {
	t.Helper()
	st, err := store.OpenMemory(nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	now := time.Date(2024, 9, 3, 9, 0, 0, 0, time.UTC)
	led := ledger.New(st, ledger.WithClock(func() time.Time { return now }))
	m := NewModel(testUnit(), led)
	if cmd := m.Init(); cmd == nil {
		t.Fatalf("Init should schedule the first tick")
	}
	return m, led
}

func TestTickStopsAfterTimeUp(t *testing.T) {
	m, _ := newTestModel(t)
	var cmd tea.Cmd
	for i := 0; i < 60; i++ {
		_, cmd = m.Update(tickMsg(time.Now()))
	}
	if cmd != nil {
		t.Fatalf("reaching zero must stop scheduling ticks")
	}
	if m.session.Phase() != assessment.Finished {
		t.Fatalf("expected Finished on time-up, got %v", m.session.Phase())
	}
	// A stray late tick is a no-op.
	_, cmd = m.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Fatalf("late tick rescheduled")
	}
}

func TestPassCreditsLedgerOnce(t *testing.T) {
	m, led := newTestModel(t)
	before := led.State().Balance

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // select b, last question: finishes

	if m.session.Phase() != assessment.Finished {
		t.Fatalf("expected Finished after answering last question")
	}
	delta := led.State().Balance - before
	if delta <= 0 {
		t.Fatalf("pass did not credit the ledger")
	}

	// Late ticks after the finish must not credit again.
	m.Update(tickMsg(time.Now()))
	m.Update(tickMsg(time.Now()))
	if got := led.State().Balance - before; got != delta {
		t.Fatalf("ledger credited twice: first delta %d, now %d", delta, got)
	}
}

func TestRetakeDoesNotRevokeCredits(t *testing.T) {
	m, led := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	earned := led.State().Balance

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.session.Phase() != assessment.Running {
		t.Fatalf("retake should start a running session")
	}
	if got := led.State().Balance; got != earned {
		t.Fatalf("retake changed the balance from %d to %d", earned, got)
	}
}

func TestResultViewShowsScore(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	out := m.View()
	if !strings.Contains(out, "100%") {
		t.Fatalf("result view missing score: %s", out)
	}
	if !strings.Contains(out, "Passed") {
		t.Fatalf("result view missing verdict: %s", out)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Fatalf("wrapText: got %q, want %q", got, want)
	}
	if wrapText("unbrokenword", 4) != "unbrokenword" {
		t.Fatalf("overlong words must not be split")
	}
	if wrapText("a b", 0) != "a b" {
		t.Fatalf("non-positive width must be a no-op")
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:   "0:00",
		9:   "0:09",
		60:  "1:00",
		605: "10:05",
		-3:  "0:00",
	}
	for in, want := range cases {
		if got := formatClock(in); got != want {
			t.Fatalf("formatClock(%d) = %q, want %q", in, got, want)
		}
	}
}
