// Package tui provides the Bubble Tea quiz interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trevsky25/easypayuniversity-sub001/internal/assessment"
	"github.com/trevsky25/easypayuniversity-sub001/internal/course"
	"github.com/trevsky25/easypayuniversity-sub001/internal/ledger"
	"github.com/trevsky25/easypayuniversity-sub001/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	scenarioStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Italic(true)
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6FBF73")).Bold(true)
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	timerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	urgentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model implements the Bubble Tea quiz UI. It owns one ephemeral
// assessment session and posts rewards to the ledger exactly once when
// the session finishes with a pass.
type Model struct {
	unit    course.Unit
	ledger  *ledger.Ledger
	session *assessment.Session

	cursor   int
	input    textinput.Model
	credited bool

	width  int
	height int
}

// NewModel constructs a quiz TUI model for one unit.
func NewModel(unit course.Unit, led *ledger.Ledger) *Model {
	input := textinput.New()
	input.Placeholder = "Type your answer"
	input.CharLimit = 280
	m := &Model{
		unit:    unit,
		ledger:  led,
		session: assessment.New(unit.Questions, unit.Quiz),
		input:   input,
	}
	m.syncQuestion()
	return m
}

// Init implements tea.Model. Starting the session begins the countdown;
// the one-second ticks stop being scheduled as soon as the session
// leaves Running.
func (m *Model) Init() tea.Cmd {
	m.session.Start()
	return tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.session.Tick() {
			return m, tickCmd()
		}
		m.creditOnce()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.session.Phase() == assessment.Finished {
		switch msg.String() {
		case "r":
			m.session = m.session.Retake()
			m.credited = false
			m.cursor = 0
			m.syncQuestion()
			m.session.Start()
			return m, tickCmd()
		case "q", "enter", "esc":
			return m, tea.Quit
		}
		return m, nil
	}

	question := m.session.Question(m.session.Current())
	if question.Type == model.FreeText {
		return m.handleFreeTextKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(question.Options)-1 {
			m.cursor++
		}
	case " ":
		if question.Type == model.MultiSelect {
			m.submit(model.Answer{Option: m.cursor})
		}
	case "enter":
		if question.Type != model.MultiSelect {
			m.submit(model.Answer{Option: m.cursor})
		}
		m.advance()
	case "right", "l":
		m.advance()
	case "left", "h":
		m.session.Previous()
		m.syncQuestion()
	}
	return m, nil
}

func (m *Model) handleFreeTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.submit(model.Answer{Text: m.input.Value()})
		m.advance()
		return m, nil
	case "esc":
		m.session.Previous()
		m.syncQuestion()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(ans model.Answer) {
	// Submission errors cannot occur here: the index comes from the
	// session itself and the phase was checked by the caller.
	_ = m.session.SubmitAnswer(m.session.Current(), ans)
}

func (m *Model) advance() {
	m.session.Next()
	if m.session.Phase() == assessment.Finished {
		m.creditOnce()
		return
	}
	m.syncQuestion()
}

// creditOnce posts pass rewards the first time the session finishes.
// Retakes reset the guard with the fresh session.
func (m *Model) creditOnce() {
	if m.credited {
		return
	}
	m.credited = true
	course.ApplyPassRewards(m.ledger, m.unit.ID, m.session.Result())
}

// syncQuestion aligns the cursor and the free-text input with whatever
// is already recorded for the question in view.
func (m *Model) syncQuestion() {
	if m.session.Phase() == assessment.Finished || m.session.Len() == 0 {
		return
	}
	question := m.session.Question(m.session.Current())
	ans, answered := m.session.Answer(m.session.Current())
	switch question.Type {
	case model.FreeText:
		m.input.SetValue("")
		if answered {
			m.input.SetValue(ans.Text)
		}
		m.input.Focus()
	default:
		m.input.Blur()
		m.cursor = 0
		if answered && question.Type != model.MultiSelect {
			m.cursor = ans.Option
		}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.session.Len() == 0 {
		return "This unit has no quiz.\n"
	}
	if m.session.Phase() == assessment.Finished {
		return m.renderResult()
	}
	return m.renderQuestion()
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 72
	}
	w := int(float64(m.width) * 0.80)
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) renderQuestion() string {
	width := m.contentWidth()
	idx := m.session.Current()
	question := m.session.Question(idx)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.unit.Title))
	b.WriteString("\n")
	b.WriteString(m.renderHeader(idx))
	b.WriteString("\n\n")

	if question.ScenarioText != "" {
		b.WriteString(scenarioStyle.Render(wrapText(question.ScenarioText, width)))
		b.WriteString("\n\n")
	}
	b.WriteString(promptStyle.Render(wrapText(question.Prompt, width)))
	b.WriteString("\n\n")

	if question.Type == model.FreeText {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(footerStyle.Render("enter submit & continue · esc back · ctrl+c quit"))
		return b.String()
	}

	ans, answered := m.session.Answer(idx)
	for i, opt := range question.Options {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		check := m.renderCheck(question, ans, answered, i)
		line := optionStyle.Render(wrapText(opt, width-6))
		if i == m.cursor {
			line = promptStyle.Render(wrapText(opt, width-6))
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, check, line))
	}
	b.WriteString("\n")
	help := "enter select & continue · ←/→ navigate · ctrl+c quit"
	if question.Type == model.MultiSelect {
		help = "space toggle · enter continue · ←/→ navigate · ctrl+c quit"
	}
	b.WriteString(footerStyle.Render(help))
	return b.String()
}

func (m *Model) renderCheck(question model.Question, ans model.Answer, answered bool, option int) string {
	if question.Type == model.MultiSelect {
		for _, sel := range ans.Options {
			if sel == option {
				return cursorStyle.Render("[x]")
			}
		}
		return optionStyle.Render("[ ]")
	}
	if answered && ans.Option == option {
		return cursorStyle.Render("(•)")
	}
	return optionStyle.Render("( )")
}

func (m *Model) renderHeader(idx int) string {
	progress := fmt.Sprintf("Question %d/%d", idx+1, m.session.Len())
	remaining := m.session.Remaining()
	clock := formatClock(remaining)
	style := timerStyle
	if remaining <= 60 {
		style = urgentStyle
	}
	return footerStyle.Render(progress) + "   " + style.Render(clock)
}

func (m *Model) renderResult() string {
	result := m.session.Result()
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.unit.Title))
	b.WriteString("\n\n")
	if result.Passed {
		b.WriteString(passStyle.Render(fmt.Sprintf("Passed — %d%%", result.Score)))
	} else {
		b.WriteString(failStyle.Render(fmt.Sprintf("Not passed — %d%% (need %d%%)", result.Score, m.unit.Quiz.PassingScore)))
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("%d of %d correct · finished in %s",
		result.CorrectCount, m.session.Len(), formatClock(result.ElapsedSeconds))))
	b.WriteString("\n\n")

	width := m.contentWidth()
	for i := 0; i < m.session.Len(); i++ {
		question := m.session.Question(i)
		mark := failStyle.Render("✗")
		if m.session.IsCorrect(i) {
			mark = passStyle.Render("✓")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", mark, wrapText(question.Prompt, width-2)))
		if !m.session.IsCorrect(i) && question.Explanation != "" {
			b.WriteString(scenarioStyle.Render("  " + wrapText(question.Explanation, width-2)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("Balance: %d bucks", m.ledger.State().Balance)))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("r retake · q quit"))
	return b.String()
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
