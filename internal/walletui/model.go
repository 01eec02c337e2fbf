// Package walletui provides the Bubble Tea wallet interface.
package walletui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trevsky25/easypayuniversity-sub001/internal/ledger"
	"github.com/trevsky25/easypayuniversity-sub001/internal/model"
)

const (
	tabOverview = iota
	tabHistory
	tabChallenges
	tabRewards
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	earnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6FBF73"))
	spendStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// Model implements the Bubble Tea wallet UI. It subscribes to the
// ledger so any credit or redemption re-renders with fresh totals.
type Model struct {
	ledger      *ledger.Ledger
	unsubscribe func()

	tabs         int
	tabNames     []string
	activeTab    int
	historyTable table.Model
	viewports    []viewport.Model
	rewardCursor int
	notice       string

	width  int
	height int
}

// NewModel constructs a wallet UI model around an injected ledger.
func NewModel(led *ledger.Ledger) *Model {
	m := &Model{
		ledger:   led,
		tabNames: []string{"Overview", "History", "Challenges", "Rewards"},
	}
	m.tabs = len(m.tabNames)
	m.viewports = make([]viewport.Model, m.tabs)
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.historyTable = buildHistoryTable(led.State().Transactions, 0, 1)
	m.unsubscribe = led.Subscribe(m.refresh)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			m.unsubscribe()
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "up", "k":
			if m.activeTab == tabRewards && m.rewardCursor > 0 {
				m.rewardCursor--
				m.renderTabContents()
				return m, nil
			}
		case "down", "j":
			if m.activeTab == tabRewards && m.rewardCursor < len(ledger.GiftCards())-1 {
				m.rewardCursor++
				m.renderTabContents()
				return m, nil
			}
		case "enter":
			if m.activeTab == tabRewards {
				m.redeemSelected()
				return m, nil
			}
		}
		if m.activeTab == tabHistory {
			var cmd tea.Cmd
			m.historyTable, cmd = m.historyTable.Update(msg)
			return m, cmd
		}
		vp := m.viewports[m.activeTab]
		var cmd tea.Cmd
		vp, cmd = vp.Update(msg)
		m.viewports[m.activeTab] = vp
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderTabsBar()
	body := m.renderBody()
	footer := m.renderFooter()
	return strings.Join([]string{header, body, footer}, "\n")
}

// refresh is the ledger subscription callback. The ledger persists
// before notifying, so reading State here always sees the new totals.
func (m *Model) refresh() {
	m.historyTable.SetRows(historyRows(m.ledger.State().Transactions))
	m.renderTabContents()
}

func (m *Model) redeemSelected() {
	cards := ledger.GiftCards()
	if m.rewardCursor < 0 || m.rewardCursor >= len(cards) {
		return
	}
	card := cards[m.rewardCursor]
	if !m.ledger.CanAfford(card.BucksRequired) {
		m.notice = fmt.Sprintf("Not enough bucks for %s", card.Name)
		return
	}
	if m.ledger.Spend(card.BucksRequired, "Redeemed "+card.Name) {
		m.notice = fmt.Sprintf("Redeemed %s", card.Name)
	} else {
		m.notice = fmt.Sprintf("Could not redeem %s", card.Name)
	}
}

func (m *Model) moveTab(delta int) {
	next := m.activeTab + delta
	if next < 0 {
		next = m.tabs - 1
	}
	if next >= m.tabs {
		next = 0
	}
	m.activeTab = next
	m.notice = ""
	if m.activeTab == tabHistory {
		m.historyTable.Focus()
	} else {
		m.historyTable.Blur()
	}
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	bodyHeight := m.bodyHeight()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.historyTable.SetWidth(m.width)
	m.historyTable.SetHeight(maxInt(1, bodyHeight-1))
}

func (m *Model) bodyHeight() int {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X")) + 1
	h := m.height - tabsHeight - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) renderTabsBar() string {
	parts := make([]string, 0, m.tabs)
	for i, name := range m.tabNames {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(name))
		} else {
			parts = append(parts, inactiveNavStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderBody() string {
	if m.activeTab == tabHistory {
		return m.historyTable.View()
	}
	return m.viewports[m.activeTab].View()
}

func (m *Model) renderFooter() string {
	if m.notice != "" {
		return noticeStyle.Render(m.notice)
	}
	help := "←/→ tabs · q quit"
	if m.activeTab == tabRewards {
		help = "↑/↓ select · enter redeem · ←/→ tabs · q quit"
	}
	return headerStyle.Render(help)
}

func (m *Model) renderTabContents() {
	state := m.ledger.State()
	m.viewports[tabOverview].SetContent(renderOverview(state, m.width))
	m.viewports[tabChallenges].SetContent(renderChallenges(m.ledger.DailyChallenges()))
	m.viewports[tabRewards].SetContent(renderRewards(state.Balance, m.rewardCursor))
}

func metricCard(title, value string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value),
	)
	return cardStyle.Render(content)
}

func renderOverview(state model.RewardsState, width int) string {
	cards := []string{
		metricCard("Balance", fmt.Sprintf("%d bucks", state.Balance)),
		metricCard("Total Earned", fmt.Sprintf("%d", state.TotalEarned)),
		metricCard("Total Spent", fmt.Sprintf("%d", state.TotalSpent)),
		metricCard("Login Streak", fmt.Sprintf("%d days", state.LoginStreak)),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3])
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func renderChallenges(challenges []model.Challenge) string {
	if len(challenges) == 0 {
		return "All of today's challenges are complete. Come back tomorrow."
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render("Today's challenges"))
	b.WriteString("\n\n")
	for _, ch := range challenges {
		b.WriteString(fmt.Sprintf("%s  %s\n", cardValueStyle.Render(ch.Title), earnStyle.Render(fmt.Sprintf("+%d", ch.Reward))))
		b.WriteString(mutedStyle.Render("  " + ch.Description))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRewards(balance, cursor int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Balance: %d bucks", balance)))
	b.WriteString("\n\n")
	for i, card := range ledger.GiftCards() {
		marker := "  "
		if i == cursor {
			marker = noticeStyle.Render("> ")
		}
		label := fmt.Sprintf("%s — %d bucks", card.Name, card.BucksRequired)
		if balance < card.BucksRequired {
			// Unaffordable entries show as disabled rather than erroring.
			b.WriteString(fmt.Sprintf("%s%s\n", marker, mutedStyle.Render(label+" (insufficient balance)")))
			continue
		}
		b.WriteString(fmt.Sprintf("%s%s\n", marker, cardValueStyle.Render(label)))
	}
	return b.String()
}

func buildHistoryTable(transactions []model.Transaction, width, height int) table.Model {
	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithRows(historyRows(transactions)),
		table.WithHeight(maxInt(1, height-1)),
	)
	t.SetWidth(width)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}

func historyColumns() []table.Column {
	return []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Amount", Width: 8},
		{Title: "Category", Width: 10},
		{Title: "Description", Width: 40},
	}
}

func historyRows(transactions []model.Transaction) []table.Row {
	rows := make([]table.Row, 0, len(transactions))
	for _, tx := range transactions {
		amount := earnStyle.Render(fmt.Sprintf("+%d", tx.Amount))
		if tx.Kind == model.KindSpent {
			amount = spendStyle.Render(fmt.Sprintf("-%d", tx.Amount))
		}
		rows = append(rows, table.Row{
			tx.Timestamp.Format("2006-01-02 15:04"),
			amount,
			string(tx.Category),
			tx.Description,
		})
	}
	return rows
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
