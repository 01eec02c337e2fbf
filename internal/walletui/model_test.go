package walletui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trevsky25/easypayuniversity-sub001/internal/ledger"
	"github.com/trevsky25/easypayuniversity-sub001/internal/model"
	"github.com/trevsky25/easypayuniversity-sub001/internal/store"
)

func newTestModel(t *testing.T, funding int) (*Model, *ledger.Ledger) {
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
	if funding > 0 {
		if err := led.Award(funding, "Funding", nil, model.CategoryReview); err != nil {
			t.Fatalf("award: %v", err)
		}
	}
	m := NewModel(led)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, led
}

func (m *Model) pressKey(key string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func TestRedeemSpendsBalance(t *testing.T) {
	m, led := newTestModel(t, 600)
	before := led.State().Balance

	m.activeTab = tabRewards
	m.rewardCursor = 0 // cheapest card: 500 bucks
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	card := ledger.GiftCards()[0]
	if got := led.State().Balance; got != before-card.BucksRequired {
		t.Fatalf("expected balance %d, got %d", before-card.BucksRequired, got)
	}
	state := led.State()
	if state.Transactions[0].Kind != model.KindSpent {
		t.Fatalf("expected a spend transaction, got %+v", state.Transactions[0])
	}
	if !strings.Contains(m.notice, "Redeemed") {
		t.Fatalf("expected success notice, got %q", m.notice)
	}
}

func TestRedeemInsufficientBalanceIsDisabled(t *testing.T) {
	m, led := newTestModel(t, 0)
	before := led.State()

	m.activeTab = tabRewards
	m.rewardCursor = 0
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	after := led.State()
	if after.Balance != before.Balance || after.TotalSpent != before.TotalSpent {
		t.Fatalf("unaffordable redemption changed state")
	}
	if !strings.Contains(m.notice, "Not enough") {
		t.Fatalf("expected insufficient notice, got %q", m.notice)
	}
	if !strings.Contains(renderRewards(after.Balance, 0), "insufficient balance") {
		t.Fatalf("unaffordable cards should render disabled")
	}
}

func TestSubscriptionRefreshesHistory(t *testing.T) {
	m, led := newTestModel(t, 0)
	rowsBefore := len(m.historyTable.Rows())
	if err := led.Award(25, "Scenario bonus", nil, model.CategoryScenario); err != nil {
		t.Fatalf("award: %v", err)
	}
	if got := len(m.historyTable.Rows()); got != rowsBefore+1 {
		t.Fatalf("expected %d rows after award, got %d", rowsBefore+1, got)
	}
}

func TestTabNavigationWraps(t *testing.T) {
	m, _ := newTestModel(t, 0)
	if m.activeTab != tabOverview {
		t.Fatalf("expected overview tab initially")
	}
	m.pressKey("h")
	if m.activeTab != tabRewards {
		t.Fatalf("left from first tab should wrap to last, got %d", m.activeTab)
	}
	m.pressKey("l")
	if m.activeTab != tabOverview {
		t.Fatalf("right from last tab should wrap to first, got %d", m.activeTab)
	}
}

func TestOverviewShowsTotals(t *testing.T) {
	_, led := newTestModel(t, 200)
	out := renderOverview(led.State(), 40)
	if !strings.Contains(out, "Balance") || !strings.Contains(out, "Login Streak") {
		t.Fatalf("overview missing cards: %s", out)
	}
}
