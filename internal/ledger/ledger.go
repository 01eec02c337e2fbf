// Package ledger owns the EasyPay Bucks balance, transaction log, login
// streak, and daily challenge completion.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trevsky25/easypayuniversity-sub001/internal/challenge"
	"github.com/trevsky25/easypayuniversity-sub001/internal/model"
	"github.com/trevsky25/easypayuniversity-sub001/internal/store"
)

// Store keys for the two persisted records.
const (
	rewardsKey = "rewards_state"
	unitsKey   = "completed_units"
)

const dateLayout = "2006-01-02"

// Reward for completing a training unit.
const unitCompletionReward = 100

// ErrInvalidAmount rejects non-positive award amounts.
var ErrInvalidAmount = errors.New("ledger: amount must be positive")

// Ledger is the rewards service. Construct one per process with New and
// pass it to whatever needs it. Every mutation is a read-modify-write of
// the persisted blob; the design assumes a single logical writer.
type Ledger struct {
	store *store.Store
	log   *zap.Logger
	now   func() time.Time

	subscribers map[int]func()
	nextSubID   int
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source. Tests use it to control dates.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithLogger sets the logger for absorbed persistence failures.
func WithLogger(log *zap.Logger) Option {
	return func(l *Ledger) {
		l.log = log
	}
}

// New constructs the ledger and runs the once-per-day login check.
func New(st *store.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:       st,
		log:         zap.NewNop(),
		now:         time.Now,
		subscribers: map[int]func(){},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.checkDailyLogin()
	return l
}

// State reads and deserializes the current ledger state. An absent or
// malformed record yields the zero state.
func (l *Ledger) State() model.RewardsState {
	raw, ok := l.store.Get(rewardsKey)
	if !ok {
		return model.RewardsState{}
	}
	var state model.RewardsState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		l.log.Warn("malformed rewards state, starting fresh", zap.Error(err))
		return model.RewardsState{}
	}
	return state
}

func (l *Ledger) save(state model.RewardsState) {
	raw, err := json.Marshal(state)
	if err != nil {
		l.log.Warn("failed to encode rewards state", zap.Error(err))
		return
	}
	if !l.store.Set(rewardsKey, string(raw)) {
		l.log.Warn("failed to persist rewards state")
	}
}

// appendEarn prepends an earned transaction and updates the totals.
func (l *Ledger) appendEarn(state *model.RewardsState, amount int, description string, unitID *int, category model.Category) {
	tx := model.Transaction{
		ID:          uuid.NewString(),
		Kind:        model.KindEarned,
		Amount:      amount,
		Description: description,
		UnitID:      unitID,
		Timestamp:   l.now(),
		Category:    category,
	}
	state.Transactions = append([]model.Transaction{tx}, state.Transactions...)
	state.Balance += amount
	state.TotalEarned += amount
}

// Award credits the balance with an earned transaction. A nil unitID
// leaves the transaction unlinked; an empty category defaults to module.
func (l *Ledger) Award(amount int, description string, unitID *int, category model.Category) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if category == "" {
		category = model.CategoryModule
	}
	state := l.State()
	l.appendEarn(&state, amount, description, unitID, category)
	l.save(state)
	l.notify()
	return nil
}

// Spend debits the balance. It reports false and changes nothing when
// the balance cannot cover the amount. This is the sole affordability
// gate; callers must not bypass it.
func (l *Ledger) Spend(amount int, description string) bool {
	if amount <= 0 {
		return false
	}
	state := l.State()
	if state.Balance < amount {
		return false
	}
	tx := model.Transaction{
		ID:          uuid.NewString(),
		Kind:        model.KindSpent,
		Amount:      amount,
		Description: description,
		Timestamp:   l.now(),
		Category:    model.CategoryReward,
	}
	state.Transactions = append([]model.Transaction{tx}, state.Transactions...)
	state.Balance -= amount
	state.TotalSpent += amount
	l.save(state)
	l.notify()
	return true
}

// CanAfford reports whether the balance covers amount.
func (l *Ledger) CanAfford(amount int) bool {
	return l.State().Balance >= amount
}

// MarkUnitCompleted records a training unit as completed and credits the
// completion reward. Repeat calls for the same unit are no-ops, so
// duplicate UI events never double-award.
func (l *Ledger) MarkUnitCompleted(unitID int) {
	units := l.completedUnits()
	key := strconv.Itoa(unitID)
	if units[key] {
		return
	}
	units[key] = true
	raw, err := json.Marshal(units)
	if err != nil {
		l.log.Warn("failed to encode completed units", zap.Error(err))
		return
	}
	if !l.store.Set(unitsKey, string(raw)) {
		l.log.Warn("failed to persist completed units")
	}
	id := unitID
	if err := l.Award(unitCompletionReward, fmt.Sprintf("Completed unit %d", unitID), &id, model.CategoryModule); err != nil {
		l.log.Warn("unit completion award failed", zap.Int("unit", unitID), zap.Error(err))
	}
}

// UnitCompleted reports whether a unit has been completed.
func (l *Ledger) UnitCompleted(unitID int) bool {
	return l.completedUnits()[strconv.Itoa(unitID)]
}

func (l *Ledger) completedUnits() map[string]bool {
	raw, ok := l.store.Get(unitsKey)
	if !ok {
		return map[string]bool{}
	}
	var units map[string]bool
	if err := json.Unmarshal([]byte(raw), &units); err != nil {
		l.log.Warn("malformed completed units, starting fresh", zap.Error(err))
		return map[string]bool{}
	}
	if units == nil {
		units = map[string]bool{}
	}
	return units
}

// CompleteDailyChallenge awards a challenge at most once per calendar
// day. It reports false when today's completion is already recorded.
func (l *Ledger) CompleteDailyChallenge(challengeID string, reward int, description string) bool {
	if reward <= 0 {
		return false
	}
	state := l.State()
	key := l.today() + "|" + challengeID
	for _, done := range state.DailyChallengesDone {
		if done == key {
			return false
		}
	}
	state.DailyChallengesDone = append(state.DailyChallengesDone, key)
	l.appendEarn(&state, reward, description, nil, model.CategoryChallenge)
	l.save(state)
	l.notify()
	return true
}

// DailyChallenges returns today's challenge set minus the ones already
// completed today.
func (l *Ledger) DailyChallenges() []model.Challenge {
	state := l.State()
	prefix := l.today() + "|"
	completed := map[string]bool{}
	for _, key := range state.DailyChallengesDone {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			completed[key[len(prefix):]] = true
		}
	}
	return challenge.DailyFor(l.now(), challenge.Catalog(), completed)
}

// checkDailyLogin advances the login streak and credits the login bonus
// on the first construction of a calendar day. The bonus escalates every
// 7-day streak block and caps at 3x.
func (l *Ledger) checkDailyLogin() {
	state := l.State()
	today := l.today()
	if state.LastLoginDate == today {
		return
	}
	streak := 1
	if state.LastLoginDate != "" {
		yesterday := l.now().AddDate(0, 0, -1).Format(dateLayout)
		if state.LastLoginDate == yesterday {
			streak = state.LoginStreak + 1
		}
	}
	tier := streak/7 + 1
	if tier > 3 {
		tier = 3
	}
	bonus := 10 * tier
	l.appendEarn(&state, bonus, fmt.Sprintf("Daily login bonus (%d-day streak)", streak), nil, model.CategoryStreak)
	state.LastLoginDate = today
	state.LoginStreak = streak
	l.save(state)
	l.notify()
}

func (l *Ledger) today() string {
	return l.now().Format(dateLayout)
}

// Subscribe registers a callback invoked after every persisted mutation.
// The returned function unregisters it. Notification is synchronous, so
// a callback reading State sees the post-mutation value.
func (l *Ledger) Subscribe(fn func()) func() {
	id := l.nextSubID
	l.nextSubID++
	l.subscribers[id] = fn
	return func() {
		delete(l.subscribers, id)
	}
}

func (l *Ledger) notify() {
	for _, fn := range l.subscribers {
		fn()
	}
}
