// Package course holds the training-unit catalog and the reward flow
// that runs when a unit's quiz is passed.
package course

import (
	"github.com/trevsky25/easypayuniversity-sub001/internal/assessment"
	"github.com/trevsky25/easypayuniversity-sub001/internal/challenge"
	"github.com/trevsky25/easypayuniversity-sub001/internal/ledger"
	"github.com/trevsky25/easypayuniversity-sub001/internal/model"
)

// Default quiz settings applied when a unit does not override them.
const (
	DefaultPassingScore     = 80
	DefaultTimeLimitMinutes = 10
)

// Unit is one gradeable piece of training content.
type Unit struct {
	ID          int
	Title       string
	Description string
	Questions   []model.Question
	Quiz        model.QuizConfig
}

// UnitByID looks up a unit in the catalog.
func UnitByID(id int) (Unit, bool) {
	for _, u := range Units() {
		if u.ID == id {
			return u, true
		}
	}
	return Unit{}, false
}

// ApplyPassRewards posts the credits for a passed assessment: the unit
// completion award, plus any bonus challenges the result qualifies for.
// Every credit is individually deduplicated by the ledger, so calling
// this again for a repeat pass changes nothing.
func ApplyPassRewards(l *ledger.Ledger, unitID int, result assessment.Result) {
	if !result.Passed {
		return
	}
	l.MarkUnitCompleted(unitID)
	if result.Score >= 80 {
		creditChallenge(l, challenge.QuizMasterID)
	}
	if result.ElapsedSeconds < 5*60 {
		creditChallenge(l, challenge.SpeedLearnerID)
	}
	if result.Score == 100 {
		creditChallenge(l, "perfect-score")
	}
}

func creditChallenge(l *ledger.Ledger, id string) {
	for _, ch := range challenge.Catalog() {
		if ch.ID == id {
			l.CompleteDailyChallenge(ch.ID, ch.Reward, ch.Description)
			return
		}
	}
}
