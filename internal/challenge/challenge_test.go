package challenge

import (
	"testing"
	"time"

	"github.com/trevsky25/easypayuniversity-sub001/internal/model"
)

// date returns a day with the given weekday (2024-09-01 is a Sunday).
func date(dow time.Weekday) time.Time {
	return time.Date(2024, 9, 1+int(dow), 12, 0, 0, 0, time.UTC)
}

func TestDailyForDeterministic(t *testing.T) {
	day := date(time.Wednesday)
	first := DailyFor(day, Catalog(), nil)
	second := DailyFor(day, Catalog(), nil)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("pick %d differs: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestDailyForNoDuplicates(t *testing.T) {
	for dow := time.Sunday; dow <= time.Saturday; dow++ {
		picks := DailyFor(date(dow), Catalog(), nil)
		seen := map[string]bool{}
		for _, ch := range picks {
			if seen[ch.ID] {
				t.Fatalf("dow %v repeats challenge %s", dow, ch.ID)
			}
			seen[ch.ID] = true
		}
		if len(picks) < 2 || len(picks) > 3 {
			t.Fatalf("dow %v yielded %d picks", dow, len(picks))
		}
	}
}

// The index formula collides on Sunday (0,1,0) and Monday (2,3,3); after
// dedupe those days surface two challenges, the rest three.
func TestDailyForCollisionDays(t *testing.T) {
	if got := len(DailyFor(date(time.Sunday), Catalog(), nil)); got != 2 {
		t.Fatalf("sunday: expected 2 picks, got %d", got)
	}
	if got := len(DailyFor(date(time.Monday), Catalog(), nil)); got != 2 {
		t.Fatalf("monday: expected 2 picks, got %d", got)
	}
	if got := len(DailyFor(date(time.Tuesday), Catalog(), nil)); got != 3 {
		t.Fatalf("tuesday: expected 3 picks, got %d", got)
	}
}

func TestDailyForFiltersCompleted(t *testing.T) {
	day := date(time.Tuesday)
	all := DailyFor(day, Catalog(), nil)
	if len(all) != 3 {
		t.Fatalf("expected 3 picks, got %d", len(all))
	}
	done := map[string]bool{all[0].ID: true}
	remaining := DailyFor(day, Catalog(), done)
	if len(remaining) != 2 {
		t.Fatalf("expected 2 remaining, got %d", len(remaining))
	}
	for _, ch := range remaining {
		if ch.ID == all[0].ID {
			t.Fatalf("completed challenge %s not filtered", ch.ID)
		}
	}
}

func TestDailyForEmptyCatalog(t *testing.T) {
	if picks := DailyFor(date(time.Friday), nil, nil); picks != nil {
		t.Fatalf("expected nil for empty catalog, got %v", picks)
	}
}

func TestCatalogRewardsPositive(t *testing.T) {
	for _, ch := range Catalog() {
		if ch.Reward <= 0 {
			t.Fatalf("challenge %s has non-positive reward %d", ch.ID, ch.Reward)
		}
		if ch.Category == model.Category("") {
			t.Fatalf("challenge %s has empty category", ch.ID)
		}
	}
}
