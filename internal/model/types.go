// Package model defines shared data structures.
package model

import "time"

// TransactionKind distinguishes earn and spend events.
type TransactionKind string

// Transaction kinds.
const (
	KindEarned TransactionKind = "earned"
	KindSpent  TransactionKind = "spent"
)

// Category classifies the source of a transaction.
type Category string

// Transaction categories.
const (
	CategoryModule    Category = "module"
	CategoryDaily     Category = "daily"
	CategoryChallenge Category = "challenge"
	CategoryReview    Category = "review"
	CategoryScenario  Category = "scenario"
	CategoryStreak    Category = "streak"
	CategoryReward    Category = "reward"
)

// Transaction is one immutable earn or spend event.
type Transaction struct {
	ID          string          `json:"id"`
	Kind        TransactionKind `json:"type"`
	Amount      int             `json:"amount"`
	Description string          `json:"description"`
	UnitID      *int            `json:"moduleId,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Category    Category        `json:"category"`
}

// RewardsState is the persisted ledger blob. Transactions are ordered
// newest first and never mutated after append.
type RewardsState struct {
	Balance             int           `json:"balance"`
	Transactions        []Transaction `json:"transactions"`
	TotalEarned         int           `json:"totalEarned"`
	TotalSpent          int           `json:"totalSpent"`
	DailyChallengesDone []string      `json:"dailyChallengesCompleted"`
	LastLoginDate       string        `json:"lastLoginDate,omitempty"`
	LoginStreak         int           `json:"loginStreak"`
}

// Challenge is a static catalog entry for the daily rotation.
type Challenge struct {
	ID          string
	Title       string
	Description string
	Reward      int
	Category    Category
	Difficulty  string
}

// GiftCard is one redeemable catalog entry.
type GiftCard struct {
	ID            string
	Name          string
	Value         int
	BucksRequired int
	Description   string
}

// QuestionType enumerates the supported answer formats.
type QuestionType string

// Question types.
const (
	SingleChoice         QuestionType = "single-choice"
	TrueFalse            QuestionType = "true-false"
	FreeText             QuestionType = "free-text"
	ScenarioSingleChoice QuestionType = "scenario-single-choice"
	MultiSelect          QuestionType = "multi-select"
)

// Question is one immutable quiz item supplied by the caller.
type Question struct {
	ID             int
	Type           QuestionType
	Prompt         string
	Options        []string
	CorrectOption  int
	CorrectOptions []int
	Explanation    string
	Points         int
	ScenarioText   string
}

// Answer holds a response to one question. The meaningful field depends
// on the question type: Option for single-answer types, Options for the
// accumulated multi-select set, Text for free text.
type Answer struct {
	Option  int
	Options []int
	Text    string
}

// QuizConfig defines assessment settings.
type QuizConfig struct {
	TimeLimitMinutes int
	PassingScore     int
}
