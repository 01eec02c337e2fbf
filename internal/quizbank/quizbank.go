// Package quizbank loads custom question banks from TOML files.
package quizbank

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/trevsky25/easypayuniversity-sub001/internal/model"
)

// Bank is a loaded question set with optional quiz settings.
type Bank struct {
	Title     string
	Questions []model.Question
	Quiz      model.QuizConfig
}

type fileBank struct {
	Title    string         `toml:"title"`
	Quiz     quizSection    `toml:"quiz"`
	Question []fileQuestion `toml:"question"`
}

type quizSection struct {
	PassingScore     *int `toml:"passing-score"`
	TimeLimitMinutes *int `toml:"time-limit-minutes"`
}

type fileQuestion struct {
	Type           string   `toml:"type"`
	Prompt         string   `toml:"prompt"`
	Options        []string `toml:"options"`
	Correct        *int     `toml:"correct"`
	CorrectOptions []int    `toml:"correct-options"`
	Explanation    string   `toml:"explanation"`
	Points         *int     `toml:"points"`
	Scenario       string   `toml:"scenario"`
}

var questionTypes = map[string]model.QuestionType{
	string(model.SingleChoice):         model.SingleChoice,
	string(model.TrueFalse):            model.TrueFalse,
	string(model.FreeText):             model.FreeText,
	string(model.ScenarioSingleChoice): model.ScenarioSingleChoice,
	string(model.MultiSelect):          model.MultiSelect,
}

// Load reads a TOML question bank from the given path.
func Load(path string, defaults model.QuizConfig) (Bank, error) {
	if _, err := os.Stat(path); err != nil {
		return Bank{}, fmt.Errorf("failed to stat bank: %w", err)
	}
	var file fileBank
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Bank{}, fmt.Errorf("failed to decode bank: %w", err)
	}
	if len(file.Question) == 0 {
		return Bank{}, fmt.Errorf("bank %s has no questions", path)
	}

	bank := Bank{Title: file.Title, Quiz: defaults}
	if file.Quiz.PassingScore != nil {
		bank.Quiz.PassingScore = *file.Quiz.PassingScore
	}
	if file.Quiz.TimeLimitMinutes != nil {
		bank.Quiz.TimeLimitMinutes = *file.Quiz.TimeLimitMinutes
	}

	for i, fq := range file.Question {
		q, err := buildQuestion(i, fq)
		if err != nil {
			return Bank{}, err
		}
		bank.Questions = append(bank.Questions, q)
	}
	return bank, nil
}

func buildQuestion(index int, fq fileQuestion) (model.Question, error) {
	qtype, ok := questionTypes[fq.Type]
	if !ok {
		return model.Question{}, fmt.Errorf("question %d: unknown type %q", index+1, fq.Type)
	}
	if fq.Prompt == "" {
		return model.Question{}, fmt.Errorf("question %d: missing prompt", index+1)
	}
	q := model.Question{
		ID:           index + 1,
		Type:         qtype,
		Prompt:       fq.Prompt,
		Options:      fq.Options,
		Explanation:  fq.Explanation,
		ScenarioText: fq.Scenario,
		Points:       10,
	}
	if fq.Points != nil {
		q.Points = *fq.Points
	}

	switch qtype {
	case model.FreeText:
		// No answer key to validate.
	case model.MultiSelect:
		if len(fq.CorrectOptions) == 0 {
			return model.Question{}, fmt.Errorf("question %d: multi-select needs correct-options", index+1)
		}
		for _, idx := range fq.CorrectOptions {
			if idx < 0 || idx >= len(fq.Options) {
				return model.Question{}, fmt.Errorf("question %d: correct option %d out of range", index+1, idx)
			}
		}
		q.CorrectOptions = fq.CorrectOptions
	default:
		if fq.Correct == nil {
			return model.Question{}, fmt.Errorf("question %d: missing correct index", index+1)
		}
		if *fq.Correct < 0 || *fq.Correct >= len(fq.Options) {
			return model.Question{}, fmt.Errorf("question %d: correct index %d out of range", index+1, *fq.Correct)
		}
		q.CorrectOption = *fq.Correct
	}
	if qtype == model.ScenarioSingleChoice && fq.Scenario == "" {
		return model.Question{}, fmt.Errorf("question %d: scenario type needs scenario text", index+1)
	}
	return q, nil
}
