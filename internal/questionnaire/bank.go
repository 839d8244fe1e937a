// Package questionnaire implements the adaptive questionnaire engine: static
// question banks per artifact type, follow-up rules that splice extra
// questions into a running session, and the pure transforms that fold an
// answer set into artifact content.
package questionnaire

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// ArtifactType identifies the kind of document a questionnaire produces.
type ArtifactType string

const (
	ArtifactProblemStatement  ArtifactType = "problem_statement"
	ArtifactCustomerPersona   ArtifactType = "customer_persona"
	ArtifactInterviewGuide    ArtifactType = "interview_guide"
	ArtifactInterviewInsights ArtifactType = "interview_insights"
	ArtifactMarketSizing      ArtifactType = "market_sizing"
)

// Content is the structured output of a transform.
type Content interface {
	ArtifactType() ArtifactType
	Markdown() string
}

type transformFunc func(AnswerSet) Content

var transforms = map[ArtifactType]transformFunc{
	ArtifactProblemStatement: func(a AnswerSet) Content { return NewProblemStatement(a) },
	ArtifactCustomerPersona:  func(a AnswerSet) Content { return NewCustomerPersona(a) },
}

//go:embed banks/*.yaml
var bankFS embed.FS

var banks = mustLoadBanks(bankFS)

type bankFile struct {
	ArtifactType ArtifactType `yaml:"artifact_type"`
	Questions    []Question   `yaml:"questions"`
}

func mustLoadBanks(fsys fs.FS) map[ArtifactType][]Question {
	loaded, err := loadBanks(fsys)
	if err != nil {
		panic(fmt.Sprintf("questionnaire: %v", err))
	}
	return loaded
}

func loadBanks(fsys fs.FS) (map[ArtifactType][]Question, error) {
	files, err := fs.Glob(fsys, "banks/*.yaml")
	if err != nil {
		return nil, err
	}

	out := make(map[ArtifactType][]Question, len(files))
	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		var file bankFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path.Base(name), err)
		}
		if _, ok := transforms[file.ArtifactType]; !ok {
			return nil, fmt.Errorf("%s: no transform for artifact type %q", path.Base(name), file.ArtifactType)
		}
		if _, dup := out[file.ArtifactType]; dup {
			return nil, fmt.Errorf("%s: duplicate bank for %q", path.Base(name), file.ArtifactType)
		}
		if err := checkBank(file.Questions); err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		out[file.ArtifactType] = file.Questions
	}
	return out, nil
}

// checkBank rejects empty banks, duplicate ids and follow-ups that reuse a
// top-level id (those could never be inserted).
func checkBank(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("bank has no questions")
	}
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if err := q.check(); err != nil {
			return err
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}
	for _, q := range questions {
		if q.FollowUp == nil {
			continue
		}
		for _, target := range q.FollowUp.targets() {
			if seen[target.ID] {
				return fmt.Errorf("follow-up of %s reuses top-level id %q", q.ID, target.ID)
			}
		}
	}
	return nil
}

// ListQuestions returns a copy of the static bank for t.
func ListQuestions(t ArtifactType) ([]Question, error) {
	bank, ok := banks[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArtifactType, t)
	}
	return cloneQuestions(bank), nil
}

// Transform folds answers into the content of a t artifact. It never fails
// for a supported type: unanswered fields take their defaults.
func Transform(t ArtifactType, answers AnswerSet) (Content, error) {
	fn, ok := transforms[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArtifactType, t)
	}
	if answers == nil {
		answers = AnswerSet{}
	}
	return fn(answers), nil
}

// SupportedArtifactTypes lists the types that have a question bank.
func SupportedArtifactTypes() []ArtifactType {
	var out []ArtifactType
	for _, t := range []ArtifactType{
		ArtifactProblemStatement,
		ArtifactCustomerPersona,
		ArtifactInterviewGuide,
		ArtifactInterviewInsights,
		ArtifactMarketSizing,
	} {
		if _, ok := banks[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

func cloneQuestions(in []Question) []Question {
	out := make([]Question, len(in))
	for i, q := range in {
		out[i] = q.clone()
	}
	return out
}
