package questionnaire

import (
	"fmt"
	"slices"
	"strings"
)

// InputKind tells the client which widget collects the answer.
type InputKind string

const (
	InputText        InputKind = "text"
	InputTextarea    InputKind = "textarea"
	InputSelect      InputKind = "select"
	InputMultiSelect InputKind = "multiselect"
)

func (k InputKind) Valid() bool {
	switch k {
	case InputText, InputTextarea, InputSelect, InputMultiSelect:
		return true
	}
	return false
}

// IsSelect reports whether answers are picked from Choices.
func (k InputKind) IsSelect() bool {
	return k == InputSelect || k == InputMultiSelect
}

// Question is one step of a questionnaire. Questions are plain data so a
// running session can be serialized between requests.
type Question struct {
	ID          string        `json:"id" yaml:"id"`
	Prompt      string        `json:"prompt" yaml:"prompt"`
	Kind        InputKind     `json:"kind" yaml:"kind"`
	Choices     []string      `json:"choices,omitempty" yaml:"choices,omitempty"`
	Placeholder string        `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	FollowUp    *FollowUpRule `json:"follow_up,omitempty" yaml:"follow_up,omitempty"`
}

// Validate checks an answer against the question. Blank answers are never
// accepted; select kinds only accept declared choices.
func (q Question) Validate(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return &ValidationError{QuestionID: q.ID, Message: "Please provide an answer"}
	}

	switch q.Kind {
	case InputSelect:
		if !slices.Contains(q.Choices, value) {
			return &ValidationError{
				QuestionID: q.ID,
				Message:    fmt.Sprintf("%q is not one of the available options", value),
			}
		}
	case InputMultiSelect:
		parts := splitItems(value)
		if len(parts) == 0 {
			return &ValidationError{QuestionID: q.ID, Message: "Please select at least one option"}
		}
		for _, part := range parts {
			if !slices.Contains(q.Choices, part) {
				return &ValidationError{
					QuestionID: q.ID,
					Message:    fmt.Sprintf("%q is not one of the available options", part),
				}
			}
		}
	}
	return nil
}

func (q Question) clone() Question {
	out := q
	out.Choices = slices.Clone(q.Choices)
	if q.FollowUp != nil {
		rule := q.FollowUp.clone()
		out.FollowUp = &rule
	}
	return out
}

func (q Question) check() error {
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("question without id")
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("question %s: empty prompt", q.ID)
	}
	if !q.Kind.Valid() {
		return fmt.Errorf("question %s: unknown input kind %q", q.ID, q.Kind)
	}
	if q.Kind.IsSelect() && len(q.Choices) == 0 {
		return fmt.Errorf("question %s: %s without choices", q.ID, q.Kind)
	}
	if !q.Kind.IsSelect() && len(q.Choices) > 0 {
		return fmt.Errorf("question %s: choices on a %s question", q.ID, q.Kind)
	}
	if q.FollowUp != nil {
		if err := q.FollowUp.check(); err != nil {
			return fmt.Errorf("question %s: %w", q.ID, err)
		}
	}
	return nil
}
