package questionnaire

import (
	"fmt"
	"strings"
)

// RuleKind selects how a FollowUpRule matches an answer.
type RuleKind string

const (
	// RuleAlways inserts Then whatever the answer.
	RuleAlways RuleKind = "always"
	// RuleContains inserts Then when the answer contains any of Values, Else otherwise.
	RuleContains RuleKind = "contains"
	// RuleEquals inserts Then when the answer equals any of Values, Else otherwise.
	RuleEquals RuleKind = "equals"
)

// FollowUpRule decides which extra question, if any, an answer unlocks.
type FollowUpRule struct {
	Kind       RuleKind  `json:"kind" yaml:"kind"`
	Values     []string  `json:"values,omitempty" yaml:"values,omitempty"`
	IgnoreCase bool      `json:"ignore_case,omitempty" yaml:"ignore_case,omitempty"`
	Then       *Question `json:"then" yaml:"then"`
	Else       *Question `json:"else,omitempty" yaml:"else,omitempty"`
}

// Evaluate returns the follow-up question for answer, or false when the rule
// yields nothing.
func (r FollowUpRule) Evaluate(answer string) (Question, bool) {
	var next *Question
	switch r.Kind {
	case RuleAlways:
		next = r.Then
	case RuleContains:
		next = r.pick(r.anyValue(answer, strings.Contains))
	case RuleEquals:
		next = r.pick(r.anyValue(answer, func(a, v string) bool { return a == v }))
	}
	if next == nil {
		return Question{}, false
	}
	return next.clone(), true
}

func (r FollowUpRule) pick(matched bool) *Question {
	if matched {
		return r.Then
	}
	return r.Else
}

func (r FollowUpRule) anyValue(answer string, match func(answer, value string) bool) bool {
	if r.IgnoreCase {
		answer = strings.ToLower(answer)
	}
	for _, v := range r.Values {
		if r.IgnoreCase {
			v = strings.ToLower(v)
		}
		if match(answer, v) {
			return true
		}
	}
	return false
}

// targets lists every question the rule can produce.
func (r FollowUpRule) targets() []Question {
	var out []Question
	if r.Then != nil {
		out = append(out, *r.Then)
	}
	if r.Else != nil {
		out = append(out, *r.Else)
	}
	return out
}

func (r FollowUpRule) clone() FollowUpRule {
	out := r
	out.Values = append([]string(nil), r.Values...)
	if r.Then != nil {
		q := r.Then.clone()
		out.Then = &q
	}
	if r.Else != nil {
		q := r.Else.clone()
		out.Else = &q
	}
	return out
}

func (r FollowUpRule) check() error {
	switch r.Kind {
	case RuleAlways:
	case RuleContains, RuleEquals:
		if len(r.Values) == 0 {
			return fmt.Errorf("%s rule without values", r.Kind)
		}
	default:
		return fmt.Errorf("unknown follow-up rule kind %q", r.Kind)
	}
	if r.Then == nil {
		return fmt.Errorf("%s rule without a question", r.Kind)
	}
	for _, q := range r.targets() {
		if err := q.check(); err != nil {
			return fmt.Errorf("follow-up: %w", err)
		}
	}
	return nil
}
