package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFollowUpRule_Evaluate(t *testing.T) {
	then := &Question{ID: "then", Prompt: "Then", Kind: InputText}
	otherwise := &Question{ID: "else", Prompt: "Else", Kind: InputText}

	tests := []struct {
		name   string
		rule   FollowUpRule
		answer string
		want   string
	}{
		{"always", FollowUpRule{Kind: RuleAlways, Then: then}, "anything", "then"},
		{"contains match", FollowUpRule{Kind: RuleContains, Values: []string{"High", "Critical"}, Then: then}, "High - actively looking", "then"},
		{"contains is case sensitive", FollowUpRule{Kind: RuleContains, Values: []string{"business"}, Then: then}, "Business owners", ""},
		{"contains ignore case", FollowUpRule{Kind: RuleContains, Values: []string{"business"}, IgnoreCase: true, Then: then}, "Small BUSINESS owners", "then"},
		{"contains falls back to else", FollowUpRule{Kind: RuleContains, Values: []string{"B2C"}, Then: then, Else: otherwise}, "Both", "else"},
		{"equals match", FollowUpRule{Kind: RuleEquals, Values: []string{"Daily"}, Then: then}, "Daily", "then"},
		{"equals needs exact value", FollowUpRule{Kind: RuleEquals, Values: []string{"Daily"}, Then: then}, "Daily or weekly", ""},
		{"unknown kind yields nothing", FollowUpRule{Kind: "regex", Values: []string{"x"}, Then: then}, "x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.rule.Evaluate(tt.answer)
			if tt.want == "" {
				assert.False(t, ok)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestFollowUpRule_EvaluateReturnsCopy(t *testing.T) {
	then := &Question{ID: "then", Prompt: "Then", Kind: InputSelect, Choices: []string{"a"}}
	rule := FollowUpRule{Kind: RuleAlways, Then: then}

	got, _ := rule.Evaluate("x")
	got.Choices[0] = "changed"

	assert.Equal(t, "a", then.Choices[0])
}

func TestQuestion_ValidateMultiSelect(t *testing.T) {
	q := Question{ID: "m", Prompt: "M", Kind: InputMultiSelect, Choices: []string{"Efficiency", "Growth"}}

	assert.NoError(t, q.Validate("Efficiency, Growth"))
	assert.ErrorIs(t, q.Validate("Efficiency,Fame"), ErrValidation)
	assert.ErrorIs(t, q.Validate(" , "), ErrValidation)
}
