package questionnaire

import (
	"maps"
	"strings"
)

// DefaultText stands in for any text field whose question was never answered.
const DefaultText = "To be defined"

// AnswerSet maps question ids to answers. Multi-select answers are comma-joined.
type AnswerSet map[string]string

func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	maps.Copy(out, a)
	return out
}

// Has reports whether id holds a non-blank answer.
func (a AnswerSet) Has(id string) bool {
	return strings.TrimSpace(a[id]) != ""
}

// Text returns the first non-blank answer among ids verbatim, or DefaultText.
func (a AnswerSet) Text(ids ...string) string {
	for _, id := range ids {
		if v := a[id]; strings.TrimSpace(v) != "" {
			return v
		}
	}
	return DefaultText
}

// Lines splits a free-text answer into its non-blank lines.
func (a AnswerSet) Lines(id string) []string {
	out := []string{}
	for _, line := range strings.Split(a[id], "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Items splits a comma separated answer (tool lists, multi-select) into trimmed items.
func (a AnswerSet) Items(id string) []string {
	return splitItems(a[id])
}

func splitItems(value string) []string {
	out := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
