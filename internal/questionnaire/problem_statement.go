package questionnaire

import (
	"fmt"
	"strings"
)

// ProblemStatement is the foundational artifact of a venture.
type ProblemStatement struct {
	TargetCustomer    string   `json:"targetCustomer"`
	BusinessSize      string   `json:"businessSize"`
	CoreProblem       string   `json:"coreProblem"`
	ProblemFrequency  string   `json:"problemFrequency"`
	CurrentSolutions  string   `json:"currentSolutions"`
	PainPoints        []string `json:"painPoints"`
	Impact            string   `json:"impact"`
	Urgency           string   `json:"urgency"`
	BudgetWillingness string   `json:"budgetWillingness"`
	UniqueInsights    string   `json:"uniqueInsights"`
	Opportunity       string   `json:"opportunity"`
}

func NewProblemStatement(a AnswerSet) *ProblemStatement {
	target := a.Text("target_customer")
	painPoints := a.Lines("solution_pain_points")
	frustrations := "their current frustrations"
	if len(painPoints) > 0 {
		frustrations = strings.Join(painPoints, ", ")
	}

	return &ProblemStatement{
		TargetCustomer:    target,
		BusinessSize:      a.Text("business_size"),
		CoreProblem:       a.Text("problem_description"),
		ProblemFrequency:  a.Text("problem_frequency"),
		CurrentSolutions:  a.Text("current_solutions"),
		PainPoints:        painPoints,
		Impact:            a.Text("impact"),
		Urgency:           a.Text("urgency"),
		BudgetWillingness: a.Text("budget_willingness"),
		UniqueInsights:    a.Text("unique_insights"),
		Opportunity: fmt.Sprintf(
			"By addressing this problem, we can help %s overcome %s and achieve better outcomes.",
			target, frustrations),
	}
}

func (p *ProblemStatement) ArtifactType() ArtifactType { return ArtifactProblemStatement }

func (p *ProblemStatement) Markdown() string {
	painPoints := "Not specified"
	if len(p.PainPoints) > 0 {
		painPoints = strings.Join(p.PainPoints, "; ")
	}

	var b strings.Builder
	b.WriteString("## Problem Statement\n\n")
	field(&b, "Target Customer", p.TargetCustomer)
	field(&b, "Core Problem", p.CoreProblem)
	field(&b, "Current Solutions", p.CurrentSolutions)
	field(&b, "Pain Points", painPoints)
	field(&b, "Impact of Unsolved Problem", p.Impact)
	field(&b, "Urgency Level", p.Urgency)
	field(&b, "Unique Insights", p.UniqueInsights)
	field(&b, "Opportunity", p.Opportunity)
	return strings.TrimSpace(b.String())
}

func field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "**%s**: %s\n\n", label, value)
}
