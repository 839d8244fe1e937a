package questionnaire

import (
	"fmt"
	"strings"
)

type PersonaDemographics struct {
	Profile        string `json:"profile"`
	JobDescription string `json:"jobDescription"`
}

type PersonaBehaviors struct {
	TaskFrequency      string   `json:"taskFrequency"`
	ToolsUsed          []string `json:"toolsUsed"`
	ProcessDescription string   `json:"processDescription"`
}

type PersonaNeeds struct {
	Functional    []string `json:"functional"`
	Psychological []string `json:"psychological"`
}

// CustomerPersona describes one target customer. A persona built without
// talking to users is flagged as a hypothesis.
type CustomerPersona struct {
	Name         string              `json:"name"`
	Demographics PersonaDemographics `json:"demographics"`
	Behaviors    PersonaBehaviors    `json:"behaviors"`
	Needs        PersonaNeeds        `json:"needs"`
	Frustrations []string            `json:"frustrations"`
	Constraints  []string            `json:"constraints"`
	Quotes       []string            `json:"quotes"`
	Motivations  []string            `json:"motivations"`
	UserResearch string              `json:"userResearch"`
	Hypothesis   bool                `json:"hypothesis"`
}

func NewCustomerPersona(a AnswerSet) *CustomerPersona {
	quotes := []string{}
	if a.Has("memorable_quote") {
		quotes = append(quotes, strings.TrimSpace(a["memorable_quote"]))
	}

	return &CustomerPersona{
		Name: a.Text("persona_name"),
		Demographics: PersonaDemographics{
			Profile:        a.Text("b2c_demographics", "b2b_demographics"),
			JobDescription: a.Text("job_description"),
		},
		Behaviors: PersonaBehaviors{
			TaskFrequency:      a.Text("task_frequency"),
			ToolsUsed:          a.Items("current_tools"),
			ProcessDescription: a.Text("task_context"),
		},
		Needs: PersonaNeeds{
			Functional:    a.Lines("functional_needs"),
			Psychological: a.Lines("emotional_needs"),
		},
		Frustrations: a.Lines("frustrations"),
		Constraints:  a.Lines("constraints"),
		Quotes:       quotes,
		Motivations:  a.Items("motivations"),
		UserResearch: a.Text("talked_to_users"),
		Hypothesis:   a.Has("caveat_acknowledgment"),
	}
}

func (p *CustomerPersona) ArtifactType() ArtifactType { return ArtifactCustomerPersona }

func (p *CustomerPersona) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Customer Persona: %s\n\n", p.Name)
	if p.Hypothesis {
		b.WriteString("> This persona is a hypothesis. Validate it with real customer interviews.\n\n")
	}
	field(&b, "Demographics & Role", p.Demographics.Profile)
	field(&b, "Job Description", p.Demographics.JobDescription)
	field(&b, "Task Frequency", p.Behaviors.TaskFrequency)
	field(&b, "Current Tools", joinOr(p.Behaviors.ToolsUsed, ", "))
	field(&b, "Workflow", p.Behaviors.ProcessDescription)
	field(&b, "Functional Needs", joinOr(p.Needs.Functional, "; "))
	field(&b, "Emotional Needs", joinOr(p.Needs.Psychological, "; "))
	field(&b, "Motivations", joinOr(p.Motivations, ", "))
	field(&b, "Frustrations", joinOr(p.Frustrations, "; "))
	field(&b, "Constraints", joinOr(p.Constraints, "; "))
	for _, q := range p.Quotes {
		fmt.Fprintf(&b, "> %q\n\n", q)
	}
	return strings.TrimSpace(b.String())
}

func joinOr(items []string, sep string) string {
	if len(items) == 0 {
		return DefaultText
	}
	return strings.Join(items, sep)
}
