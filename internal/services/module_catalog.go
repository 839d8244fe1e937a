package services

import (
	"slices"

	"founderkit/internal/models/response_models"
	"founderkit/internal/questionnaire"
)

type Module struct {
	ID             string
	Title          string
	Description    string
	IsFoundational bool
	Available      bool
}

// moduleCatalog ids match the artifact type a module produces, which is
// also what a venture records in its completed modules.
var moduleCatalog = []Module{
	{
		ID:             string(questionnaire.ArtifactProblemStatement),
		Title:          "Problem Statement",
		Description:    "Define the problem you are solving and who has it.",
		IsFoundational: true,
		Available:      true,
	},
	{
		ID:          string(questionnaire.ArtifactCustomerPersona),
		Title:       "Customer Persona",
		Description: "Describe the person who feels the problem most.",
		Available:   true,
	},
	{
		ID:          string(questionnaire.ArtifactInterviewGuide),
		Title:       "Interview Guide",
		Description: "Plan customer discovery interviews.",
	},
	{
		ID:          string(questionnaire.ArtifactInterviewInsights),
		Title:       "Interview Insights",
		Description: "Capture what you learned from interviews.",
	},
	{
		ID:          string(questionnaire.ArtifactMarketSizing),
		Title:       "Market Sizing",
		Description: "Estimate TAM, SAM and SOM.",
	},
}

func findModule(id string) (Module, bool) {
	i := slices.IndexFunc(moduleCatalog, func(m Module) bool { return m.ID == id })
	if i < 0 {
		return Module{}, false
	}
	return moduleCatalog[i], true
}

// CanAccessModule reports whether a venture with the given completed modules
// may open module id. Foundational modules are always open; every other
// module waits until all foundational modules are completed.
func CanAccessModule(id string, completed []string) bool {
	m, ok := findModule(id)
	if !ok {
		return false
	}
	if m.IsFoundational {
		return true
	}
	for _, f := range moduleCatalog {
		if f.IsFoundational && !slices.Contains(completed, f.ID) {
			return false
		}
	}
	return true
}

// ListModules renders the catalog for a venture's completed modules.
func ListModules(completed []string) []response_models.ModuleResponse {
	out := make([]response_models.ModuleResponse, 0, len(moduleCatalog))
	for _, m := range moduleCatalog {
		out = append(out, response_models.ModuleResponse{
			ID:             m.ID,
			Title:          m.Title,
			Description:    m.Description,
			IsFoundational: m.IsFoundational,
			Available:      m.Available,
			Accessible:     CanAccessModule(m.ID, completed),
			Completed:      slices.Contains(completed, m.ID),
		})
	}
	return out
}
