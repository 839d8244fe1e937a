package response_models

type ModuleResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	IsFoundational bool   `json:"isFoundational"`
	Available      bool   `json:"available"`
	Accessible     bool   `json:"accessible"`
	Completed      bool   `json:"completed"`
}

type VentureProgressResponse struct {
	VentureID        string           `json:"ventureId"`
	CompletedModules []string         `json:"completedModules"`
	Modules          []ModuleResponse `json:"modules"`
}
