package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"founderkit/internal/models/db_models"
	"founderkit/internal/models/request_models"
	"founderkit/pkg/utils"
)

func conversation(n int) []request_models.ChatMessage {
	msgs := make([]request_models.ChatMessage, 0, n)
	for i := 0; i < n; i++ {
		role := request_models.ChatRoleUser
		if i%2 == 1 {
			role = request_models.ChatRoleAssistant
		}
		msgs = append(msgs, request_models.ChatMessage{Role: role, Content: "message"})
	}
	return msgs
}

func TestChatService_Reply(t *testing.T) {
	f := newFixture()
	client := &fakeCompletionClient{reply: "Who feels this most?"}
	svc := NewChatService(client, f.artifactService, f.metrics, zap.NewNop())

	resp, err := svc.Reply(context.Background(), request_models.ChatRequest{
		Messages: []request_models.ChatMessage{{Role: "user", Content: "Dentists lose patients to no-shows"}},
		Context: request_models.ConversationContext{
			Stage:           request_models.StageDiscovery,
			PreviousAnswers: map[string]string{"industry": "health"},
			CurrentModule:   "Problem Statement",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Who feels this most?", resp.Content)
	assert.Equal(t, "Dentists lose patients to no-shows", resp.Context.PreviousAnswers["targetCustomer"])
	assert.Equal(t, "health", resp.Context.PreviousAnswers["industry"])
	assert.Equal(t, request_models.StageDiscovery, resp.Context.Stage)

	assert.Contains(t, client.system, "Current module: Problem Statement")
	assert.Contains(t, client.system, "Stage: discovery")
	assert.Contains(t, client.system, "industry: health")
	assert.Len(t, client.messages, 1)
}

func TestChatService_ReplyRequiresUserTurn(t *testing.T) {
	f := newFixture()
	client := &fakeCompletionClient{reply: "ok"}
	svc := NewChatService(client, f.artifactService, f.metrics, zap.NewNop())

	_, err := svc.Reply(context.Background(), request_models.ChatRequest{
		Messages: []request_models.ChatMessage{{Role: "assistant", Content: "Hello"}},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidConversation)
	assert.Zero(t, client.calls)
}

func TestChatService_CompletionErrors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req := request_models.ChatRequest{Messages: conversation(1)}

	notConfigured := NewChatService(utils.NewDisabledCompletionClient("openai"), f.artifactService, f.metrics, zap.NewNop())
	_, err := notConfigured.Reply(ctx, req)
	assert.ErrorIs(t, err, utils.ErrCompletionNotConfigured)

	failing := NewChatService(&fakeCompletionClient{err: errors.New("connection reset")}, f.artifactService, f.metrics, zap.NewNop())
	_, err = failing.Reply(ctx, req)
	assert.ErrorIs(t, err, utils.ErrCompletionFailed)

	_, err = failing.Analyze(ctx, request_models.AnalyzeRequest{ProblemStatement: "x"})
	assert.ErrorIs(t, err, utils.ErrCompletionFailed)
}

func TestAdvanceConversation(t *testing.T) {
	tests := []struct {
		name    string
		stage   string
		history int
		wantKey string
		want    string
	}{
		{"first answer is the customer", request_models.StageDiscovery, 0, "targetCustomer", request_models.StageDiscovery},
		{"second answer is the customer too", "", 2, "targetCustomer", request_models.StageDiscovery},
		{"then the problem", request_models.StageDiscovery, 4, "problemDescription", request_models.StageDiscovery},
		{"then current solutions", request_models.StageDiscovery, 6, "currentSolutions", request_models.StageDiscovery},
		{"refinement after six", request_models.StageDiscovery, 7, "", request_models.StageRefinement},
		{"refinement holds until twelve", request_models.StageRefinement, 12, "", request_models.StageRefinement},
		{"validation after twelve", request_models.StageRefinement, 13, "", request_models.StageValidation},
		{"discovery does not jump to validation", request_models.StageDiscovery, 14, "", request_models.StageRefinement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := request_models.ConversationContext{Stage: tt.stage}
			got := advanceConversation(in, tt.history, "input")

			assert.Equal(t, tt.want, got.Stage)
			if tt.wantKey == "" {
				assert.Empty(t, got.PreviousAnswers)
			} else {
				assert.Equal(t, map[string]string{tt.wantKey: "input"}, got.PreviousAnswers)
			}
			assert.Nil(t, in.PreviousAnswers)
		})
	}
}

func TestParseAnalysis(t *testing.T) {
	text := `## Strengths
- Clear target customer
- Good questions about urgency

**Areas for Improvement:**
1. Quantify the impact

### Suggestions
* Interview ten clinic managers

Questions that need answering:
- How much do no-shows cost?`

	got := parseAnalysis(text)

	assert.Equal(t, text, got.Analysis)
	assert.Equal(t, []string{"Clear target customer", "Good questions about urgency"}, got.Strengths)
	assert.Equal(t, []string{"Quantify the impact"}, got.Improvements)
	assert.Equal(t, []string{"Interview ten clinic managers"}, got.Suggestions)
	assert.Equal(t, []string{"How much do no-shows cost?"}, got.Questions)
}

func TestChatService_Analyze(t *testing.T) {
	f := newFixture()
	client := &fakeCompletionClient{reply: "Strengths:\n- Specific customer\nSuggestions:\n- Add numbers"}
	svc := NewChatService(client, f.artifactService, f.metrics, zap.NewNop())

	resp, err := svc.Analyze(context.Background(), request_models.AnalyzeRequest{ProblemStatement: "Dentists lose money", Stage: "refinement"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Specific customer"}, resp.Strengths)
	assert.Equal(t, []string{"Add numbers"}, resp.Suggestions)
	assert.Empty(t, resp.Improvements)
	require.Len(t, client.messages, 1)
	assert.Contains(t, client.messages[0].Content, "Dentists lose money")
	assert.Contains(t, client.messages[0].Content, "Stage: refinement")
}

func TestChatService_SaveConversation(t *testing.T) {
	f := newFixture()
	svc := NewChatService(&fakeCompletionClient{}, f.artifactService, f.metrics, zap.NewNop())

	saved, err := svc.SaveConversation(context.Background(), request_models.SaveConversationRequest{
		VentureID: "demo-venture",
		Messages: []request_models.ChatMessage{
			{Role: "user", Content: "Dental clinics"},
			{Role: "assistant", Content: "What hurts?"},
			{Role: "user", Content: "No-shows"},
		},
		Context: request_models.ConversationContext{
			Stage:           request_models.StageDiscovery,
			PreviousAnswers: map[string]string{"targetCustomer": "Dental clinics"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.ArtifactStatusComplete, saved.Status)
	assert.True(t, saved.IsFoundational)
	assert.Equal(t, "problem", saved.ModuleID)

	var content struct {
		Statement    string                       `json:"statement"`
		Conversation []request_models.ChatMessage `json:"conversation"`
	}
	require.NoError(t, json.Unmarshal(saved.Content, &content))
	assert.Contains(t, content.Statement, "**Target Customer**: Dental clinics")
	assert.Contains(t, content.Statement, "**Core Problem**: To be defined")
	assert.Contains(t, content.Statement, "1. Dental clinics\n2. No-shows")
	assert.Len(t, content.Conversation, 3)

	venture, err := f.ventureService.GetVenture(context.Background(), "demo-venture")
	require.NoError(t, err)
	assert.True(t, venture.HasCompleted("problem_statement"))
}
