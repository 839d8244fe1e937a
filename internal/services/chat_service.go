package services

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"founderkit/internal/models/db_models"
	"founderkit/internal/models/request_models"
	"founderkit/internal/models/response_models"
	"founderkit/internal/questionnaire"
	"founderkit/pkg/metrics"
	"founderkit/pkg/utils"
)

type ChatServiceInterface interface {
	Reply(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error)
	Analyze(ctx context.Context, req request_models.AnalyzeRequest) (*response_models.AnalysisResponse, error)
	SaveConversation(ctx context.Context, req request_models.SaveConversationRequest) (*response_models.ArtifactResponse, error)
}

// Conversation context keys filled from the founder's first answers.
const (
	contextTargetCustomer     = "targetCustomer"
	contextProblemDescription = "problemDescription"
	contextCurrentSolutions   = "currentSolutions"
)

const mentorPrompt = `You are an experienced startup mentor helping founders refine their problem statements through iterative conversation. Your role is to:

1. Ask thoughtful, probing questions that help founders think deeper
2. Challenge assumptions constructively
3. Help identify blind spots
4. Guide them toward clearer, more specific problem definitions
5. Provide feedback on their responses
6. Suggest improvements and refinements
`

const mentorGuidelines = `Guidelines:
- Be conversational and encouraging
- Ask one focused question at a time
- Provide specific examples when helpful
- If their answer is vague, ask for clarification
- Help them move from broad problems to specific, solvable ones
- When appropriate, summarize what you've learned and ask for confirmation
- If they seem stuck, provide gentle suggestions or frameworks`

const analysisPrompt = `You are an expert startup advisor analyzing problem statements.
Provide specific, actionable feedback on the problem statement focusing on:
1. Clarity and specificity
2. Target customer definition
3. Problem severity and urgency
4. Solution opportunity
5. Market potential

Be constructive and suggest specific improvements. Format your response with clear sections.`

type ChatService struct {
	client          utils.CompletionClientInterface
	artifactService ArtifactServiceInterface
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

func NewChatService(
	client utils.CompletionClientInterface,
	artifactService ArtifactServiceInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) ChatServiceInterface {
	return &ChatService{
		client:          client,
		artifactService: artifactService,
		metrics:         m,
		logger:          logger,
	}
}

// Reply sends the conversation to the mentor model. The returned context
// records what the latest user message answered and the stage reached.
func (c *ChatService) Reply(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error) {
	if len(req.Messages) == 0 || req.Messages[len(req.Messages)-1].Role != request_models.ChatRoleUser {
		return nil, utils.ErrInvalidConversation
	}

	content, err := c.complete(ctx, buildMentorPrompt(req.Context), req.Messages)
	if err != nil {
		return nil, err
	}

	history := len(req.Messages) - 1
	next := advanceConversation(req.Context, history, req.Messages[history].Content)
	return &response_models.ChatResponse{Content: content, Context: next}, nil
}

func (c *ChatService) Analyze(ctx context.Context, req request_models.AnalyzeRequest) (*response_models.AnalysisResponse, error) {
	user := fmt.Sprintf(`Please analyze this problem statement and provide detailed feedback:

%s

Stage: %s

Provide:
1. Strengths (what's good)
2. Areas for improvement
3. Specific suggestions to make it stronger
4. Questions that need answering`, req.ProblemStatement, req.Stage)

	content, err := c.complete(ctx, analysisPrompt, []request_models.ChatMessage{
		{Role: request_models.ChatRoleUser, Content: user},
	})
	if err != nil {
		return nil, err
	}
	return parseAnalysis(content), nil
}

// SaveConversation turns a mentor conversation into a completed problem
// statement artifact.
func (c *ChatService) SaveConversation(ctx context.Context, req request_models.SaveConversationRequest) (*response_models.ArtifactResponse, error) {
	statement := conversationStatement(req.Messages, req.Context.PreviousAnswers)
	payload, err := jsonObject(map[string]any{
		"statement":    statement,
		"conversation": req.Messages,
		"context":      req.Context,
	})
	if err != nil {
		return nil, err
	}

	return c.artifactService.CreateArtifact(ctx, request_models.CreateArtifactRequest{
		Type:           string(questionnaire.ArtifactProblemStatement),
		Content:        payload,
		VentureID:      req.VentureID,
		ModuleID:       "problem",
		IsFoundational: true,
		Status:         db_models.ArtifactStatusComplete,
	})
}

func (c *ChatService) complete(ctx context.Context, system string, messages []request_models.ChatMessage) (string, error) {
	provider := c.client.Provider()
	start := time.Now()

	content, err := c.client.Complete(ctx, system, messages)
	c.metrics.CompletionDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		c.metrics.CompletionRequests.WithLabelValues(provider, "ok").Inc()
		return content, nil
	case errors.Is(err, utils.ErrCompletionNotConfigured):
		c.metrics.CompletionRequests.WithLabelValues(provider, "not_configured").Inc()
		return "", err
	default:
		c.metrics.CompletionRequests.WithLabelValues(provider, "error").Inc()
		c.logger.Warn("completion failed", zap.String("provider", provider), zap.Error(err))
		if !errors.Is(err, utils.ErrCompletionFailed) {
			err = fmt.Errorf("%w: %v", utils.ErrCompletionFailed, err)
		}
		return "", err
	}
}

func buildMentorPrompt(cc request_models.ConversationContext) string {
	module := cc.CurrentModule
	if module == "" {
		module = "Problem Statement"
	}
	stage := cc.Stage
	if stage == "" {
		stage = "initial"
	}

	var b strings.Builder
	b.WriteString(mentorPrompt)
	fmt.Fprintf(&b, "\nCurrent module: %s\nStage: %s\n", module, stage)

	if len(cc.PreviousAnswers) > 0 {
		b.WriteString("\n\nPrevious context from the founder:\n")
		keys := make([]string, 0, len(cc.PreviousAnswers))
		for key := range cc.PreviousAnswers {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			fmt.Fprintf(&b, "%s: %s\n", key, cc.PreviousAnswers[key])
		}
	}

	b.WriteString("\n\n")
	b.WriteString(mentorGuidelines)
	return b.String()
}

// advanceConversation fills the context from the user's input based on how
// many messages preceded it, then moves the stage forward.
func advanceConversation(cc request_models.ConversationContext, history int, userInput string) request_models.ConversationContext {
	next := cc
	next.PreviousAnswers = maps.Clone(cc.PreviousAnswers)
	if next.PreviousAnswers == nil {
		next.PreviousAnswers = map[string]string{}
	}
	if next.Stage == "" {
		next.Stage = request_models.StageDiscovery
	}

	switch {
	case history < 3:
		next.PreviousAnswers[contextTargetCustomer] = userInput
	case history < 5:
		next.PreviousAnswers[contextProblemDescription] = userInput
	case history < 7:
		next.PreviousAnswers[contextCurrentSolutions] = userInput
	}

	switch {
	case history > 6 && next.Stage == request_models.StageDiscovery:
		next.Stage = request_models.StageRefinement
	case history > 12 && next.Stage == request_models.StageRefinement:
		next.Stage = request_models.StageValidation
	}
	return next
}

func conversationStatement(messages []request_models.ChatMessage, answers map[string]string) string {
	value := func(key string) string {
		if v := strings.TrimSpace(answers[key]); v != "" {
			return v
		}
		return questionnaire.DefaultText
	}

	var b strings.Builder
	b.WriteString("## Problem Statement\n\n")
	fmt.Fprintf(&b, "**Target Customer**: %s\n\n", value(contextTargetCustomer))
	fmt.Fprintf(&b, "**Core Problem**: %s\n\n", value(contextProblemDescription))
	fmt.Fprintf(&b, "**Current Solutions**: %s\n\n", value(contextCurrentSolutions))
	b.WriteString("**Our Opportunity**: Based on our conversation, there's an opportunity to create a solution that addresses these unmet needs more effectively.\n\n")
	b.WriteString("### Key Insights from Our Discussion:\n")

	n := 0
	for _, m := range messages {
		if m.Role != request_models.ChatRoleUser {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d. %s\n", n, m.Content)
	}
	return strings.TrimSpace(b.String())
}

var listMarker = regexp.MustCompile(`^(?:[-*•]+|\d+[.)])\s*`)

const maxHeadingLen = 40

// parseAnalysis splits the advisor reply into sections. A short line naming
// a section starts it unless it is a bullet; other non-blank lines belong to
// the current section.
func parseAnalysis(text string) *response_models.AnalysisResponse {
	out := &response_models.AnalysisResponse{
		Analysis:     text,
		Strengths:    []string{},
		Improvements: []string{},
		Suggestions:  []string{},
		Questions:    []string{},
	}

	var current *[]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullet := strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "• ")
		item := strings.TrimSpace(strings.Trim(listMarker.ReplaceAllString(line, ""), "#*: "))

		if !bullet && len(item) <= maxHeadingLen {
			if section := analysisSection(out, strings.ToLower(item)); section != nil {
				current = section
				continue
			}
		}
		if current != nil && item != "" {
			*current = append(*current, item)
		}
	}
	return out
}

func analysisSection(out *response_models.AnalysisResponse, heading string) *[]string {
	switch {
	case strings.Contains(heading, "strength"):
		return &out.Strengths
	case strings.Contains(heading, "improvement"):
		return &out.Improvements
	case strings.Contains(heading, "suggestion"):
		return &out.Suggestions
	case strings.Contains(heading, "question"):
		return &out.Questions
	}
	return nil
}
