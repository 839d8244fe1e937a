package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"founderkit/internal/models/db_models"
	"founderkit/internal/models/request_models"
	"founderkit/internal/models/response_models"
	"founderkit/internal/questionnaire"
	"founderkit/internal/repositories"
	"founderkit/pkg/metrics"
	"founderkit/pkg/utils"
)

type QuestionnaireServiceInterface interface {
	ListQuestions(artifactType string) (*response_models.QuestionBankResponse, error)
	Start(ctx context.Context, req request_models.StartQuestionnaireRequest) (*response_models.QuestionnaireResponse, error)
	Get(ctx context.Context, sessionID string) (*response_models.QuestionnaireResponse, error)
	Submit(ctx context.Context, sessionID string, answer string) (*response_models.QuestionnaireResponse, error)
	Back(ctx context.Context, sessionID string) (*response_models.QuestionnaireResponse, error)
	Restart(ctx context.Context, sessionID string) (*response_models.QuestionnaireResponse, error)
	SaveDraft(ctx context.Context, sessionID string) (*response_models.QuestionnaireResponse, error)
	Discard(ctx context.Context, sessionID string) error
}

type artifactModule struct {
	moduleID     string
	foundational bool
}

var artifactModules = map[questionnaire.ArtifactType]artifactModule{
	questionnaire.ArtifactProblemStatement: {moduleID: "problem", foundational: true},
	questionnaire.ArtifactCustomerPersona:  {moduleID: "problem", foundational: false},
}

// artifactPayload is the JSON stored as artifact content.
type artifactPayload struct {
	Document questionnaire.Content   `json:"document"`
	Markdown string                  `json:"markdown"`
	Answers  questionnaire.AnswerSet `json:"answers"`
}

type QuestionnaireService struct {
	sessionRepo     repositories.SessionRepository
	artifactService ArtifactServiceInterface
	ventureService  VentureServiceInterface
	metrics         *metrics.Metrics
	logger          *zap.Logger
	now             func() time.Time
}

func NewQuestionnaireService(
	sessionRepo repositories.SessionRepository,
	artifactService ArtifactServiceInterface,
	ventureService VentureServiceInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) QuestionnaireServiceInterface {
	return &QuestionnaireService{
		sessionRepo:     sessionRepo,
		artifactService: artifactService,
		ventureService:  ventureService,
		metrics:         m,
		logger:          logger,
		now:             time.Now,
	}
}

func (q *QuestionnaireService) ListQuestions(artifactType string) (*response_models.QuestionBankResponse, error) {
	bank, err := questionnaire.ListQuestions(questionnaire.ArtifactType(artifactType))
	if err != nil {
		return nil, err
	}
	views := make([]response_models.QuestionView, 0, len(bank))
	for _, question := range bank {
		views = append(views, response_models.NewQuestionView(question))
	}
	return &response_models.QuestionBankResponse{ArtifactType: artifactType, Questions: views}, nil
}

func (q *QuestionnaireService) Start(ctx context.Context, req request_models.StartQuestionnaireRequest) (*response_models.QuestionnaireResponse, error) {
	session, err := questionnaire.NewSession(questionnaire.ArtifactType(req.ArtifactType))
	if err != nil {
		return nil, err
	}

	completed, err := q.completedModules(ctx, req.VentureID)
	if err != nil {
		return nil, err
	}
	if !CanAccessModule(req.ArtifactType, completed) {
		return nil, utils.ErrModuleLocked
	}

	now := q.now().UTC()
	rec := &db_models.QuestionnaireSession{
		ID:        uuid.NewString(),
		VentureID: req.VentureID,
		Session:   session,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := q.save(ctx, rec); err != nil {
		return nil, err
	}

	q.metrics.SessionsStarted.WithLabelValues(req.ArtifactType).Inc()
	q.logger.Info("questionnaire started",
		zap.String("session_id", rec.ID),
		zap.String("artifact_type", req.ArtifactType),
		zap.String("venture_id", req.VentureID))
	return q.view(rec, nil), nil
}

func (q *QuestionnaireService) Get(ctx context.Context, sessionID string) (*response_models.QuestionnaireResponse, error) {
	rec, err := q.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return q.view(rec, nil), nil
}

// Submit answers the current question. The session is advanced on a copy
// and only stored once the artifact, if the answer completes the session,
// has been saved. A failed save leaves the stored session untouched.
func (q *QuestionnaireService) Submit(ctx context.Context, sessionID string, answer string) (*response_models.QuestionnaireResponse, error) {
	rec, err := q.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	artifactType := string(rec.Session.ArtifactType())

	working := rec.Session.Clone()
	before := len(working.Extensions())

	content, err := working.SubmitAnswer(answer)
	if err != nil {
		if errors.Is(err, questionnaire.ErrValidation) {
			q.metrics.AnswersSubmitted.WithLabelValues(artifactType, "rejected").Inc()
		}
		return nil, err
	}
	q.metrics.AnswersSubmitted.WithLabelValues(artifactType, "accepted").Inc()

	if extensions := working.Extensions(); len(extensions) > before {
		for _, e := range extensions[before:] {
			q.metrics.FollowUpsInserted.WithLabelValues(e.Question.ID).Inc()
			q.logger.Debug("follow-up inserted",
				zap.String("session_id", rec.ID),
				zap.String("question_id", e.Question.ID),
				zap.String("triggered_by", e.TriggeredBy))
		}
	}

	var saved *response_models.ArtifactResponse
	if content != nil {
		saved, err = q.complete(ctx, rec, working, content)
		if err != nil {
			q.logger.Warn("questionnaire completion not saved",
				zap.String("session_id", rec.ID),
				zap.Error(err))
			return nil, fmt.Errorf("%w: %v", utils.ErrCollaboratorFailure, err)
		}
		id := uuid.MustParse(saved.ID)
		rec.ArtifactID = &id
		rec.DraftArtifactID = nil
		q.logger.Info("questionnaire completed",
			zap.String("session_id", rec.ID),
			zap.String("artifact_id", saved.ID))
	}

	rec.Session = working
	if err := q.save(ctx, rec); err != nil {
		return nil, err
	}
	return q.view(rec, saved), nil
}

func (q *QuestionnaireService) Back(ctx context.Context, sessionID string) (*response_models.QuestionnaireResponse, error) {
	rec, err := q.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := rec.Session.GoBack(); err != nil {
		return nil, err
	}
	if err := q.save(ctx, rec); err != nil {
		return nil, err
	}
	return q.view(rec, nil), nil
}

// Restart clears answers and follow-ups. Artifacts saved earlier are kept but
// the session no longer points at them.
func (q *QuestionnaireService) Restart(ctx context.Context, sessionID string) (*response_models.QuestionnaireResponse, error) {
	rec, err := q.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	rec.Session.Restart()
	rec.DraftArtifactID = nil
	rec.ArtifactID = nil
	if err := q.save(ctx, rec); err != nil {
		return nil, err
	}
	return q.view(rec, nil), nil
}

// SaveDraft stores the answers given so far as a draft artifact. The first
// call creates the artifact; later calls overwrite it.
func (q *QuestionnaireService) SaveDraft(ctx context.Context, sessionID string) (*response_models.QuestionnaireResponse, error) {
	rec, err := q.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if rec.Session.Completed() {
		return nil, questionnaire.ErrSessionCompleted
	}

	content, err := rec.Session.CompleteEarly()
	if err != nil {
		return nil, err
	}
	saved, err := q.persist(ctx, rec, rec.Session, content, db_models.ArtifactStatusDraft)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrCollaboratorFailure, err)
	}

	id := uuid.MustParse(saved.ID)
	rec.DraftArtifactID = &id
	if err := q.save(ctx, rec); err != nil {
		return nil, err
	}
	q.logger.Info("questionnaire draft saved",
		zap.String("session_id", rec.ID),
		zap.String("artifact_id", saved.ID))
	return q.view(rec, saved), nil
}

func (q *QuestionnaireService) Discard(ctx context.Context, sessionID string) error {
	if _, err := q.load(ctx, sessionID); err != nil {
		return err
	}
	if err := q.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: delete session: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

// complete saves the finished artifact. A new artifact is stored as a draft
// and remembered in the session record first, so a retry after any later
// failure updates that artifact instead of creating another one.
func (q *QuestionnaireService) complete(
	ctx context.Context,
	rec *db_models.QuestionnaireSession,
	session *questionnaire.Session,
	content questionnaire.Content,
) (*response_models.ArtifactResponse, error) {
	if rec.DraftArtifactID == nil {
		draft, err := q.persist(ctx, rec, session, content, db_models.ArtifactStatusDraft)
		if err != nil {
			return nil, err
		}
		id := uuid.MustParse(draft.ID)
		rec.DraftArtifactID = &id
		if err := q.save(ctx, rec); err != nil {
			return nil, err
		}
	}
	return q.persist(ctx, rec, session, content, db_models.ArtifactStatusComplete)
}

// completedModules returns the modules a venture has completed. A venture
// that does not exist yet has completed nothing.
func (q *QuestionnaireService) completedModules(ctx context.Context, ventureID string) ([]string, error) {
	venture, err := q.ventureService.GetVenture(ctx, ventureID)
	if errors.Is(err, utils.ErrVentureNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return venture.CompletedModules, nil
}

// persist writes content either over the remembered draft or as a new
// artifact. A draft deleted in the meantime is recreated.
func (q *QuestionnaireService) persist(
	ctx context.Context,
	rec *db_models.QuestionnaireSession,
	session *questionnaire.Session,
	content questionnaire.Content,
	status string,
) (*response_models.ArtifactResponse, error) {
	payload, err := json.Marshal(artifactPayload{
		Document: content,
		Markdown: content.Markdown(),
		Answers:  session.Answers(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode artifact content: %w", err)
	}

	if rec.DraftArtifactID != nil {
		updated, err := q.artifactService.UpdateArtifact(ctx, rec.DraftArtifactID.String(), request_models.UpdateArtifactRequest{
			Content: payload,
			Status:  &status,
		})
		if !errors.Is(err, utils.ErrArtifactNotFound) {
			return updated, err
		}
	}

	module := artifactModules[session.ArtifactType()]
	return q.artifactService.CreateArtifact(ctx, request_models.CreateArtifactRequest{
		Type:           string(session.ArtifactType()),
		Content:        payload,
		VentureID:      rec.VentureID,
		ModuleID:       module.moduleID,
		IsFoundational: module.foundational,
		Status:         status,
	})
}

func (q *QuestionnaireService) load(ctx context.Context, sessionID string) (*db_models.QuestionnaireSession, error) {
	rec, err := q.sessionRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: load session: %v", utils.ErrDatabaseError, err)
	}
	if rec == nil {
		return nil, utils.ErrSessionNotFound
	}
	return rec, nil
}

func (q *QuestionnaireService) save(ctx context.Context, rec *db_models.QuestionnaireSession) error {
	rec.UpdatedAt = q.now().UTC()
	if err := q.sessionRepo.Save(ctx, rec); err != nil {
		return fmt.Errorf("%w: save session: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (q *QuestionnaireService) view(rec *db_models.QuestionnaireSession, artifact *response_models.ArtifactResponse) *response_models.QuestionnaireResponse {
	s := rec.Session
	resp := &response_models.QuestionnaireResponse{
		SessionID:    rec.ID,
		ArtifactType: string(s.ArtifactType()),
		VentureID:    rec.VentureID,
		State:        string(s.State()),
		IsComplete:   s.Completed(),
		PriorAnswer:  s.PriorAnswer(),
		Progress:     s.Progress(),
		Answers:      s.Answers(),
		Artifact:     artifact,
	}
	if question, ok := s.CurrentQuestion(); ok {
		view := response_models.NewQuestionView(question)
		resp.Question = &view
	}
	for _, e := range s.Extensions() {
		resp.FollowUps = append(resp.FollowUps, e.Question.ID)
	}
	if rec.DraftArtifactID != nil {
		resp.DraftArtifactID = rec.DraftArtifactID.String()
	}
	if rec.ArtifactID != nil {
		resp.ArtifactID = rec.ArtifactID.String()
	}
	return resp
}
