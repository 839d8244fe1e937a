package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"founderkit/internal/models/db_models"
	"founderkit/internal/models/request_models"
	"founderkit/internal/models/response_models"
	"founderkit/internal/repositories"
	"founderkit/pkg/metrics"
	"founderkit/pkg/utils"
)

type ArtifactServiceInterface interface {
	CreateArtifact(ctx context.Context, req request_models.CreateArtifactRequest) (*response_models.ArtifactResponse, error)
	ListArtifacts(ctx context.Context, query request_models.ListArtifactsQuery) ([]response_models.ArtifactResponse, error)
	GetArtifact(ctx context.Context, id string) (*response_models.ArtifactResponse, error)
	UpdateArtifact(ctx context.Context, id string, req request_models.UpdateArtifactRequest) (*response_models.ArtifactResponse, error)
	DeleteArtifact(ctx context.Context, id string) error
}

type ArtifactService struct {
	artifactRepo   repositories.ArtifactRepository
	ventureService VentureServiceInterface
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

func NewArtifactService(
	artifactRepo repositories.ArtifactRepository,
	ventureService VentureServiceInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) ArtifactServiceInterface {
	return &ArtifactService{
		artifactRepo:   artifactRepo,
		ventureService: ventureService,
		metrics:        m,
		logger:         logger,
	}
}

func (a *ArtifactService) CreateArtifact(ctx context.Context, req request_models.CreateArtifactRequest) (*response_models.ArtifactResponse, error) {
	status := req.Status
	if status == "" {
		status = db_models.ArtifactStatusDraft
	}
	if !db_models.ValidArtifactStatus(status) {
		return nil, utils.ErrInvalidStatus
	}
	if !isJSONObject(req.Content) {
		return nil, utils.ErrInvalidContent
	}

	venture, err := a.ventureService.EnsureVenture(ctx, req.VentureID)
	if err != nil {
		return nil, err
	}

	artifact := &db_models.Artifact{
		Type:           req.Type,
		Status:         status,
		Content:        string(req.Content),
		ModuleID:       req.ModuleID,
		IsFoundational: req.IsFoundational,
		VentureID:      venture.ID,
		UserID:         venture.UserID,
	}
	if err := a.artifactRepo.Create(ctx, artifact); err != nil {
		return nil, fmt.Errorf("%w: create artifact: %v", utils.ErrDatabaseError, err)
	}

	// A complete artifact is only kept once its module is recorded.
	if artifact.Status == db_models.ArtifactStatusComplete {
		if err := a.ventureService.MarkModuleCompleted(ctx, artifact.VentureID, artifact.Type); err != nil {
			if _, delErr := a.artifactRepo.Delete(ctx, artifact.ID.String()); delErr != nil {
				a.logger.Error("complete artifact left without module progress",
					zap.String("artifact_id", artifact.ID.String()),
					zap.Error(delErr))
			}
			return nil, err
		}
	}

	a.metrics.ArtifactsSaved.WithLabelValues(artifact.Type, artifact.Status).Inc()
	a.logger.Info("artifact created",
		zap.String("artifact_id", artifact.ID.String()),
		zap.String("type", artifact.Type),
		zap.String("status", artifact.Status))
	return toArtifactResponse(artifact), nil
}

func (a *ArtifactService) ListArtifacts(ctx context.Context, query request_models.ListArtifactsQuery) ([]response_models.ArtifactResponse, error) {
	artifacts, err := a.artifactRepo.List(ctx, repositories.ArtifactFilter{
		VentureID: query.VentureID,
		Type:      query.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list artifacts: %v", utils.ErrDatabaseError, err)
	}

	responses := make([]response_models.ArtifactResponse, 0, len(artifacts))
	for i := range artifacts {
		responses = append(responses, *toArtifactResponse(&artifacts[i]))
	}
	return responses, nil
}

func (a *ArtifactService) GetArtifact(ctx context.Context, id string) (*response_models.ArtifactResponse, error) {
	artifact, err := a.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toArtifactResponse(artifact), nil
}

func (a *ArtifactService) UpdateArtifact(ctx context.Context, id string, req request_models.UpdateArtifactRequest) (*response_models.ArtifactResponse, error) {
	artifact, err := a.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !db_models.ValidArtifactStatus(*req.Status) {
			return nil, utils.ErrInvalidStatus
		}
		artifact.Status = *req.Status
	}
	if len(req.Content) > 0 {
		if !isJSONObject(req.Content) {
			return nil, utils.ErrInvalidContent
		}
		artifact.Content = string(req.Content)
	}

	if err := a.artifactRepo.Update(ctx, artifact); err != nil {
		return nil, fmt.Errorf("%w: update artifact: %v", utils.ErrDatabaseError, err)
	}
	a.metrics.ArtifactsSaved.WithLabelValues(artifact.Type, artifact.Status).Inc()

	// Marking is idempotent; it runs on every update that leaves the artifact complete.
	if artifact.Status == db_models.ArtifactStatusComplete {
		if err := a.ventureService.MarkModuleCompleted(ctx, artifact.VentureID, artifact.Type); err != nil {
			return nil, err
		}
	}
	return toArtifactResponse(artifact), nil
}

func (a *ArtifactService) DeleteArtifact(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrInvalidArtifactID
	}
	deleted, err := a.artifactRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: delete artifact: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrArtifactNotFound
	}
	return nil
}

func (a *ArtifactService) find(ctx context.Context, id string) (*db_models.Artifact, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrInvalidArtifactID
	}
	artifact, err := a.artifactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find artifact: %v", utils.ErrDatabaseError, err)
	}
	if artifact == nil {
		return nil, utils.ErrArtifactNotFound
	}
	return artifact, nil
}

func jsonObject(v any) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode artifact content: %w", err)
	}
	return data, nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}

func toArtifactResponse(a *db_models.Artifact) *response_models.ArtifactResponse {
	content := json.RawMessage(a.Content)
	if len(content) == 0 {
		content = json.RawMessage("{}")
	}
	return &response_models.ArtifactResponse{
		ID:             a.ID.String(),
		Type:           a.Type,
		Status:         a.Status,
		Content:        content,
		ModuleID:       a.ModuleID,
		IsFoundational: a.IsFoundational,
		VentureID:      a.VentureID,
		UserID:         a.UserID.String(),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
