package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderkit/internal/models/db_models"
	"founderkit/internal/models/request_models"
	"founderkit/pkg/utils"
)

func createRequest(status string) request_models.CreateArtifactRequest {
	return request_models.CreateArtifactRequest{
		Type:           "problem_statement",
		Content:        json.RawMessage(`{"markdown":"## Problem Statement"}`),
		VentureID:      "demo-venture",
		ModuleID:       "problem",
		IsFoundational: true,
		Status:         status,
	}
}

func TestArtifactService_CreateDefaultsToDraft(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.artifactService.CreateArtifact(ctx, createRequest(""))
	require.NoError(t, err)
	assert.Equal(t, db_models.ArtifactStatusDraft, resp.Status)
	assert.JSONEq(t, `{"markdown":"## Problem Statement"}`, string(resp.Content))

	venture, err := f.ventureService.GetVenture(ctx, "demo-venture")
	require.NoError(t, err)
	assert.Equal(t, DemoVentureName, venture.Name)
	assert.Equal(t, venture.UserID.String(), resp.UserID)
	assert.Empty(t, venture.CompletedModules)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ArtifactsSaved.WithLabelValues("problem_statement", "draft")))
}

func TestArtifactService_CompleteMarksModule(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.artifactService.CreateArtifact(ctx, createRequest(db_models.ArtifactStatusComplete))
	require.NoError(t, err)

	venture, err := f.ventureService.GetVenture(ctx, "demo-venture")
	require.NoError(t, err)
	assert.Equal(t, []string{"problem_statement"}, []string(venture.CompletedModules))
}

func TestArtifactService_CreateRejectsBadInput(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.artifactService.CreateArtifact(ctx, createRequest("published"))
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)

	req := createRequest("")
	req.Content = json.RawMessage(`"just text"`)
	_, err = f.artifactService.CreateArtifact(ctx, req)
	assert.ErrorIs(t, err, utils.ErrInvalidContent)

	f.artifacts.createErr = errStorage
	_, err = f.artifactService.CreateArtifact(ctx, createRequest(""))
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestArtifactService_UpdateToComplete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.artifactService.CreateArtifact(ctx, createRequest(""))
	require.NoError(t, err)

	complete := db_models.ArtifactStatusComplete
	updated, err := f.artifactService.UpdateArtifact(ctx, created.ID, request_models.UpdateArtifactRequest{
		Content: json.RawMessage(`{"markdown":"v2"}`),
		Status:  &complete,
	})
	require.NoError(t, err)
	assert.Equal(t, complete, updated.Status)
	assert.JSONEq(t, `{"markdown":"v2"}`, string(updated.Content))

	venture, _ := f.ventureService.GetVenture(ctx, "demo-venture")
	assert.True(t, venture.HasCompleted("problem_statement"))

	contentOnly, err := f.artifactService.UpdateArtifact(ctx, created.ID, request_models.UpdateArtifactRequest{
		Content: json.RawMessage(`{"markdown":"v3"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, complete, contentOnly.Status)
}

func TestArtifactService_GetListDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.artifactService.CreateArtifact(ctx, createRequest(""))
	require.NoError(t, err)
	persona := createRequest("")
	persona.Type = "customer_persona"
	second, err := f.artifactService.CreateArtifact(ctx, persona)
	require.NoError(t, err)
	other := createRequest("")
	other.VentureID = "other"
	_, err = f.artifactService.CreateArtifact(ctx, other)
	require.NoError(t, err)

	list, err := f.artifactService.ListArtifacts(ctx, request_models.ListArtifactsQuery{VentureID: "demo-venture"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	typed, err := f.artifactService.ListArtifacts(ctx, request_models.ListArtifactsQuery{Type: "problem_statement"})
	require.NoError(t, err)
	assert.Len(t, typed, 2)

	got, err := f.artifactService.GetArtifact(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	require.NoError(t, f.artifactService.DeleteArtifact(ctx, first.ID))
	_, err = f.artifactService.GetArtifact(ctx, first.ID)
	assert.ErrorIs(t, err, utils.ErrArtifactNotFound)
	assert.ErrorIs(t, f.artifactService.DeleteArtifact(ctx, first.ID), utils.ErrArtifactNotFound)

	_, err = f.artifactService.GetArtifact(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrInvalidArtifactID)
	_, err = f.artifactService.GetArtifact(ctx, uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrArtifactNotFound)
}

func TestArtifactService_ModuleProgressFailure(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.ventures.addErr = errStorage
	_, err := f.artifactService.CreateArtifact(ctx, createRequest(db_models.ArtifactStatusComplete))
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Empty(t, f.artifacts.all())

	f.ventures.addErr = nil
	created, err := f.artifactService.CreateArtifact(ctx, createRequest(""))
	require.NoError(t, err)

	complete := db_models.ArtifactStatusComplete
	f.ventures.addErr = errStorage
	_, err = f.artifactService.UpdateArtifact(ctx, created.ID, request_models.UpdateArtifactRequest{Status: &complete})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	f.ventures.addErr = nil
	_, err = f.artifactService.UpdateArtifact(ctx, created.ID, request_models.UpdateArtifactRequest{Status: &complete})
	require.NoError(t, err)

	venture, err := f.ventureService.GetVenture(ctx, "demo-venture")
	require.NoError(t, err)
	assert.Equal(t, []string{"problem_statement"}, []string(venture.CompletedModules))
	assert.Len(t, f.artifacts.all(), 1)
}
