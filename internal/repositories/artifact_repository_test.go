package repositories_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"founderkit/internal/models/db_models"
	"founderkit/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&db_models.User{}, &db_models.Artifact{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestArtifactRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewArtifactRepository(newTestDB(t))

	a := &db_models.Artifact{
		Type:           "problem_statement",
		Status:         db_models.ArtifactStatusDraft,
		Content:        `{"markdown":"## Problem Statement"}`,
		ModuleID:       "problem",
		IsFoundational: true,
		VentureID:      "demo-venture",
		UserID:         uuid.New(),
	}
	require.NoError(t, repo.Create(ctx, a))
	require.NotEqual(t, uuid.Nil, a.ID)

	found, err := repo.FindByID(ctx, a.ID.String())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, a.Content, found.Content)
	assert.True(t, found.IsFoundational)

	found.Status = db_models.ArtifactStatusComplete
	require.NoError(t, repo.Update(ctx, found))
	again, err := repo.FindByID(ctx, a.ID.String())
	require.NoError(t, err)
	assert.Equal(t, db_models.ArtifactStatusComplete, again.Status)

	deleted, err := repo.Delete(ctx, a.ID.String())
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, a.ID.String())
	require.NoError(t, err)
	assert.False(t, deleted)

	missing, err := repo.FindByID(ctx, a.ID.String())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestArtifactRepository_ListFiltersNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewArtifactRepository(newTestDB(t))
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	seed := []struct {
		venture, kind string
		offset        time.Duration
	}{
		{"v1", "problem_statement", 0},
		{"v1", "customer_persona", time.Hour},
		{"v2", "problem_statement", 2 * time.Hour},
		{"v1", "problem_statement", 3 * time.Hour},
	}
	for _, s := range seed {
		a := &db_models.Artifact{Type: s.kind, Status: db_models.ArtifactStatusDraft, VentureID: s.venture}
		a.CreatedAt = base.Add(s.offset)
		require.NoError(t, repo.Create(ctx, a))
	}

	all, err := repo.List(ctx, repositories.ArtifactFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	v1, err := repo.List(ctx, repositories.ArtifactFilter{VentureID: "v1"})
	require.NoError(t, err)
	require.Len(t, v1, 3)
	assert.True(t, v1[0].CreatedAt.After(v1[1].CreatedAt))
	assert.True(t, v1[1].CreatedAt.After(v1[2].CreatedAt))

	ps, err := repo.List(ctx, repositories.ArtifactFilter{VentureID: "v1", Type: "problem_statement"})
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.True(t, ps[0].CreatedAt.Equal(base.Add(3*time.Hour)))
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewUserRepository(newTestDB(t))

	missing, err := repo.FindByEmail(ctx, "demo@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	u := &db_models.User{Email: "demo@example.com", Name: "Demo User"}
	require.NoError(t, repo.Insert(ctx, u))

	byEmail, err := repo.FindByEmail(ctx, "demo@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, "Demo User", byEmail.Name)

	assert.Error(t, repo.Insert(ctx, &db_models.User{Email: "demo@example.com"}))
}
