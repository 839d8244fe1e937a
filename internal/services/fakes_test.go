package services

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"founderkit/internal/models/db_models"
	"founderkit/internal/models/request_models"
	"founderkit/internal/repositories"
	"founderkit/pkg/metrics"
	"founderkit/pkg/utils"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errStorage = errors.New("storage offline")

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*db_models.User{}}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return errors.New("duplicate email")
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

type fakeVentureRepo struct {
	mu       sync.Mutex
	ventures map[string]*db_models.Venture
	addErr   error
}

func newFakeVentureRepo() *fakeVentureRepo {
	return &fakeVentureRepo{ventures: map[string]*db_models.Venture{}}
}

func (f *fakeVentureRepo) Create(ctx context.Context, venture *db_models.Venture) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *venture
	cp.CompletedModules = slices.Clone(venture.CompletedModules)
	f.ventures[venture.ID] = &cp
	return nil
}

func (f *fakeVentureRepo) FindByID(ctx context.Context, id string) (*db_models.Venture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.ventures[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	cp.CompletedModules = slices.Clone(v.CompletedModules)
	return &cp, nil
}

func (f *fakeVentureRepo) AddCompletedModule(ctx context.Context, id string, module string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	v, ok := f.ventures[id]
	if !ok {
		return errors.New("record not found")
	}
	if !v.HasCompleted(module) {
		v.CompletedModules = append(v.CompletedModules, module)
	}
	return nil
}

type fakeArtifactRepo struct {
	mu        sync.Mutex
	artifacts map[string]*db_models.Artifact
	clock     time.Time
	createErr error
	updateErr error
}

func newFakeArtifactRepo() *fakeArtifactRepo {
	return &fakeArtifactRepo{
		artifacts: map[string]*db_models.Artifact{},
		clock:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeArtifactRepo) Create(ctx context.Context, artifact *db_models.Artifact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if artifact.ID == uuid.Nil {
		artifact.ID = uuid.New()
	}
	f.clock = f.clock.Add(time.Minute)
	artifact.CreatedAt = f.clock
	artifact.UpdatedAt = f.clock
	cp := *artifact
	f.artifacts[artifact.ID.String()] = &cp
	return nil
}

func (f *fakeArtifactRepo) FindByID(ctx context.Context, id string) (*db_models.Artifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.artifacts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeArtifactRepo) List(ctx context.Context, filter repositories.ArtifactFilter) ([]db_models.Artifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Artifact
	for _, a := range f.artifacts {
		if filter.VentureID != "" && a.VentureID != filter.VentureID {
			continue
		}
		if filter.Type != "" && a.Type != filter.Type {
			continue
		}
		out = append(out, *a)
	}
	slices.SortFunc(out, func(a, b db_models.Artifact) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (f *fakeArtifactRepo) Update(ctx context.Context, artifact *db_models.Artifact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *artifact
	f.artifacts[artifact.ID.String()] = &cp
	return nil
}

func (f *fakeArtifactRepo) Delete(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.artifacts[id]; !ok {
		return false, nil
	}
	delete(f.artifacts, id)
	return true, nil
}

func (f *fakeArtifactRepo) all() []db_models.Artifact {
	out, _ := f.List(context.Background(), repositories.ArtifactFilter{})
	return out
}

type fakeCompletionClient struct {
	reply    string
	err      error
	system   string
	messages []request_models.ChatMessage
	calls    int
}

func (f *fakeCompletionClient) Complete(ctx context.Context, system string, messages []request_models.ChatMessage) (string, error) {
	f.calls++
	f.system = system
	f.messages = messages
	return f.reply, f.err
}

func (f *fakeCompletionClient) Provider() string { return "fake" }

var _ utils.CompletionClientInterface = (*fakeCompletionClient)(nil)

type fixture struct {
	users     *fakeUserRepo
	ventures  *fakeVentureRepo
	artifacts *fakeArtifactRepo
	metrics   *metrics.Metrics

	ventureService  VentureServiceInterface
	artifactService ArtifactServiceInterface
}

func newFixture() *fixture {
	f := &fixture{
		users:     newFakeUserRepo(),
		ventures:  newFakeVentureRepo(),
		artifacts: newFakeArtifactRepo(),
		metrics:   metrics.NewNop(),
	}
	logger := zap.NewNop()
	f.ventureService = NewVentureService(f.ventures, f.users, DemoUser{Email: "demo@example.com", Name: "Demo User"}, logger)
	f.artifactService = NewArtifactService(f.artifacts, f.ventureService, f.metrics, logger)
	return f
}
