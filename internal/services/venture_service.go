package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"founderkit/internal/models/db_models"
	"founderkit/internal/models/request_models"
	"founderkit/internal/models/response_models"
	"founderkit/internal/repositories"
	"founderkit/pkg/utils"
)

const DemoVentureName = "Demo Venture"

type VentureServiceInterface interface {
	GetVenture(ctx context.Context, id string) (*db_models.Venture, error)
	CreateVenture(ctx context.Context, req request_models.CreateVentureRequest) (*db_models.Venture, error)
	// EnsureVenture returns the venture, creating a demo venture owned by the
	// demo user when it does not exist yet.
	EnsureVenture(ctx context.Context, id string) (*db_models.Venture, error)
	MarkModuleCompleted(ctx context.Context, ventureID string, module string) error
	Progress(ctx context.Context, ventureID string) (*response_models.VentureProgressResponse, error)
}

type DemoUser struct {
	Email string
	Name  string
}

type VentureService struct {
	ventureRepo repositories.VentureRepository
	userRepo    repositories.UserRepository
	demoUser    DemoUser
	logger      *zap.Logger
}

func NewVentureService(
	ventureRepo repositories.VentureRepository,
	userRepo repositories.UserRepository,
	demoUser DemoUser,
	logger *zap.Logger,
) VentureServiceInterface {
	return &VentureService{
		ventureRepo: ventureRepo,
		userRepo:    userRepo,
		demoUser:    demoUser,
		logger:      logger,
	}
}

func (v *VentureService) GetVenture(ctx context.Context, id string) (*db_models.Venture, error) {
	venture, err := v.ventureRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find venture: %v", utils.ErrDatabaseError, err)
	}
	if venture == nil {
		return nil, utils.ErrVentureNotFound
	}
	return venture, nil
}

func (v *VentureService) CreateVenture(ctx context.Context, req request_models.CreateVentureRequest) (*db_models.Venture, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = uuid.NewString()
	}

	existing, err := v.ventureRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find venture: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrVentureExists
	}

	owner, err := v.ensureDemoUser(ctx)
	if err != nil {
		return nil, err
	}

	venture := &db_models.Venture{
		ID:               id,
		Name:             req.Name,
		Type:             req.Type,
		Industry:         req.Industry,
		Country:          req.Country,
		Description:      req.Description,
		UserID:           owner.ID,
		CompletedModules: []string{},
	}
	if err := v.ventureRepo.Create(ctx, venture); err != nil {
		return nil, fmt.Errorf("%w: create venture: %v", utils.ErrDatabaseError, err)
	}
	v.logger.Info("venture created", zap.String("venture_id", id))
	return venture, nil
}

func (v *VentureService) EnsureVenture(ctx context.Context, id string) (*db_models.Venture, error) {
	venture, err := v.ventureRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find venture: %v", utils.ErrDatabaseError, err)
	}
	if venture != nil {
		return venture, nil
	}

	owner, err := v.ensureDemoUser(ctx)
	if err != nil {
		return nil, err
	}
	venture = &db_models.Venture{
		ID:               id,
		Name:             DemoVentureName,
		UserID:           owner.ID,
		CompletedModules: []string{},
	}
	if err := v.ventureRepo.Create(ctx, venture); err != nil {
		return nil, fmt.Errorf("%w: create venture: %v", utils.ErrDatabaseError, err)
	}
	v.logger.Info("demo venture created", zap.String("venture_id", id))
	return venture, nil
}

func (v *VentureService) MarkModuleCompleted(ctx context.Context, ventureID string, module string) error {
	if err := v.ventureRepo.AddCompletedModule(ctx, ventureID, module); err != nil {
		return fmt.Errorf("%w: mark module completed: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (v *VentureService) Progress(ctx context.Context, ventureID string) (*response_models.VentureProgressResponse, error) {
	venture, err := v.GetVenture(ctx, ventureID)
	if err != nil {
		return nil, err
	}
	completed := []string(venture.CompletedModules)
	if completed == nil {
		completed = []string{}
	}
	return &response_models.VentureProgressResponse{
		VentureID:        venture.ID,
		CompletedModules: completed,
		Modules:          ListModules(completed),
	}, nil
}

func (v *VentureService) ensureDemoUser(ctx context.Context) (*db_models.User, error) {
	user, err := v.userRepo.FindByEmail(ctx, v.demoUser.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: find demo user: %v", utils.ErrDatabaseError, err)
	}
	if user != nil {
		return user, nil
	}

	user = &db_models.User{Email: v.demoUser.Email, Name: v.demoUser.Name}
	if err := v.userRepo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: create demo user: %v", utils.ErrDatabaseError, err)
	}
	return user, nil
}
