package user

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/shared/contextutil"
	usererrors "github.com/udoykumar/assets-verse-server/internal/user/errors"
)

const (
	defaultPackageLimit = 5
	defaultSubscription = "basic"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	RegisterEmployee(ctx context.Context, req RegisterUserRequest) (RegisterResponse, error)
	RegisterHR(ctx context.Context, req RegisterUserRequest) (RegisterResponse, error)
	GetAll(ctx context.Context) ([]User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetRole(ctx context.Context, email string) (Role, error)
	IsHR(ctx context.Context, email string) (bool, error)
	Patch(ctx context.Context, email string, cmd UpdateUserCommand) (UpdateSummary, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

// RegisterEmployee is idempotent on email: a second registration with
// the same email returns "user exists" instead of erroring.
func (s *service) RegisterEmployee(ctx context.Context, req RegisterUserRequest) (RegisterResponse, error) {
	return s.register(ctx, req, RoleEmployee)
}

func (s *service) RegisterHR(ctx context.Context, req RegisterUserRequest) (RegisterResponse, error) {
	return s.register(ctx, req, RoleHR)
}

func (s *service) register(ctx context.Context, req RegisterUserRequest, role Role) (RegisterResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("role", string(role)),
	)

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("register lookup failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, err
	}
	if existing != nil {
		return RegisterResponse{Message: "user exists"}, nil
	}

	u := &User{
		Name:        req.Name,
		Email:       req.Email,
		Photo:       req.Photo,
		Role:        role,
		CompanyName: req.CompanyName,
		CompanyLogo: req.CompanyLogo,
		CreatedAt:   time.Now(),
	}
	if role == RoleHR {
		limit := defaultPackageLimit
		employees := 0
		u.PackageLimit = &limit
		u.CurrentEmployees = &employees
		u.Subscription = defaultSubscription
	}

	id, err := s.repo.Insert(ctx, u)
	if err != nil {
		s.logger.Error("register persist failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, err
	}

	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("role", string(role)),
	)
	return RegisterResponse{InsertedID: id.Hex()}, nil
}

func (s *service) GetAll(ctx context.Context) ([]User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all users failed", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// GetRole returns an empty role when the user does not exist; the
// client treats that as "not registered yet".
func (s *service) GetRole(ctx context.Context, email string) (Role, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", nil
	}
	return u.Role, nil
}

func (s *service) IsHR(ctx context.Context, email string) (bool, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil && u.Role == RoleHR, nil
}

func (s *service) Patch(ctx context.Context, email string, cmd UpdateUserCommand) (UpdateSummary, error) {
	if cmd.IsEmpty() {
		return UpdateSummary{}, usererrors.ErrEmptyPatch
	}

	summary, err := s.repo.Update(ctx, email, cmd)
	if err != nil {
		s.logger.Error("patch user failed", zap.String("email", email), zap.Error(err))
		return UpdateSummary{}, err
	}

	s.logger.Info("patch user success",
		zap.String("email", email),
		zap.Int64("modified", summary.ModifiedCount),
	)
	return summary, nil
}
