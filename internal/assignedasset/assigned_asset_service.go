package assignedasset

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/shared/contextutil"
)

//go:generate mockgen -source=assigned_asset_service.go -destination=mock/assigned_asset_service_mock.go -package=mock
type Service interface {
	Assign(ctx context.Context, req AssignAssetRequest) (AssignAssetResponse, error)
	ByEmployee(ctx context.Context, email string) ([]AssignedAsset, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("assignedasset.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignedasset.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Assign(ctx context.Context, req AssignAssetRequest) (AssignAssetResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	assigned := &AssignedAsset{
		AssetID:        req.AssetID,
		AssetName:      req.AssetName,
		AssetImage:     req.AssetImage,
		AssetType:      req.AssetType,
		EmployeeEmail:  req.EmployeeEmail,
		EmployeeName:   req.EmployeeName,
		HREmail:        req.HREmail,
		CompanyName:    req.CompanyName,
		AssignmentDate: time.Now(),
		ReturnDate:     nil,
		Status:         StatusAssigned,
	}

	id, err := s.repo.Insert(ctx, assigned)
	if err != nil {
		s.logger.Error("assign asset persist failed", zap.String("request_id", rid), zap.Error(err))
		return AssignAssetResponse{}, err
	}

	s.logger.Info("assign asset success",
		zap.String("request_id", rid),
		zap.String("asset_id", req.AssetID),
		zap.String("employee_email", req.EmployeeEmail),
	)
	return AssignAssetResponse{
		Success:    true,
		Message:    "Asset assigned successfully",
		InsertedID: id.Hex(),
	}, nil
}

func (s *service) ByEmployee(ctx context.Context, email string) ([]AssignedAsset, error) {
	assigned, err := s.repo.FindByEmployee(ctx, email)
	if err != nil {
		s.logger.Error("assigned assets lookup failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	if assigned == nil {
		assigned = []AssignedAsset{}
	}
	return assigned, nil
}
