package asset

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	asseterrors "github.com/udoykumar/assets-verse-server/internal/asset/errors"
	"github.com/udoykumar/assets-verse-server/internal/shared/contextutil"
	"github.com/udoykumar/assets-verse-server/internal/shared/response"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

//go:generate mockgen -source=asset_service.go -destination=mock/asset_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAssetRequest) (CreateAssetResponse, error)
	List(ctx context.Context, q ListQuery) (ListAssetsResponse, error)
	ByHR(ctx context.Context, hrEmail string) ([]Asset, error)
	ByID(ctx context.Context, id string) (*Asset, error)
	Patch(ctx context.Context, id string, cmd UpdateAssetCommand) (UpdateSummary, error)
	Delete(ctx context.Context, id string) (DeleteSummary, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("asset.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("asset.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAssetRequest) (CreateAssetResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	productType := ProductType(req.ProductType)
	if !productType.IsValid() {
		return CreateAssetResponse{}, asseterrors.ErrInvalidProductType
	}
	if *req.ProductQuantity < 0 {
		return CreateAssetResponse{}, asseterrors.ErrNegativeQuantity
	}

	a := &Asset{
		ProductName:     req.ProductName,
		ProductImage:    req.ProductImage,
		ProductType:     productType,
		ProductQuantity: *req.ProductQuantity,
		// Every unit starts out available.
		AvailableQuantity: *req.ProductQuantity,
		DateAdded:         time.Now(),
		HREmail:           req.HREmail,
		CompanyName:       req.CompanyName,
	}

	id, err := s.repo.Insert(ctx, a)
	if err != nil {
		s.logger.Error("create asset persist failed", zap.String("request_id", rid), zap.Error(err))
		return CreateAssetResponse{}, err
	}
	a.ID = id

	s.logger.Info("create asset success",
		zap.String("request_id", rid),
		zap.String("asset_id", id.Hex()),
		zap.String("hr_email", req.HREmail),
	)
	return CreateAssetResponse{
		Message:    "Asset created",
		InsertedID: id.Hex(),
		Asset:      *a,
	}, nil
}

func (s *service) List(ctx context.Context, q ListQuery) (ListAssetsResponse, error) {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}

	total, err := s.repo.Count(ctx, q)
	if err != nil {
		s.logger.Error("list assets count failed", zap.Error(err))
		return ListAssetsResponse{}, err
	}

	assets, err := s.repo.Find(ctx, q)
	if err != nil {
		s.logger.Error("list assets find failed", zap.Error(err))
		return ListAssetsResponse{}, err
	}
	if assets == nil {
		assets = []Asset{}
	}

	return ListAssetsResponse{
		ListMeta: response.NewListMeta(total, q.Page, q.Limit),
		Assets:   assets,
	}, nil
}

func (s *service) ByHR(ctx context.Context, hrEmail string) ([]Asset, error) {
	return s.repo.FindByHR(ctx, hrEmail)
}

func (s *service) ByID(ctx context.Context, id string) (*Asset, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, asseterrors.ErrInvalidAssetID
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *service) Patch(ctx context.Context, id string, cmd UpdateAssetCommand) (UpdateSummary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateSummary{}, asseterrors.ErrInvalidAssetID
	}
	if cmd.IsEmpty() {
		return UpdateSummary{}, asseterrors.ErrEmptyPatch
	}
	if cmd.Set.ProductType != nil && !ProductType(*cmd.Set.ProductType).IsValid() {
		return UpdateSummary{}, asseterrors.ErrInvalidProductType
	}

	summary, err := s.repo.Update(ctx, oid, cmd)
	if err != nil {
		s.logger.Error("patch asset failed", zap.String("asset_id", id), zap.Error(err))
		return UpdateSummary{}, err
	}

	s.logger.Info("patch asset success",
		zap.String("asset_id", id),
		zap.Int64("modified", summary.ModifiedCount),
	)
	return summary, nil
}

func (s *service) Delete(ctx context.Context, id string) (DeleteSummary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return DeleteSummary{}, asseterrors.ErrInvalidAssetID
	}

	summary, err := s.repo.Delete(ctx, oid)
	if err != nil {
		s.logger.Error("delete asset failed", zap.String("asset_id", id), zap.Error(err))
		return DeleteSummary{}, err
	}

	s.logger.Info("delete asset success", zap.String("asset_id", id))
	return summary, nil
}
