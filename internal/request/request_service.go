package request

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/shared/apperror"
	"github.com/udoykumar/assets-verse-server/internal/shared/contextutil"
)

var (
	errInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid request ID",
		http.StatusBadRequest,
	)
	errInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"requestStatus must be 'pending', 'approved' or 'rejected'",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req CreateRequestRequest) (CreateRequestResponse, error)
	ByHR(ctx context.Context, hrEmail string) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, cmd UpdateRequestCommand) (UpdateSummary, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{repo: repo, logger: l}
}

// Submit stamps the request date and the fixed initial pending status.
func (s *service) Submit(ctx context.Context, req CreateRequestRequest) (CreateRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	doc := &Request{
		AssetID:       req.AssetID,
		AssetName:     req.AssetName,
		AssetType:     req.AssetType,
		EmployeeEmail: req.EmployeeEmail,
		EmployeeName:  req.EmployeeName,
		HREmail:       req.HREmail,
		CompanyName:   req.CompanyName,
		Note:          req.Note,
		RequestDate:   time.Now(),
		RequestStatus: StatusPending,
	}

	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		s.logger.Error("submit request persist failed", zap.String("request_id", rid), zap.Error(err))
		return CreateRequestResponse{}, err
	}

	s.logger.Info("submit request success",
		zap.String("request_id", rid),
		zap.String("asset_name", req.AssetName),
		zap.String("employee_email", req.EmployeeEmail),
	)
	return CreateRequestResponse{InsertedID: id.Hex()}, nil
}

func (s *service) ByHR(ctx context.Context, hrEmail string) ([]Request, error) {
	requests, err := s.repo.FindByHR(ctx, hrEmail)
	if err != nil {
		s.logger.Error("list requests failed", zap.String("hr_email", hrEmail), zap.Error(err))
		return nil, err
	}
	if requests == nil {
		requests = []Request{}
	}
	return requests, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, cmd UpdateRequestCommand) (UpdateSummary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateSummary{}, errInvalidRequestID
	}

	status := Status(cmd.RequestStatus)
	if !status.IsValid() {
		return UpdateSummary{}, errInvalidStatus
	}

	summary, err := s.repo.UpdateStatus(ctx, oid, status, time.Now())
	if err != nil {
		s.logger.Error("update request status failed", zap.String("id", id), zap.Error(err))
		return UpdateSummary{}, err
	}

	s.logger.Info("update request status success",
		zap.String("id", id),
		zap.String("status", string(status)),
	)
	return summary, nil
}
