package payment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/billing"
	"github.com/udoykumar/assets-verse-server/internal/shared/contextutil"
)

//go:generate mockgen -source=payment_service.go -destination=mock/payment_service_mock.go -package=mock
type Service interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error)
	GetCheckoutSession(ctx context.Context, id string) (billing.Session, error)
	Record(ctx context.Context, req RecordPaymentRequest) (RecordPaymentResponse, error)
}

type service struct {
	repo       Repository
	provider   billing.Provider
	siteDomain string
	logger     *zap.Logger
}

func NewService(repo Repository, provider billing.Provider, siteDomain string, logger ...*zap.Logger) Service {
	l := zap.L().Named("payment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payment.service")
	}
	return &service{
		repo:       repo,
		provider:   provider,
		siteDomain: siteDomain,
		logger:     l,
	}
}

func (s *service) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	url, err := s.provider.CreateCheckoutSession(ctx, billing.CheckoutInput{
		PackageName:   req.PackageName,
		Price:         req.Price,
		Email:         req.Email,
		EmployeeLimit: req.EmployeeLimit,
		SuccessURL:    fmt.Sprintf("%s/dashboard/hr/payment-success?session_id={CHECKOUT_SESSION_ID}", s.siteDomain),
		CancelURL:     fmt.Sprintf("%s/dashboard/hr/upgrade?canceled=true", s.siteDomain),
	})
	if err != nil {
		s.logger.Error("create checkout session failed", zap.String("request_id", rid), zap.Error(err))
		return CheckoutResponse{}, err
	}

	s.logger.Info("checkout session created",
		zap.String("request_id", rid),
		zap.String("package", req.PackageName),
		zap.String("email", req.Email),
	)
	return CheckoutResponse{URL: url}, nil
}

func (s *service) GetCheckoutSession(ctx context.Context, id string) (billing.Session, error) {
	session, err := s.provider.GetCheckoutSession(ctx, id)
	if err != nil {
		s.logger.Error("retrieve checkout session failed", zap.String("session_id", id), zap.Error(err))
		return billing.Session{}, err
	}
	return session, nil
}

// Record is idempotent on transactionId: a duplicate submission is
// acknowledged without inserting. The check is a read-then-write, not
// an atomic constraint.
func (s *service) Record(ctx context.Context, req RecordPaymentRequest) (RecordPaymentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	existing, err := s.repo.FindByTransactionID(ctx, req.TransactionID)
	if err != nil {
		s.logger.Error("payment dedup lookup failed", zap.String("request_id", rid), zap.Error(err))
		return RecordPaymentResponse{}, err
	}
	if existing != nil {
		return RecordPaymentResponse{
			Inserted: false,
			Message:  "Payment already recorded",
		}, nil
	}

	p := &Payment{
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Email:         req.Email,
		PackageName:   req.PackageName,
		EmployeeLimit: req.EmployeeLimit,
		Date:          time.Now(),
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		s.logger.Error("payment persist failed", zap.String("request_id", rid), zap.Error(err))
		return RecordPaymentResponse{}, err
	}

	s.logger.Info("payment recorded",
		zap.String("request_id", rid),
		zap.String("transaction_id", req.TransactionID),
	)
	return RecordPaymentResponse{Inserted: true, InsertedID: id.Hex()}, nil
}
