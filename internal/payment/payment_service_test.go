package payment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/udoykumar/assets-verse-server/internal/billing"
	"github.com/udoykumar/assets-verse-server/internal/payment"
)

type fakePaymentRepo struct {
	inserted []*payment.Payment
	existing map[string]*payment.Payment
	findErr  error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{existing: map[string]*payment.Payment{}}
}

func (f *fakePaymentRepo) Insert(ctx context.Context, p *payment.Payment) (primitive.ObjectID, error) {
	f.inserted = append(f.inserted, p)
	id := primitive.NewObjectID()
	f.existing[p.TransactionID] = p
	return id, nil
}

func (f *fakePaymentRepo) FindByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.existing[transactionID], nil
}

type fakeProvider struct {
	lastInput billing.CheckoutInput
	url       string
	err       error
}

func (f *fakeProvider) CreateCheckoutSession(ctx context.Context, in billing.CheckoutInput) (string, error) {
	f.lastInput = in
	return f.url, f.err
}

func (f *fakeProvider) GetCheckoutSession(ctx context.Context, id string) (billing.Session, error) {
	return billing.Session{ID: id, Status: "complete"}, f.err
}

func TestPaymentService_CreateCheckoutSession(t *testing.T) {
	ctx := context.Background()

	t.Run("builds redirect URLs from the site domain", func(t *testing.T) {
		provider := &fakeProvider{url: "https://checkout.stripe.com/c/pay/cs_test_123"}
		svc := payment.NewService(newFakePaymentRepo(), provider, "https://assetverse.example.com")

		resp, err := svc.CreateCheckoutSession(ctx, payment.CheckoutRequest{
			PackageName:   "premium",
			Price:         15,
			Email:         "tania@example.com",
			EmployeeLimit: 20,
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", resp.URL)
		assert.Equal(t, "premium", provider.lastInput.PackageName)
		assert.Equal(t, float64(15), provider.lastInput.Price)
		assert.Equal(t,
			"https://assetverse.example.com/dashboard/hr/payment-success?session_id={CHECKOUT_SESSION_ID}",
			provider.lastInput.SuccessURL,
		)
		assert.Equal(t,
			"https://assetverse.example.com/dashboard/hr/upgrade?canceled=true",
			provider.lastInput.CancelURL,
		)
	})

	t.Run("fractional plan price reaches the provider intact", func(t *testing.T) {
		provider := &fakeProvider{url: "https://checkout.stripe.com/c/pay/cs_test_456"}
		svc := payment.NewService(newFakePaymentRepo(), provider, "https://assetverse.example.com")

		_, err := svc.CreateCheckoutSession(ctx, payment.CheckoutRequest{
			PackageName: "starter",
			Price:       15.5,
			Email:       "tania@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, 15.5, provider.lastInput.Price)
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		provider := &fakeProvider{err: errors.New("stripe unavailable")}
		svc := payment.NewService(newFakePaymentRepo(), provider, "https://assetverse.example.com")

		_, err := svc.CreateCheckoutSession(ctx, payment.CheckoutRequest{
			PackageName: "premium",
			Price:       15,
			Email:       "tania@example.com",
		})

		assert.Error(t, err)
	})
}

func TestPaymentService_Record(t *testing.T) {
	ctx := context.Background()
	req := payment.RecordPaymentRequest{
		TransactionID: "pi_123",
		Amount:        15,
		Email:         "tania@example.com",
		PackageName:   "premium",
	}

	t.Run("first submission inserts", func(t *testing.T) {
		repo := newFakePaymentRepo()
		svc := payment.NewService(repo, &fakeProvider{}, "https://assetverse.example.com")

		resp, err := svc.Record(ctx, req)

		assert.NoError(t, err)
		assert.True(t, resp.Inserted)
		assert.NotEmpty(t, resp.InsertedID)
		assert.Len(t, repo.inserted, 1)
		assert.False(t, repo.inserted[0].Date.IsZero())
	})

	t.Run("duplicate transactionId is acknowledged without inserting", func(t *testing.T) {
		repo := newFakePaymentRepo()
		svc := payment.NewService(repo, &fakeProvider{}, "https://assetverse.example.com")

		_, err := svc.Record(ctx, req)
		assert.NoError(t, err)

		resp, err := svc.Record(ctx, req)

		assert.NoError(t, err)
		assert.False(t, resp.Inserted)
		assert.Equal(t, "Payment already recorded", resp.Message)
		assert.Empty(t, resp.InsertedID)
		assert.Len(t, repo.inserted, 1)
	})

	t.Run("dedup lookup failure propagates", func(t *testing.T) {
		repo := newFakePaymentRepo()
		repo.findErr = errors.New("mongo down")
		svc := payment.NewService(repo, &fakeProvider{}, "https://assetverse.example.com")

		_, err := svc.Record(ctx, req)

		assert.Error(t, err)
		assert.Empty(t, repo.inserted)
	})
}
