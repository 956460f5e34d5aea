package request_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/udoykumar/assets-verse-server/internal/request"
	"github.com/udoykumar/assets-verse-server/internal/shared/apperror"
)

type fakeRequestRepo struct {
	inserted []*request.Request
	byHR     []request.Request

	updatedID     primitive.ObjectID
	updatedStatus request.Status
	updatedAt     time.Time
}

func (f *fakeRequestRepo) Insert(ctx context.Context, req *request.Request) (primitive.ObjectID, error) {
	f.inserted = append(f.inserted, req)
	return primitive.NewObjectID(), nil
}

func (f *fakeRequestRepo) FindByHR(ctx context.Context, hrEmail string) ([]request.Request, error) {
	return f.byHR, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status request.Status, processedAt time.Time) (request.UpdateSummary, error) {
	f.updatedID = id
	f.updatedStatus = status
	f.updatedAt = processedAt
	return request.UpdateSummary{MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestRequestService_Submit(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRequestRepo{}
	svc := request.NewService(repo)

	resp, err := svc.Submit(ctx, request.CreateRequestRequest{
		AssetName:     "Laptop",
		EmployeeEmail: "rakib@example.com",
		HREmail:       "tania@example.com",
		Note:          "for onboarding",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.InsertedID)

	if assert.Len(t, repo.inserted, 1) {
		stored := repo.inserted[0]
		assert.Equal(t, request.StatusPending, stored.RequestStatus)
		assert.False(t, stored.RequestDate.IsZero())
		assert.Nil(t, stored.ProcessedDate)
	}
}

func TestRequestService_ByHR(t *testing.T) {
	ctx := context.Background()

	t.Run("nil from the store becomes an empty slice", func(t *testing.T) {
		svc := request.NewService(&fakeRequestRepo{})

		requests, err := svc.ByHR(ctx, "tania@example.com")

		assert.NoError(t, err)
		assert.NotNil(t, requests)
		assert.Empty(t, requests)
	})
}

func TestRequestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("approving stamps the processed date", func(t *testing.T) {
		repo := &fakeRequestRepo{}
		svc := request.NewService(repo)

		summary, err := svc.UpdateStatus(ctx, id.Hex(), request.UpdateRequestCommand{RequestStatus: "approved"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), summary.ModifiedCount)
		assert.Equal(t, id, repo.updatedID)
		assert.Equal(t, request.StatusApproved, repo.updatedStatus)
		assert.False(t, repo.updatedAt.IsZero())
	})

	t.Run("status outside the enum is a 400", func(t *testing.T) {
		repo := &fakeRequestRepo{}
		svc := request.NewService(repo)

		_, err := svc.UpdateStatus(ctx, id.Hex(), request.UpdateRequestCommand{RequestStatus: "cancelled"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
		assert.True(t, repo.updatedAt.IsZero())
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		svc := request.NewService(&fakeRequestRepo{})

		_, err := svc.UpdateStatus(ctx, "not-hex", request.UpdateRequestCommand{RequestStatus: "approved"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
	})
}
