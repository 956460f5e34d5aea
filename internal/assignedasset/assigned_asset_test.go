package assignedasset_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/udoykumar/assets-verse-server/internal/assignedasset"
)

type fakeAssignedRepo struct {
	inserted []*assignedasset.AssignedAsset
	byEmail  []assignedasset.AssignedAsset
}

func (f *fakeAssignedRepo) Insert(ctx context.Context, a *assignedasset.AssignedAsset) (primitive.ObjectID, error) {
	f.inserted = append(f.inserted, a)
	return primitive.NewObjectID(), nil
}

func (f *fakeAssignedRepo) FindByEmployee(ctx context.Context, email string) ([]assignedasset.AssignedAsset, error) {
	return f.byEmail, nil
}

func (f *fakeAssignedRepo) CountByEmployee(ctx context.Context, email string) (int64, error) {
	return int64(len(f.byEmail)), nil
}

func TestAssignedAssetService_Assign(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAssignedRepo{}
	svc := assignedasset.NewService(repo)

	resp, err := svc.Assign(ctx, assignedasset.AssignAssetRequest{
		AssetID:       "65f0c3",
		AssetName:     "Laptop",
		EmployeeEmail: "rakib@example.com",
		HREmail:       "tania@example.com",
	})

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Asset assigned successfully", resp.Message)
	assert.NotEmpty(t, resp.InsertedID)

	if assert.Len(t, repo.inserted, 1) {
		stored := repo.inserted[0]
		assert.Equal(t, assignedasset.StatusAssigned, stored.Status)
		assert.False(t, stored.AssignmentDate.IsZero())
		assert.Nil(t, stored.ReturnDate)
	}
}

type fakeAssignedService struct {
	AssignFn     func(ctx context.Context, req assignedasset.AssignAssetRequest) (assignedasset.AssignAssetResponse, error)
	ByEmployeeFn func(ctx context.Context, email string) ([]assignedasset.AssignedAsset, error)
}

func (f *fakeAssignedService) Assign(ctx context.Context, req assignedasset.AssignAssetRequest) (assignedasset.AssignAssetResponse, error) {
	return f.AssignFn(ctx, req)
}
func (f *fakeAssignedService) ByEmployee(ctx context.Context, email string) ([]assignedasset.AssignedAsset, error) {
	return f.ByEmployeeFn(ctx, email)
}

func TestAssignedAssetHandler_Assign(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields is a 400", func(t *testing.T) {
		h := assignedasset.NewHandler(&fakeAssignedService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		// assetId and assetName are absent.
		body := `{"employeeEmail":"rakib@example.com"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/assigned-assets", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Assign(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
	})

	t.Run("success echoes the insert result", func(t *testing.T) {
		svc := &fakeAssignedService{
			AssignFn: func(ctx context.Context, req assignedasset.AssignAssetRequest) (assignedasset.AssignAssetResponse, error) {
				return assignedasset.AssignAssetResponse{
					Success: true, Message: "Asset assigned successfully", InsertedID: "65f0d4",
				}, nil
			},
		}

		h := assignedasset.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"assetId":"65f0c3","assetName":"Laptop","employeeEmail":"rakib@example.com"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/assigned-assets", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Assign(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"insertedId":"65f0d4"`)
	})
}

func TestAssignedAssetHandler_ByEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no assignments responds with empty array", func(t *testing.T) {
		svc := &fakeAssignedService{
			ByEmployeeFn: func(ctx context.Context, email string) ([]assignedasset.AssignedAsset, error) {
				return []assignedasset.AssignedAsset{}, nil
			},
		}

		h := assignedasset.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/assigned-assets/rakib@example.com", nil)
		c.Params = gin.Params{{Key: "email", Value: "rakib@example.com"}}

		h.ByEmployee(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})
}
