package asset_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/udoykumar/assets-verse-server/internal/asset"
	asseterrors "github.com/udoykumar/assets-verse-server/internal/asset/errors"
	"github.com/udoykumar/assets-verse-server/internal/shared/response"
)

type fakeAssetService struct {
	CreateFn func(ctx context.Context, req asset.CreateAssetRequest) (asset.CreateAssetResponse, error)
	ListFn   func(ctx context.Context, q asset.ListQuery) (asset.ListAssetsResponse, error)
	ByHRFn   func(ctx context.Context, hrEmail string) ([]asset.Asset, error)
	ByIDFn   func(ctx context.Context, id string) (*asset.Asset, error)
	PatchFn  func(ctx context.Context, id string, cmd asset.UpdateAssetCommand) (asset.UpdateSummary, error)
	DeleteFn func(ctx context.Context, id string) (asset.DeleteSummary, error)
}

func (f *fakeAssetService) Create(ctx context.Context, req asset.CreateAssetRequest) (asset.CreateAssetResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeAssetService) List(ctx context.Context, q asset.ListQuery) (asset.ListAssetsResponse, error) {
	return f.ListFn(ctx, q)
}
func (f *fakeAssetService) ByHR(ctx context.Context, hrEmail string) ([]asset.Asset, error) {
	return f.ByHRFn(ctx, hrEmail)
}
func (f *fakeAssetService) ByID(ctx context.Context, id string) (*asset.Asset, error) {
	return f.ByIDFn(ctx, id)
}
func (f *fakeAssetService) Patch(ctx context.Context, id string, cmd asset.UpdateAssetCommand) (asset.UpdateSummary, error) {
	return f.PatchFn(ctx, id, cmd)
}
func (f *fakeAssetService) Delete(ctx context.Context, id string) (asset.DeleteSummary, error) {
	return f.DeleteFn(ctx, id)
}

func TestAssetHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success is a 201", func(t *testing.T) {
		svc := &fakeAssetService{
			CreateFn: func(ctx context.Context, req asset.CreateAssetRequest) (asset.CreateAssetResponse, error) {
				return asset.CreateAssetResponse{Message: "Asset created", InsertedID: "65f0b2"}, nil
			},
		}

		h := asset.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"productName":"Laptop","productType":"Returnable","productQuantity":5,"hrEmail":"tania@example.com"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"insertedId":"65f0b2"`)
	})

	t.Run("missing productQuantity is a 400", func(t *testing.T) {
		h := asset.NewHandler(&fakeAssetService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"productName":"Laptop","productType":"Returnable","hrEmail":"tania@example.com"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	t.Run("invalid product type maps to 400 from the service", func(t *testing.T) {
		svc := &fakeAssetService{
			CreateFn: func(ctx context.Context, req asset.CreateAssetRequest) (asset.CreateAssetResponse, error) {
				return asset.CreateAssetResponse{}, asseterrors.ErrInvalidProductType
			},
		}

		h := asset.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"productName":"Laptop","productType":"Rentable","productQuantity":5,"hrEmail":"tania@example.com"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp, "error")
	})
}

func TestAssetHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query params reach the service parsed", func(t *testing.T) {
		svc := &fakeAssetService{
			ListFn: func(ctx context.Context, q asset.ListQuery) (asset.ListAssetsResponse, error) {
				assert.Equal(t, 2, q.Page)
				assert.Equal(t, 10, q.Limit)
				assert.True(t, q.AvailableOnly)
				assert.Equal(t, "lap", q.Search)
				return asset.ListAssetsResponse{
					ListMeta: response.NewListMeta(25, 2, 10),
					Assets:   []asset.Asset{},
				}, nil
			},
		}

		h := asset.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/assets?page=2&limit=10&available=true&search=lap", nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalPages":3`)
	})
}

func TestAssetHandler_ByHR(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no assets responds with empty array, not null", func(t *testing.T) {
		svc := &fakeAssetService{
			ByHRFn: func(ctx context.Context, hrEmail string) ([]asset.Asset, error) {
				return nil, nil
			},
		}

		h := asset.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/assets/hr/tania@example.com", nil)
		c.Params = gin.Params{{Key: "hrEmail", Value: "tania@example.com"}}

		h.ByHR(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})
}
