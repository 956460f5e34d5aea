package asset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/udoykumar/assets-verse-server/internal/asset"
	asseterrors "github.com/udoykumar/assets-verse-server/internal/asset/errors"
	assetMock "github.com/udoykumar/assets-verse-server/internal/asset/mock"
)

func setupServiceTest(t *testing.T) (*assetMock.MockRepository, asset.Service) {
	ctrl := gomock.NewController(t)
	repo := assetMock.NewMockRepository(ctrl)
	return repo, asset.NewService(repo)
}

func intPtr(v int) *int { return &v }

func TestAssetService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("available quantity starts equal to product quantity", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().
			Insert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *asset.Asset) (primitive.ObjectID, error) {
				assert.Equal(t, 5, a.ProductQuantity)
				assert.Equal(t, 5, a.AvailableQuantity)
				assert.Equal(t, asset.TypeReturnable, a.ProductType)
				assert.False(t, a.DateAdded.IsZero())
				return primitive.NewObjectID(), nil
			})

		resp, err := svc.Create(ctx, asset.CreateAssetRequest{
			ProductName:     "Laptop",
			ProductType:     "Returnable",
			ProductQuantity: intPtr(5),
			HREmail:         "tania@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Asset created", resp.Message)
		assert.NotEmpty(t, resp.InsertedID)
		assert.Equal(t, 5, resp.Asset.AvailableQuantity)
	})

	t.Run("unknown product type is rejected", func(t *testing.T) {
		_, svc := setupServiceTest(t)

		_, err := svc.Create(ctx, asset.CreateAssetRequest{
			ProductName:     "Laptop",
			ProductType:     "Rentable",
			ProductQuantity: intPtr(5),
			HREmail:         "tania@example.com",
		})

		assert.ErrorIs(t, err, asseterrors.ErrInvalidProductType)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		_, svc := setupServiceTest(t)

		_, err := svc.Create(ctx, asset.CreateAssetRequest{
			ProductName:     "Laptop",
			ProductType:     "Returnable",
			ProductQuantity: intPtr(-1),
			HREmail:         "tania@example.com",
		})

		assert.ErrorIs(t, err, asseterrors.ErrNegativeQuantity)
	})

	t.Run("zero quantity is allowed", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().Insert(ctx, gomock.Any()).Return(primitive.NewObjectID(), nil)

		_, err := svc.Create(ctx, asset.CreateAssetRequest{
			ProductName:     "Sticker pack",
			ProductType:     "Non-returnable",
			ProductQuantity: intPtr(0),
			HREmail:         "tania@example.com",
		})

		assert.NoError(t, err)
	})
}

func TestAssetService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("page 2 of 25 documents at limit 10 yields 3 total pages", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		q := asset.ListQuery{Page: 2, Limit: 10}
		page := make([]asset.Asset, 10)
		repo.EXPECT().Count(ctx, q).Return(int64(25), nil)
		repo.EXPECT().Find(ctx, q).Return(page, nil)

		resp, err := svc.List(ctx, q)

		assert.NoError(t, err)
		assert.Equal(t, int64(25), resp.Total)
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 10, resp.Limit)
		assert.Equal(t, 3, resp.TotalPages)
		assert.Len(t, resp.Assets, 10)
	})

	t.Run("defaults apply when page and limit are unset", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		expected := asset.ListQuery{Page: 1, Limit: 10}
		repo.EXPECT().Count(ctx, expected).Return(int64(0), nil)
		repo.EXPECT().Find(ctx, expected).Return(nil, nil)

		resp, err := svc.List(ctx, asset.ListQuery{})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 10, resp.Limit)
		assert.Equal(t, 0, resp.TotalPages)
		assert.NotNil(t, resp.Assets)
		assert.Empty(t, resp.Assets)
	})
}

func TestAssetService_ByID(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed hex id is a validation error", func(t *testing.T) {
		_, svc := setupServiceTest(t)

		_, err := svc.ByID(ctx, "not-a-hex-id")

		assert.ErrorIs(t, err, asseterrors.ErrInvalidAssetID)
	})
}

func TestAssetService_Patch(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("empty command is rejected", func(t *testing.T) {
		_, svc := setupServiceTest(t)

		_, err := svc.Patch(ctx, id.Hex(), asset.UpdateAssetCommand{})

		assert.ErrorIs(t, err, asseterrors.ErrEmptyPatch)
	})

	t.Run("invalid product type in patch is rejected", func(t *testing.T) {
		_, svc := setupServiceTest(t)

		bad := "Disposable"
		cmd := asset.UpdateAssetCommand{Set: asset.AssetFieldPatch{ProductType: &bad}}

		_, err := svc.Patch(ctx, id.Hex(), cmd)

		assert.ErrorIs(t, err, asseterrors.ErrInvalidProductType)
	})

	t.Run("negative increment reaches the store untouched", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		cmd := asset.UpdateAssetCommand{Inc: asset.AssetCounterPatch{AvailableQuantity: intPtr(-1)}}
		repo.EXPECT().
			Update(ctx, id, cmd).
			Return(asset.UpdateSummary{MatchedCount: 1, ModifiedCount: 1}, nil)

		summary, err := svc.Patch(ctx, id.Hex(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), summary.ModifiedCount)
	})
}

func TestAssetService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("delete reports the removed count", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		id := primitive.NewObjectID()
		repo.EXPECT().Delete(ctx, id).Return(asset.DeleteSummary{DeletedCount: 1}, nil)

		summary, err := svc.Delete(ctx, id.Hex())

		assert.NoError(t, err)
		assert.Equal(t, int64(1), summary.DeletedCount)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		_, svc := setupServiceTest(t)

		_, err := svc.Delete(ctx, "zzz")

		assert.ErrorIs(t, err, asseterrors.ErrInvalidAssetID)
	})
}
