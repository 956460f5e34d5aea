package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/udoykumar/assets-verse-server/internal/user"
	usererrors "github.com/udoykumar/assets-verse-server/internal/user/errors"
	userMock "github.com/udoykumar/assets-verse-server/internal/user/mock"
)

func setupServiceTest(t *testing.T) (*userMock.MockRepository, user.Service) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	return repo, user.NewService(repo)
}

func TestUserService_RegisterEmployee(t *testing.T) {
	ctx := context.Background()
	req := user.RegisterUserRequest{Name: "Rakib", Email: "rakib@example.com"}

	t.Run("new email inserts employee without HR defaults", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().FindByEmail(ctx, req.Email).Return(nil, nil)
		repo.EXPECT().
			Insert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) (primitive.ObjectID, error) {
				assert.Equal(t, user.RoleEmployee, u.Role)
				assert.Nil(t, u.PackageLimit)
				assert.Nil(t, u.CurrentEmployees)
				assert.Empty(t, u.Subscription)
				return primitive.NewObjectID(), nil
			})

		resp, err := svc.RegisterEmployee(ctx, req)

		assert.NoError(t, err)
		assert.Empty(t, resp.Message)
		assert.NotEmpty(t, resp.InsertedID)
	})

	t.Run("existing email returns user exists and never inserts", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().
			FindByEmail(ctx, req.Email).
			Return(&user.User{Email: req.Email, Role: user.RoleEmployee}, nil)

		resp, err := svc.RegisterEmployee(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "user exists", resp.Message)
		assert.Empty(t, resp.InsertedID)
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().FindByEmail(ctx, req.Email).Return(nil, errors.New("mongo down"))

		_, err := svc.RegisterEmployee(ctx, req)

		assert.Error(t, err)
	})
}

func TestUserService_RegisterHR(t *testing.T) {
	ctx := context.Background()
	req := user.RegisterUserRequest{
		Name:        "Tania",
		Email:       "tania@example.com",
		CompanyName: "Acme",
	}

	t.Run("new HR gets default package fields", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().FindByEmail(ctx, req.Email).Return(nil, nil)
		repo.EXPECT().
			Insert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) (primitive.ObjectID, error) {
				assert.Equal(t, user.RoleHR, u.Role)
				if assert.NotNil(t, u.PackageLimit) {
					assert.Equal(t, 5, *u.PackageLimit)
				}
				if assert.NotNil(t, u.CurrentEmployees) {
					assert.Equal(t, 0, *u.CurrentEmployees)
				}
				assert.Equal(t, "basic", u.Subscription)
				return primitive.NewObjectID(), nil
			})

		resp, err := svc.RegisterHR(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.InsertedID)
	})

	t.Run("duplicate HR email is idempotent", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().
			FindByEmail(ctx, req.Email).
			Return(&user.User{Email: req.Email, Role: user.RoleHR}, nil)

		resp, err := svc.RegisterHR(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "user exists", resp.Message)
	})
}

func TestUserService_GetRole(t *testing.T) {
	ctx := context.Background()

	t.Run("known user returns stored role", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().
			FindByEmail(ctx, "tania@example.com").
			Return(&user.User{Email: "tania@example.com", Role: user.RoleHR}, nil)

		role, err := svc.GetRole(ctx, "tania@example.com")

		assert.NoError(t, err)
		assert.Equal(t, user.RoleHR, role)
	})

	t.Run("unknown user returns empty role, not an error", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, nil)

		role, err := svc.GetRole(ctx, "ghost@example.com")

		assert.NoError(t, err)
		assert.Empty(t, role)
	})
}

func TestUserService_IsHR(t *testing.T) {
	ctx := context.Background()

	t.Run("employee is not HR", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().
			FindByEmail(ctx, "rakib@example.com").
			Return(&user.User{Email: "rakib@example.com", Role: user.RoleEmployee}, nil)

		ok, err := svc.IsHR(ctx, "rakib@example.com")

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing user is not HR", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, nil)

		ok, err := svc.IsHR(ctx, "ghost@example.com")

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUserService_Patch(t *testing.T) {
	ctx := context.Background()

	t.Run("empty command is rejected before hitting the store", func(t *testing.T) {
		_, svc := setupServiceTest(t)

		_, err := svc.Patch(ctx, "tania@example.com", user.UpdateUserCommand{})

		assert.ErrorIs(t, err, usererrors.ErrEmptyPatch)
	})

	t.Run("increment command reaches the store", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		inc := 1
		cmd := user.UpdateUserCommand{Inc: user.UserCounterPatch{CurrentEmployees: &inc}}
		repo.EXPECT().
			Update(ctx, "tania@example.com", cmd).
			Return(user.UpdateSummary{MatchedCount: 1, ModifiedCount: 1}, nil)

		summary, err := svc.Patch(ctx, "tania@example.com", cmd)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), summary.ModifiedCount)
	})
}
