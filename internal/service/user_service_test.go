package service

import (
	"context"
	"errors"
	"testing"

	"github.com/captainblair/movie-recommendation-api/configs"
	"github.com/captainblair/movie-recommendation-api/db/dbtest"
	"github.com/captainblair/movie-recommendation-api/internal/repository"
	"github.com/captainblair/movie-recommendation-api/model"
	"github.com/captainblair/movie-recommendation-api/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestUserService(t *testing.T) (*UserService, *miniredis.Miniredis, func()) {
	previous := configs.GetConfigs()
	configs.SetConfigs(configs.ConfigStruct{
		AccessTokenSecret:        "access-secret",
		RefreshTokenSecret:       "refresh-secret",
		AccessTokenLifetimeMin:   60,
		RefreshTokenLifetimeHour: 24,
	})

	gormDB, dbCleanup := dbtest.NewTestDatabase(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	svc := NewUserService(repository.NewUserRepository(gormDB), NewCacheService(rdb), NewStorageService(nil, ""))
	return svc, mr, func() {
		_ = rdb.Close()
		dbCleanup()
		configs.SetConfigs(previous)
	}
}

func registerReq(username string) *model.RegisterReq {
	return &model.RegisterReq{
		Username:        username,
		Email:           username + "@example.com",
		Password:        "supersecret",
		PasswordConfirm: "supersecret",
	}
}

func TestUserService_Register(t *testing.T) {
	svc, _, cleanup := setupTestUserService(t)
	defer cleanup()

	res, err := svc.Register(context.Background(), registerReq("alice"))
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)
	assert.Nil(t, res.User.ProfilePicture)

	_, err = svc.Register(context.Background(), registerReq("alice"))
	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "username")
	assert.Contains(t, validationErr.Fields, "email")
}

func TestUserService_RegisterValidation(t *testing.T) {
	svc, _, cleanup := setupTestUserService(t)
	defer cleanup()

	req := &model.RegisterReq{Username: "ab", Email: "nope", Password: "supersecret", PasswordConfirm: "different"}
	_, err := svc.Register(context.Background(), req)

	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "username")
	assert.Contains(t, validationErr.Fields, "email")
	assert.Equal(t, []string{"Passwords do not match."}, validationErr.Fields["password"])
	assert.Equal(t, 400, model.GetErrorCode(err))
}

func TestUserService_LoginRefreshBlacklist(t *testing.T) {
	svc, mr, cleanup := setupTestUserService(t)
	defer cleanup()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, &model.LoginReq{Username: "alice", Password: "wrong-password"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	_, err = svc.Login(ctx, &model.LoginReq{Username: "nobody", Password: "supersecret"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	pair, err := svc.Login(ctx, &model.LoginReq{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	_, claims, err := util.VerifyToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	refreshed, err := svc.RefreshToken(ctx, pair.Refresh)
	require.NoError(t, err)
	_, _, err = util.VerifyToken(refreshed.Access)
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, pair.Access)
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	require.NoError(t, svc.BlacklistToken(ctx, pair.Refresh))
	_, refreshClaims, err := util.VerifyRefreshToken(pair.Refresh)
	require.NoError(t, err)
	assert.True(t, mr.Exists("jwtKey:"+refreshClaims.ID))
	assert.Greater(t, mr.TTL("jwtKey:"+refreshClaims.ID).Hours(), 23.0)

	_, err = svc.RefreshToken(ctx, pair.Refresh)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
	assert.ErrorIs(t, svc.BlacklistToken(ctx, pair.Refresh), model.ErrInvalidToken)
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, _, cleanup := setupTestUserService(t)
	defer cleanup()
	ctx := context.Background()

	alice, err := svc.Register(ctx, registerReq("alice"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, registerReq("bob"))
	require.NoError(t, err)

	bio := "likes films"
	res, err := svc.UpdateProfile(ctx, alice.User.Id, &model.UpdateProfileReq{Bio: &bio})
	require.NoError(t, err)
	require.NotNil(t, res.User.Bio)
	assert.Equal(t, "likes films", *res.User.Bio)

	taken := "bob@example.com"
	_, err = svc.UpdateProfile(ctx, alice.User.Id, &model.UpdateProfileReq{Email: &taken})
	var validationErr *model.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "email")

	require.NoError(t, svc.DeleteUser(ctx, alice.User.Id))
	_, err = svc.GetProfile(ctx, alice.User.Id)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUserService_ProfilePictureNeedsStorage(t *testing.T) {
	svc, _, cleanup := setupTestUserService(t)
	defer cleanup()

	alice, err := svc.Register(context.Background(), registerReq("alice"))
	require.NoError(t, err)

	_, err = svc.CreateProfilePictureUpload(context.Background(), alice.User.Id, "image/png")
	assert.ErrorIs(t, err, model.ErrStorageDisabled)
}

func TestUserService_IsActiveUser(t *testing.T) {
	svc, _, cleanup := setupTestUserService(t)
	defer cleanup()
	ctx := context.Background()

	alice, err := svc.Register(ctx, registerReq("alice"))
	require.NoError(t, err)

	active, err := svc.IsActiveUser(ctx, alice.User.Id)
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, svc.DeleteUser(ctx, alice.User.Id))
	active, err = svc.IsActiveUser(ctx, alice.User.Id)
	require.NoError(t, err)
	assert.False(t, active)
}
