package service

import (
	"context"
	"strings"
	"testing"

	"github.com/captainblair/movie-recommendation-api/db/storage"
	"github.com/captainblair/movie-recommendation-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageService_Disabled(t *testing.T) {
	svc := NewStorageService(nil, "avatars")
	assert.False(t, svc.Enabled())

	_, err := svc.PresignUpload(context.Background(), "key", "image/png")
	assert.ErrorIs(t, err, model.ErrStorageDisabled)
	_, err = svc.PresignGet(context.Background(), "key")
	assert.ErrorIs(t, err, model.ErrStorageDisabled)
	assert.ErrorIs(t, svc.DeleteObject(context.Background(), "key"), model.ErrStorageDisabled)
}

func TestStorageService_Presign(t *testing.T) {
	client := storage.NewStaticClient("us-east-1", "http://localhost:9000", "access", "secret")
	svc := NewStorageService(client, "avatars")
	require.True(t, svc.Enabled())

	uploadUrl, err := svc.PresignUpload(context.Background(), "profile_pictures/1/a.png", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uploadUrl, "http://localhost:9000/avatars/profile_pictures/1/a.png?"))
	assert.Contains(t, uploadUrl, "X-Amz-Expires=900")
	assert.Contains(t, uploadUrl, "X-Amz-Signature=")

	getUrl, err := svc.PresignGet(context.Background(), "profile_pictures/1/a.png")
	require.NoError(t, err)
	assert.Contains(t, getUrl, "/avatars/profile_pictures/1/a.png?")
}

func TestProfilePictureKey(t *testing.T) {
	key := ProfilePictureKey(7, "image/jpeg")
	assert.True(t, strings.HasPrefix(key, "profile_pictures/7/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	assert.True(t, strings.HasSuffix(ProfilePictureKey(7, "image/svg+xml"), ".svg"))
	assert.True(t, strings.HasSuffix(ProfilePictureKey(7, ""), ".jpg"))
	assert.NotEqual(t, ProfilePictureKey(7, "image/png"), ProfilePictureKey(7, "image/png"))
}
