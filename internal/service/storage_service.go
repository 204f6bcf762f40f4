package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/captainblair/movie-recommendation-api/model"
	errorHandler "github.com/captainblair/movie-recommendation-api/pkg/error"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type IStorageService interface {
	Enabled() bool
	PresignUpload(ctx context.Context, objectKey string, contentType string) (string, error)
	PresignGet(ctx context.Context, objectKey string) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

type StorageService struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	expiration    time.Duration
}

const (
	presignExpiration     = 15 * time.Minute
	profilePictureFolder  = "profile_pictures"
	defaultPictureExtType = "jpg"
)

// NewStorageService accepts a nil client. Every call then fails with
// model.ErrStorageDisabled.
func NewStorageService(client *s3.Client, bucket string) *StorageService {
	m := &StorageService{
		client:     client,
		bucket:     bucket,
		expiration: presignExpiration,
	}
	if client != nil {
		m.presignClient = s3.NewPresignClient(client)
	}
	return m
}

//------------------------------------------
//------------------------------------------

func (m *StorageService) Enabled() bool {
	return m.client != nil && m.bucket != ""
}

func (m *StorageService) PresignUpload(ctx context.Context, objectKey string, contentType string) (string, error) {
	if !m.Enabled() {
		return "", model.ErrStorageDisabled
	}
	input := &s3.PutObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(objectKey),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	request, err := m.presignClient.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = m.expiration
	})
	if err != nil {
		errorMessage := fmt.Sprintf("S3 Error on presigning upload of %s: %v", objectKey, err)
		errorHandler.SaveError(errorMessage, err)
		return "", err
	}
	return request.URL, nil
}

func (m *StorageService) PresignGet(ctx context.Context, objectKey string) (string, error) {
	if !m.Enabled() {
		return "", model.ErrStorageDisabled
	}
	request, err := m.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(objectKey),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = m.expiration
	})
	if err != nil {
		errorMessage := fmt.Sprintf("S3 Error on presigning download of %s: %v", objectKey, err)
		errorHandler.SaveError(errorMessage, err)
		return "", err
	}
	return request.URL, nil
}

func (m *StorageService) DeleteObject(ctx context.Context, objectKey string) error {
	if !m.Enabled() {
		return model.ErrStorageDisabled
	}
	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		errorMessage := fmt.Sprintf("S3 Error on deleting %s: %v", objectKey, err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

//------------------------------------------
//------------------------------------------

func ProfilePictureKey(userId int64, contentType string) string {
	ext := defaultPictureExtType
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 && parts[0] == "image" && parts[1] != "" {
		ext = strings.TrimSuffix(parts[1], "+xml")
		if ext == "jpeg" {
			ext = "jpg"
		}
	}
	return fmt.Sprintf("%s/%d/%s.%s", profilePictureFolder, userId, uuid.NewString(), ext)
}
