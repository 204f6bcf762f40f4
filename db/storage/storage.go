package storage

import (
	"context"
	"log"

	"github.com/captainblair/movie-recommendation-api/configs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectStorage returns nil when the S3 settings are incomplete.
func ConnectStorage() *s3.Client {
	conf := configs.GetConfigs()
	if conf.S3AccessKey == "" || conf.S3SecretKey == "" || conf.S3Bucket == "" || conf.S3Region == "" {
		log.Println("====> [[MovieApi Storage: disabled, missing S3 configs]]")
		return nil
	}

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(conf.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(conf.S3AccessKey, conf.S3SecretKey, "")),
	)
	if err != nil {
		log.Printf("====> [[MovieApi Storage: failed to load aws config: %v]]", err)
		return nil
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if conf.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	log.Println("====> [[MovieApi Storage: bucket", conf.S3Bucket, "region", conf.S3Region, "]]")
	return client
}

// NewStaticClient builds a client from explicit settings without touching the
// shared aws config files.
func NewStaticClient(region string, endpoint string, accessKey string, secretKey string) *s3.Client {
	return s3.New(s3.Options{
		Region:       region,
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		BaseEndpoint: aws.String(endpoint),
		UsePathStyle: true,
	})
}
