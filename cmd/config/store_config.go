package config

import (
	"context"
	"fmt"
	"strings"

	migration "ecotrack/cmd/database/migrate"
	"ecotrack/internal/storage"
	"ecotrack/internal/utils"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
	StoreDriverS3       = "s3"
)

// NewStore opens the key-value store selected by STORE_DRIVER.
func NewStore(ctx context.Context) (storage.Store, error) {
	driver := strings.ToLower(utils.GetConfigOrDefault("STORE_DRIVER", StoreDriverMemory))

	switch driver {
	case StoreDriverMemory:
		log.Warn("using the in-memory store, data is lost on restart")
		return storage.NewMemoryStore(), nil

	case StoreDriverRedis:
		client, err := storage.NewRedisClient(ctx, utils.GetConfigOrDefault("REDIS_URL", "redis://localhost:6379/0"))
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client, utils.GetConfigOrDefault("REDIS_NAMESPACE", "ecotrack")), nil

	case StoreDriverPostgres:
		db, err := ConnectDB()
		if err != nil {
			return nil, err
		}
		if err := migration.Migrate(db); err != nil {
			return nil, err
		}
		return storage.NewGormStore(db), nil

	case StoreDriverS3:
		bucket := utils.GetConfig("AWS_S3_BUCKET")
		if bucket == "" {
			return nil, fmt.Errorf("AWS_S3_BUCKET is required for the s3 store")
		}
		client, err := NewS3Client(ctx)
		if err != nil {
			return nil, err
		}
		return storage.NewS3Store(client, bucket, utils.GetConfigOrDefault("AWS_S3_PREFIX", "ecotrack")), nil
	}

	return nil, fmt.Errorf("unknown STORE_DRIVER %q", driver)
}

func NewS3Client(ctx context.Context) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(utils.GetConfigOrDefault("AWS_S3_REGION", "us-east-1")),
	}
	accessKey := utils.GetConfig("AWS_ACCESS_KEY")
	secretKey := utils.GetConfig("AWS_SECRET_KEY")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.RetryMaxAttempts = 3
	}), nil
}
