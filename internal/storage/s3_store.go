package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/gofiber/fiber/v2/log"
)

// S3API is the subset of *s3.Client the store needs.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Store struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Store keeps each key as one JSON object under prefix in bucket.
func NewS3Store(client S3API, bucket, prefix string) Store {
	return &s3Store{client: client, bucket: bucket, prefix: prefix}
}

func (s *s3Store) objectKey(key string) string {
	if s.prefix == "" {
		return key + ".json"
	}
	return path.Join(s.prefix, key+".json")
}

func (s *s3Store) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s from S3: %w", key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s from S3: %w", key, err)
	}
	return string(body), true, nil
}

func (s *s3Store) Set(ctx context.Context, key, value string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader([]byte(value)),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put %s to S3: %w", key, err)
	}
	return nil
}

type previousObject struct {
	value string
	found bool
}

// SetMulti writes objects one by one. S3 has no multi-object transaction, so
// on a failed write the objects already replaced are restored.
func (s *s3Store) SetMulti(ctx context.Context, values map[string]string) error {
	keys := sortedKeys(values)

	previous := make(map[string]previousObject, len(keys))
	for _, k := range keys {
		value, found, err := s.Get(ctx, k)
		if err != nil {
			return err
		}
		previous[k] = previousObject{value: value, found: found}
	}

	for i, k := range keys {
		if err := s.Set(ctx, k, values[k]); err != nil {
			s.restore(ctx, keys[:i], previous)
			return err
		}
	}
	return nil
}

func (s *s3Store) restore(ctx context.Context, keys []string, previous map[string]previousObject) {
	for _, k := range keys {
		prev := previous[k]
		var err error
		if prev.found {
			err = s.Set(ctx, k, prev.value)
		} else {
			_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(s.objectKey(k)),
			})
		}
		if err != nil {
			log.Errorw("failed to restore S3 object", "key", k, "error", err)
		}
	}
}

func (s *s3Store) Close() error {
	return nil
}

func isNoSuchKey(err error) bool {
	var noSuchKey *s3types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
