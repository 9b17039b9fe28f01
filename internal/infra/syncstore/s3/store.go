package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/m04kA/PetHotelService/internal/config"
	"github.com/m04kA/PetHotelService/internal/infra/syncstore"
)

// ObjectAPI подмножество клиента S3, которое использует хранилище
type ObjectAPI interface {
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
}

// Store снимки как объекты <prefix><key>.json в бакете S3 или MinIO
type Store struct {
	client ObjectAPI
	bucket string
	prefix string
}

// NewStore создает хранилище
func NewStore(client ObjectAPI, bucket, prefix string) *Store {
	return &Store{client: client, bucket: bucket, prefix: prefix}
}

// NewClient создает клиента S3. Пустой endpoint - AWS, иначе совместимое хранилище (MinIO)
func NewClient(ctx context.Context, cfg config.S3SyncConfig) (*awss3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3.NewClient: load aws config: %w", err)
	}

	return awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Name имя бэкенда для логов и метрик
func (s *Store) Name() string {
	return "s3"
}

// Save загружает снимок объектом
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if err := syncstore.ValidateKey(key); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3.Save: %w", err)
	}
	return nil
}

// Load скачивает снимок. Отсутствующий объект - syncstore.ErrNotFound
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if err := syncstore.ValidateKey(key); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, syncstore.ErrNotFound
		}
		return nil, fmt.Errorf("s3.Load: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3.Load: read body: %w", err)
	}
	return data, nil
}

func (s *Store) objectKey(key string) string {
	return s.prefix + key + ".json"
}
