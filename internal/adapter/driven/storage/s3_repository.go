package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/repository"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type identityGetter interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// S3RepositoryImpl implementa o ReportStorageRepository com cache de clientes.
type S3RepositoryImpl struct {
	cfgCache map[string]aws.Config
	mu       sync.Mutex

	newS3  func(cfg aws.Config) objectPutter
	newSTS func(cfg aws.Config) identityGetter
}

// NewS3Repository cria uma nova implementação do ReportStorageRepository.
func NewS3Repository() repository.ReportStorageRepository {
	return &S3RepositoryImpl{
		cfgCache: make(map[string]aws.Config),
		newS3:    func(cfg aws.Config) objectPutter { return s3.NewFromConfig(cfg) },
		newSTS:   func(cfg aws.Config) identityGetter { return sts.NewFromConfig(cfg) },
	}
}

func (r *S3RepositoryImpl) getAWSConfig(ctx context.Context, target repository.StorageTarget) (aws.Config, error) {
	cacheKey := target.Profile + "|" + target.Region

	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[cacheKey]; ok {
		return cfg, nil
	}

	var opts []func(*config.LoadOptions) error
	if target.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(target.Profile))
	}
	if target.Region != "" {
		opts = append(opts, config.WithRegion(target.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %q: %w", target.Profile, err)
	}

	r.cfgCache[cacheKey] = cfg
	return cfg, nil
}

// Identity returns the AWS account ID of the target's credentials.
func (r *S3RepositoryImpl) Identity(ctx context.Context, target repository.StorageTarget) (string, error) {
	cfg, err := r.getAWSConfig(ctx, target)
	if err != nil {
		return "", err
	}

	result, err := r.newSTS(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to get caller identity: %w", err)
	}
	return aws.ToString(result.Account), nil
}

// Publish uploads a report file to the target bucket.
func (r *S3RepositoryImpl) Publish(ctx context.Context, target repository.StorageTarget, localPath string) (string, error) {
	if target.Bucket == "" {
		return "", fmt.Errorf("no S3 bucket configured")
	}

	cfg, err := r.getAWSConfig(ctx, target)
	if err != nil {
		return "", err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("error opening report file: %w", err)
	}
	defer file.Close()

	key := objectKey(target.Prefix, localPath)
	_, err = r.newS3(cfg).PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(target.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType(localPath)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", filepath.Base(localPath), target.Bucket, err)
	}

	return fmt.Sprintf("s3://%s/%s", target.Bucket, key), nil
}

// objectKey places the file name under prefix using forward slashes.
func objectKey(prefix, localPath string) string {
	name := filepath.Base(localPath)
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func contentType(localPath string) string {
	switch strings.ToLower(filepath.Ext(localPath)) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	case ".pdf":
		return "application/pdf"
	}
	return "application/octet-stream"
}
