package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/repository"
)

type fakeS3 struct {
	bucket, key, contentType string
	body                     []byte
	err                      error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	f.contentType = aws.ToString(in.ContentType)
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

type fakeSTS struct{ account string }

func (f fakeSTS) GetCallerIdentity(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return &sts.GetCallerIdentityOutput{Account: aws.String(f.account)}, nil
}

func newTestRepo(putter *fakeS3) *S3RepositoryImpl {
	target := repository.StorageTarget{Profile: "reports", Region: "eu-west-2"}
	return &S3RepositoryImpl{
		// pre-seeded so no shared AWS config is read
		cfgCache: map[string]aws.Config{target.Profile + "|" + target.Region: {Region: target.Region}},
		newS3:    func(aws.Config) objectPutter { return putter },
		newSTS:   func(aws.Config) identityGetter { return fakeSTS{account: "123456789012"} },
	}
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		path     string
		expected string
	}{
		{"no prefix", "", "/tmp/out/estimate_20251103_093000.csv", "estimate_20251103_093000.csv"},
		{"prefix", "households/42", "/tmp/out/estimate.pdf", "households/42/estimate.pdf"},
		{"slashes trimmed", "/reports/", "estimate.json", "reports/estimate.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, objectKey(tt.prefix, tt.path))
		})
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv", contentType("a.csv"))
	assert.Equal(t, "application/json", contentType("a.JSON"))
	assert.Equal(t, "application/pdf", contentType("a.pdf"))
	assert.Equal(t, "application/octet-stream", contentType("a.txt"))
}

func TestPublish(t *testing.T) {
	local := filepath.Join(t.TempDir(), "estimate.csv")
	require.NoError(t, os.WriteFile(local, []byte("Case,Breakdown\n"), 0o644))

	putter := &fakeS3{}
	repo := newTestRepo(putter)
	target := repository.StorageTarget{Bucket: "hp-reports", Prefix: "2025", Profile: "reports", Region: "eu-west-2"}

	uri, err := repo.Publish(context.Background(), target, local)
	require.NoError(t, err)
	assert.Equal(t, "s3://hp-reports/2025/estimate.csv", uri)
	assert.Equal(t, "hp-reports", putter.bucket)
	assert.Equal(t, "2025/estimate.csv", putter.key)
	assert.Equal(t, "text/csv", putter.contentType)
	assert.Equal(t, "Case,Breakdown\n", string(putter.body))

	account, err := repo.Identity(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", account)
}

func TestPublishErrors(t *testing.T) {
	target := repository.StorageTarget{Bucket: "hp-reports", Profile: "reports", Region: "eu-west-2"}

	_, err := newTestRepo(&fakeS3{}).Publish(context.Background(), repository.StorageTarget{}, "x.csv")
	assert.ErrorContains(t, err, "no S3 bucket")

	_, err = newTestRepo(&fakeS3{}).Publish(context.Background(), target, filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "error opening report file")

	local := filepath.Join(t.TempDir(), "estimate.pdf")
	require.NoError(t, os.WriteFile(local, []byte("%PDF-"), 0o644))
	_, err = newTestRepo(&fakeS3{err: errors.New("access denied")}).Publish(context.Background(), target, local)
	assert.ErrorContains(t, err, "access denied")
}
