package fsxs3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/sendsculpt/sendsculpt-go/pkg/fsx"
)

// S3API is the subset of *s3.Client used by S3FileSystem.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3FileSystem implements fsx.FileReader over a single bucket. Paths are
// object keys relative to prefix; an "s3://<bucket>/" scheme is accepted and
// stripped when it names the configured bucket.
type S3FileSystem struct {
	client S3API
	bucket string
	prefix string
}

// NewS3FileSystem creates a reader for bucket, optionally scoped under prefix.
func NewS3FileSystem(client S3API, bucket, prefix string) *S3FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (f *S3FileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	key, err := f.key(p)
	if err != nil {
		return nil, err
	}

	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("object not found: s3://%s/%s: %w", f.bucket, key, fsx.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}

func (f *S3FileSystem) Stat(ctx context.Context, p string) (fsx.FileInfo, error) {
	key, err := f.key(p)
	if err != nil {
		return fsx.FileInfo{}, err
	}

	out, err := f.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return fsx.FileInfo{}, fmt.Errorf("object not found: s3://%s/%s: %w", f.bucket, key, fsx.ErrNotExist)
		}
		return fsx.FileInfo{}, fmt.Errorf("failed to head object %s: %w", key, err)
	}

	return fsx.FileInfo{
		Name:        path.Base(key),
		Size:        aws.ToInt64(out.ContentLength),
		ModTime:     aws.ToTime(out.LastModified),
		ContentType: aws.ToString(out.ContentType),
	}, nil
}

func (f *S3FileSystem) Exists(ctx context.Context, p string) (bool, error) {
	if _, err := f.Stat(ctx, p); err != nil {
		if errors.Is(err, fsx.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Bucket returns the configured bucket name.
func (f *S3FileSystem) Bucket() string {
	return f.bucket
}

func (f *S3FileSystem) key(p string) (string, error) {
	if rest, ok := strings.CutPrefix(p, "s3://"); ok {
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket != f.bucket {
			return "", fmt.Errorf("object s3://%s is outside bucket %s: %w", rest, f.bucket, fsx.ErrNotExist)
		}
		p = key
	}
	p = strings.TrimPrefix(p, "/")
	if f.prefix == "" {
		return p, nil
	}
	return path.Join(f.prefix, p), nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return true
		}
	}
	return false
}
