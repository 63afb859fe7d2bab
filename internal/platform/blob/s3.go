package blob

import (
	"bytes"
	"context"
	"errors"
	"io"

	perr "stockboard/internal/platform/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// s3API is the slice of the S3 client the store uses
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, opts ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3Config selects the bucket and endpoint; without static keys credentials come from the default AWS chain
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // MinIO or another S3 compatible endpoint
	PathStyle bool
	AccessKey string
	SecretKey string
}

func (c S3Config) loadOptions() []func(*awsconfig.LoadOptions) error {
	region := c.Region
	if region == "" {
		region = "us-east-1"
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if c.AccessKey != "" && c.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}
	return opts
}

// S3 keeps one object per key in a single bucket
type S3 struct {
	client s3API
	bucket string
}

// NewS3 builds a client from the default AWS config chain
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, perr.InvalidArgf("s3 blob driver needs a bucket")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, cfg.loadOptions()...)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "load aws config")
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newS3WithClient(client, cfg.Bucket), nil
}

func newS3WithClient(c s3API, bucket string) *S3 { return &S3{client: c, bucket: bucket} }

// Driver names the backend
func (s *S3) Driver() Driver { return DriverS3 }

// Get downloads the object for key
func (s *S3) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey("blob.s3.get", key); err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)})
	if err != nil {
		if isS3NotFound(err) {
			return nil, ErrNotFound
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "get object %s", key)
	}
	defer func() { _ = out.Body.Close() }()
	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read object %s", key)
	}
	return b, nil
}

// Put uploads data as the object for key
func (s *S3) Put(ctx context.Context, key string, data []byte) error {
	if err := checkKey("blob.s3.put", key); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "put object %s", key)
	}
	return nil
}

// Delete removes the object for key
func (s *S3) Delete(ctx context.Context, key string) error {
	if err := checkKey("blob.s3.delete", key); err != nil {
		return err
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)})
	if err != nil && !isS3NotFound(err) {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "delete object %s", key)
	}
	return nil
}

// Ping heads the bucket
func (s *S3) Ping(ctx context.Context) error {
	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "head bucket %s", s.bucket)
	}
	return nil
}

func isS3NotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var api smithy.APIError
	if errors.As(err, &api) {
		switch api.ErrorCode() {
		case "NoSuchKey", "NotFound", "404":
			return true
		}
	}
	return false
}
