package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	perr "stockboard/internal/platform/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// fakeS3 is an in-memory bucket behind the s3API seam
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	headErr error
	getErr  error
	types   []string
}

func newFakeS3() *fakeS3 { return &fakeS3{objects: map[string][]byte{}} }

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	b, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.objects[aws.ToString(in.Key)] = b
	f.types = append(f.types, aws.ToString(in.ContentType))
	f.mu.Unlock()
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	delete(f.objects, aws.ToString(in.Key))
	f.mu.Unlock()
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, f.headErr
}

func TestS3_Contract(t *testing.T) {
	f := newFakeS3()
	s := newS3WithClient(f, "stock")
	exerciseStore(t, s)
	if len(f.types) == 0 || f.types[0] != "application/json" {
		t.Fatalf("content types = %v", f.types)
	}
}

func TestS3_ErrorMapping(t *testing.T) {
	ctx := context.Background()
	f := newFakeS3()
	s := newS3WithClient(f, "stock")

	f.getErr = &smithy.GenericAPIError{Code: "NotFound"}
	if _, err := s.Get(ctx, "k"); !IsNotFound(err) {
		t.Fatalf("generic NotFound = %v", err)
	}

	f.getErr = errors.New("connection reset")
	if _, err := s.Get(ctx, "k"); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("transport error = %v", err)
	}

	f.headErr = &smithy.GenericAPIError{Code: "AccessDenied"}
	if err := s.Ping(ctx); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Ping = %v", err)
	}
}

func TestIsS3NotFound(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{&types.NoSuchKey{}, true},
		{&types.NotFound{}, true},
		{&smithy.GenericAPIError{Code: "NoSuchKey"}, true},
		{&smithy.GenericAPIError{Code: "SlowDown"}, false},
		{errors.New("plain"), false},
	}
	for _, tc := range cases {
		if got := isS3NotFound(tc.err); got != tc.want {
			t.Fatalf("isS3NotFound(%T %v) = %v", tc.err, tc.err, got)
		}
	}
}

func TestS3Config_StaticCredentials(t *testing.T) {
	if n := len((S3Config{Bucket: "b"}).loadOptions()); n != 1 {
		t.Fatalf("default chain options = %d, want region only", n)
	}

	ctx := context.Background()
	c := S3Config{Bucket: "b", Endpoint: "http://minio:9000", AccessKey: "AKIA", SecretKey: "SECRET"}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, c.loadOptions()...)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Region != "us-east-1" {
		t.Fatalf("region = %q", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil || creds.AccessKeyID != "AKIA" || creds.SecretAccessKey != "SECRET" {
		t.Fatalf("creds = %+v, %v", creds, err)
	}
}
