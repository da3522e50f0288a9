// Package storage issues presigned S3 URLs for document files and checks that the
// uploaded objects arrived.
package storage

import (
	"context"
	"errors"
	"time"

	"portail_immigration/internal/config"
	"portail_immigration/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var ErrBucketNotConfigured = errors.New("documents bucket not configured")

// Presigner is the subset of *s3.PresignClient used here.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// ObjectHeader is the subset of *s3.Client used to confirm uploads.
type ObjectHeader interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type S3UploadPresigner struct {
	presigner Presigner
	objects   ObjectHeader
	bucket    string
	ttl       time.Duration
}

var _ interfaces.IUploadPresigner = (*S3UploadPresigner)(nil)

// NewS3UploadPresigner uses path-style addressing when an endpoint override is set (LocalStack).
func NewS3UploadPresigner(cfg aws.Config, env config.Env) (*S3UploadPresigner, error) {
	if env.DocumentsBucket == "" {
		return nil, ErrBucketNotConfigured
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if env.AWSEndpointURL != "" {
			o.UsePathStyle = true
		}
	})
	return NewUploadPresigner(s3.NewPresignClient(client), client, env.DocumentsBucket, env.PresignTTL), nil
}

func NewUploadPresigner(p Presigner, objects ObjectHeader, bucket string, ttl time.Duration) *S3UploadPresigner {
	return &S3UploadPresigner{presigner: p, objects: objects, bucket: bucket, ttl: ttl}
}

func (p *S3UploadPresigner) PresignUpload(ctx context.Context, key string, contentType string) (string, time.Duration, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	req, err := p.presigner.PresignPutObject(ctx, input, func(o *s3.PresignOptions) { o.Expires = p.ttl })
	if err != nil {
		return "", 0, err
	}
	return req.URL, p.ttl, nil
}

// ObjectExists reports whether key is present in the bucket. A missing object is not an error.
func (p *S3UploadPresigner) ObjectExists(ctx context.Context, key string) (bool, error) {
	_, err := p.objects.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
