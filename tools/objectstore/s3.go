package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"mcpbridge/tools"
)

// S3Store implements ObjectStore backed by S3.
type S3Store struct {
	s3 *s3.Client
}

func NewS3Store(s3Client *s3.Client) *S3Store {
	return &S3Store{s3: s3Client}
}

func (s *S3Store) GetObject(ctx context.Context, bucket, key string) (Object, error) {
	resp, err := s.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return Object{}, mapS3Error(err, fmt.Sprintf("failed to get object %s/%s from S3", bucket, key))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Object{}, fmt.Errorf("failed to read object body: %w", err)
	}

	obj := Object{
		Body:        body,
		ContentType: aws.ToString(resp.ContentType),
		Size:        aws.ToInt64(resp.ContentLength),
	}
	if resp.LastModified != nil {
		obj.LastModified = *resp.LastModified
	}
	return obj, nil
}

func (s *S3Store) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := s.s3.PutObject(ctx, in); err != nil {
		return mapS3Error(err, fmt.Sprintf("failed to put object %s/%s to S3", bucket, key))
	}
	return nil
}

func (s *S3Store) ListObjects(ctx context.Context, bucket, prefix string, maxKeys int32) ([]ObjectInfo, error) {
	in := &s3.ListObjectsV2Input{Bucket: aws.String(bucket)}
	if prefix != "" {
		in.Prefix = aws.String(prefix)
	}
	if maxKeys > 0 {
		in.MaxKeys = aws.Int32(maxKeys)
	}

	resp, err := s.s3.ListObjectsV2(ctx, in)
	if err != nil {
		return nil, mapS3Error(err, fmt.Sprintf("failed to list objects in bucket %s", bucket))
	}

	infos := make([]ObjectInfo, 0, len(resp.Contents))
	for _, obj := range resp.Contents {
		info := ObjectInfo{Key: aws.ToString(obj.Key), Size: aws.ToInt64(obj.Size)}
		if obj.LastModified != nil {
			info.LastModified = *obj.LastModified
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *S3Store) DeleteObject(ctx context.Context, bucket, key string) error {
	_, err := s.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return mapS3Error(err, fmt.Sprintf("failed to delete object %s/%s from S3", bucket, key))
	}
	return nil
}

func (s *S3Store) ListBuckets(ctx context.Context) ([]BucketInfo, error) {
	resp, err := s.s3.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, mapS3Error(err, "failed to list buckets")
	}

	infos := make([]BucketInfo, 0, len(resp.Buckets))
	for _, b := range resp.Buckets {
		info := BucketInfo{Name: aws.ToString(b.Name)}
		if b.CreationDate != nil {
			info.CreatedAt = *b.CreationDate
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *S3Store) CreateBucket(ctx context.Context, bucket, region string) error {
	in := &s3.CreateBucketInput{Bucket: aws.String(bucket)}
	// us-east-1 is the API default and must not be sent as a location constraint.
	if region != "" && region != "us-east-1" {
		in.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(region),
		}
	}
	if _, err := s.s3.CreateBucket(ctx, in); err != nil {
		return mapS3Error(err, fmt.Sprintf("failed to create bucket %s", bucket))
	}
	return nil
}

// mapS3Error folds the SDK's error shapes into the shared taxonomy, relaying
// the service message as-is.
func mapS3Error(err error, msg string) error {
	var noKey *s3types.NoSuchKey
	var noBucket *s3types.NoSuchBucket
	var notFound *s3types.NotFound
	if errors.As(err, &noKey) || errors.As(err, &noBucket) || errors.As(err, &notFound) {
		return tools.E(tools.KindNotFound, "%s: %v", msg, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "AllAccessDisabled":
			return tools.E(tools.KindAccessDenied, "%s: %v", msg, err)
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return tools.E(tools.KindNotFound, "%s: %v", msg, err)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
