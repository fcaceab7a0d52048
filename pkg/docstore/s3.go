package docstore

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store serves documents from an S3 bucket.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := docstore.NewS3Store(s3.NewFromConfig(cfg), "my-bucket", "layouts/")
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates a store reading from the given bucket. prefix is
// prepended to every key; pass "" to address the whole bucket.
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Load implements Store.
func (s *S3Store) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

// List implements Store, paging through the bucket under the configured
// prefix.
func (s *S3Store) List(ctx context.Context) ([]string, error) {
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			keys = append(keys, key[len(s.prefix):])
		}
	}
	return keys, nil
}
