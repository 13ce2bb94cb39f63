package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// s3Client serves the same three operations from an S3-compatible bucket.
type s3Client struct {
	client   *minio.Client
	bucket   string
	endpoint string
	secure   bool
	logger   *zap.Logger
}

func newS3Client(cfg Config, logger *zap.Logger) (*s3Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.URL, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimRight(endpoint, "/")

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: newTransport(cfg.Timeout()),
		// One attempt per call.
		MaxRetries: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &s3Client{
		client:   mc,
		bucket:   cfg.Bucket,
		endpoint: endpoint,
		secure:   cfg.UseSSL,
		logger:   logger,
	}, nil
}

func (c *s3Client) Bucket() string {
	return c.bucket
}

func (c *s3Client) PublicURL(name string) string {
	scheme := "http"
	if c.secure {
		scheme = "https"
	}
	var b strings.Builder
	b.WriteString(scheme + "://" + c.endpoint)
	for _, s := range append([]string{c.bucket}, strings.Split(name, "/")...) {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func (c *s3Client) Upload(ctx context.Context, name string, data []byte, mimeType string) (res UploadResult) {
	defer func() {
		if r := recover(); r != nil {
			res = recovered(r)
		}
		observe(c.logger, OpUpload, res, zap.String("name", name), zap.Int("size", len(data)))
	}()

	if _, err := splitObjectName(name); err != nil {
		return unexpectedFailure(err)
	}
	if mimeType == "" {
		mimeType = DefaultMimeType
	}

	_, err := c.client.PutObject(ctx, c.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return c.classify(OpUpload, err)
	}
	return UploadSuccess{}
}

func (c *s3Client) List(ctx context.Context) (res ListResult) {
	defer func() {
		if r := recover(); r != nil {
			res = recovered(r)
		}
		observe(c.logger, OpList, res)
	}()

	// Cancelling stops the listing goroutine once the first page is read.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:    "",
		Recursive: false,
		MaxKeys:   ListLimit,
	}

	items := make([]string, 0, ListLimit)
	for obj := range c.client.ListObjects(ctx, c.bucket, opts) {
		if obj.Err != nil {
			return c.classify(OpList, obj.Err)
		}
		items = append(items, obj.Key)
		if len(items) == ListLimit {
			break
		}
	}
	return ListSuccess{Items: items}
}

func (c *s3Client) Delete(ctx context.Context, names []string) (res DeleteResult) {
	defer func() {
		if r := recover(); r != nil {
			res = recovered(r)
		}
		observe(c.logger, OpDelete, res, zap.Int("count", len(names)))
	}()

	if len(names) == 0 {
		return DeleteSuccess{}
	}

	objectsCh := make(chan minio.ObjectInfo, len(names))
	for _, name := range names {
		objectsCh <- minio.ObjectInfo{Key: name}
	}
	close(objectsCh)

	var first error
	for rErr := range c.client.RemoveObjects(ctx, c.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if first == nil && rErr.Err != nil {
			first = rErr.Err
		}
	}
	if first != nil {
		return c.classify(OpDelete, first)
	}
	return DeleteSuccess{}
}

// classify maps S3 error responses through the shared status taxonomy.
// Errors without a status never reached the server.
func (c *s3Client) classify(op Operation, err error) *Failure {
	resp := minio.ToErrorResponse(err)
	if resp.StatusCode == 0 {
		return networkFailure(err)
	}
	return classifyStatus(op, c.bucket, resp.StatusCode, []byte(resp.Message))
}
