package storage

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultMimeType is used when Upload is called without a content type.
	DefaultMimeType = "image/jpeg"
	// ListLimit is the fixed page size of List. Only the first page is ever read.
	ListLimit = 100
	// DefaultTimeout applies to the connect, read and write phases of a request.
	DefaultTimeout = 10 * time.Second
)

// Client defines the storage operations used by the upload and gallery features.
// Implementations never return raw errors: every call yields a Success value or a *Failure.
type Client interface {
	// Upload stores data under name with the given content type.
	Upload(ctx context.Context, name string, data []byte, mimeType string) UploadResult
	// List returns the names of the first ListLimit objects in the bucket.
	List(ctx context.Context) ListResult
	// Delete removes the named objects. An empty slice succeeds without a request.
	Delete(ctx context.Context, names []string) DeleteResult
	// PublicURL returns the URL an object can be fetched from without credentials.
	PublicURL(name string) string
	// Bucket returns the configured bucket name.
	Bucket() string
}

// NewClient creates a storage client for the configured driver.
func NewClient(cfg Config, logger *zap.Logger) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid storage config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("driver", cfg.Driver), zap.String("bucket", cfg.Bucket))

	switch cfg.Driver {
	case DriverS3:
		return newS3Client(cfg, logger)
	default:
		return newSupabaseClient(cfg, logger), nil
	}
}

// newTransport builds the shared transport with strict per-phase timeouts.
// It is safe for concurrent use and pools connections across calls.
func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout, // Wait for first response byte timeout
	}
}

// observe logs the outcome of a call.
func observe(logger *zap.Logger, op Operation, result any, fields ...zap.Field) {
	fields = append(fields, zap.String("op", string(op)))
	if f := AsFailure(result); f != nil {
		logger.Warn("Storage operation failed", append(fields,
			zap.String("kind", string(f.Kind)),
			zap.Int("status", f.StatusCode),
			zap.String("error", f.Message),
		)...)
		return
	}
	logger.Debug("Storage operation succeeded", fields...)
}

// splitObjectName splits name into its path segments. Empty, "." and ".."
// segments are rejected since a server would resolve them away.
func splitObjectName(name string) ([]string, error) {
	segments := strings.Split(name, "/")
	for _, s := range segments {
		if s == "" || s == "." || s == ".." {
			return nil, fmt.Errorf("invalid object name %q", name)
		}
	}
	return segments, nil
}
