package storage_test

import (
	"testing"
	"time"

	"imgbase/core/storage"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     storage.Config
		wantErr string
	}{
		{"Supabase", storage.Config{Driver: "supabase", URL: "https://x.supabase.co", Bucket: "images", APIKey: "k"}, ""},
		{"S3", storage.Config{Driver: "s3", URL: "localhost:9000", Bucket: "images", AccessKey: "a", SecretKey: "s"}, ""},
		{"MissingKey", storage.Config{Driver: "supabase", URL: "https://x.supabase.co", Bucket: "images"}, "storage.api_key is required"},
		{"MissingURL", storage.Config{Driver: "supabase", Bucket: "images", APIKey: "k"}, "storage.url is required"},
		{"MissingBucket", storage.Config{Driver: "supabase", URL: "https://x.supabase.co", APIKey: "k"}, "storage.bucket is required"},
		{"MissingS3Creds", storage.Config{Driver: "s3", URL: "localhost:9000", Bucket: "images"}, "storage.access_key and storage.secret_key are required"},
		{"UnknownDriver", storage.Config{Driver: "ftp"}, `unknown storage driver "ftp"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, storage.DefaultTimeout, storage.Config{}.Timeout())
	assert.Equal(t, 3*time.Second, storage.Config{TimeoutSeconds: 3}.Timeout())
}

func TestNewClient_InvalidConfig(t *testing.T) {
	client, err := storage.NewClient(storage.Config{Driver: "supabase"}, zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, client)
}
