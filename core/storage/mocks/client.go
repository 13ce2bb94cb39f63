package mocks

import (
	"context"

	"imgbase/core/storage"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) Upload(ctx context.Context, name string, data []byte, mimeType string) storage.UploadResult {
	args := m.Called(ctx, name, data, mimeType)
	return args.Get(0).(storage.UploadResult)
}

func (m *Client) List(ctx context.Context) storage.ListResult {
	args := m.Called(ctx)
	return args.Get(0).(storage.ListResult)
}

func (m *Client) Delete(ctx context.Context, names []string) storage.DeleteResult {
	args := m.Called(ctx, names)
	return args.Get(0).(storage.DeleteResult)
}

func (m *Client) PublicURL(name string) string {
	args := m.Called(name)
	return args.String(0)
}

func (m *Client) Bucket() string {
	args := m.Called()
	return args.String(0)
}
