package storage

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type panickingTransport struct{}

func (panickingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	panic("transport exploded")
}

func TestSupabaseOperationsRecoverPanics(t *testing.T) {
	c := &supabaseClient{
		http:    &http.Client{Transport: panickingTransport{}},
		baseURL: "http://storage.invalid",
		bucket:  "images",
		apiKey:  "anon-key",
		logger:  zap.NewNop(),
	}
	ctx := context.Background()

	results := map[string]any{
		"upload": c.Upload(ctx, "a.jpg", []byte("x"), ""),
		"list":   c.List(ctx),
		"delete": c.Delete(ctx, []string{"a.jpg"}),
	}

	for op, res := range results {
		f := AsFailure(res)
		require.NotNil(t, f, op)
		assert.Equal(t, KindUnexpected, f.Kind, op)
		assert.Equal(t, 0, f.StatusCode, op)
		assert.Equal(t, "unexpected error: transport exploded", f.Message, op)
	}
}

func TestSplitObjectName(t *testing.T) {
	segments, err := splitObjectName("2024/summer/a b.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024", "summer", "a b.jpg"}, segments)

	for _, name := range []string{"", ".", "..", "a/../b", "a//b", "/a", "a/"} {
		_, err := splitObjectName(name)
		assert.Error(t, err, name)
	}
}
