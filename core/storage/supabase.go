package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// supabaseClient talks to the Supabase Storage REST API.
type supabaseClient struct {
	http    *http.Client
	baseURL string
	bucket  string
	apiKey  string
	logger  *zap.Logger
}

type listRequest struct {
	Prefix string `json:"prefix"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type listEntry struct {
	Name json.RawMessage `json:"name"`
}

type deleteRequest struct {
	Prefixes []string `json:"prefixes"`
}

func newSupabaseClient(cfg Config, logger *zap.Logger) *supabaseClient {
	timeout := cfg.Timeout()
	return &supabaseClient{
		http: &http.Client{
			Transport: newTransport(timeout),
			// connect + write + read
			Timeout: 3 * timeout,
		},
		baseURL: strings.TrimRight(cfg.URL, "/"),
		bucket:  cfg.Bucket,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

func (c *supabaseClient) Bucket() string {
	return c.bucket
}

func (c *supabaseClient) PublicURL(name string) string {
	return c.endpoint("storage/v1/object/public", append([]string{c.bucket}, strings.Split(name, "/")...)...)
}

func (c *supabaseClient) Upload(ctx context.Context, name string, data []byte, mimeType string) (res UploadResult) {
	defer func() {
		if r := recover(); r != nil {
			res = recovered(r)
		}
		observe(c.logger, OpUpload, res, zap.String("name", name), zap.Int("size", len(data)))
	}()

	segments, err := splitObjectName(name)
	if err != nil {
		return unexpectedFailure(err)
	}
	if mimeType == "" {
		mimeType = DefaultMimeType
	}

	status, body, f := c.do(ctx, http.MethodPost, c.endpoint("storage/v1/object", append([]string{c.bucket}, segments...)...), mimeType, data)
	if f != nil {
		return f
	}
	if !isSuccess(status) {
		return classifyStatus(OpUpload, c.bucket, status, body)
	}
	return UploadSuccess{}
}

func (c *supabaseClient) List(ctx context.Context) (res ListResult) {
	defer func() {
		if r := recover(); r != nil {
			res = recovered(r)
		}
		observe(c.logger, OpList, res)
	}()

	payload, err := json.Marshal(listRequest{Prefix: "", Limit: ListLimit, Offset: 0})
	if err != nil {
		return unexpectedFailure(err)
	}

	status, body, f := c.do(ctx, http.MethodPost, c.endpoint("storage/v1/object/list", c.bucket), "application/json", payload)
	if f != nil {
		return f
	}
	if !isSuccess(status) {
		return classifyStatus(OpList, c.bucket, status, body)
	}
	if len(body) == 0 {
		return &Failure{Kind: KindEmptyResponse, StatusCode: status, Message: "empty response received"}
	}

	names, err := parseNames(body)
	if err != nil {
		return &Failure{Kind: KindParse, StatusCode: status, Message: "failed to parse response: " + err.Error()}
	}
	return ListSuccess{Items: names}
}

func (c *supabaseClient) Delete(ctx context.Context, names []string) (res DeleteResult) {
	defer func() {
		if r := recover(); r != nil {
			res = recovered(r)
		}
		observe(c.logger, OpDelete, res, zap.Int("count", len(names)))
	}()

	if len(names) == 0 {
		return DeleteSuccess{}
	}

	payload, err := json.Marshal(deleteRequest{Prefixes: names})
	if err != nil {
		return unexpectedFailure(err)
	}

	status, body, f := c.do(ctx, http.MethodDelete, c.endpoint("storage/v1/object", c.bucket), "application/json", payload)
	if f != nil {
		return f
	}
	if !isSuccess(status) {
		return classifyStatus(OpDelete, c.bucket, status, body)
	}
	return DeleteSuccess{}
}

// do sends one authenticated request and reads the whole response body.
// Transport and body read errors become network failures.
func (c *supabaseClient) do(ctx context.Context, method, target, contentType string, payload []byte) (int, []byte, *Failure) {
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, unexpectedFailure(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, networkFailure(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, networkFailure(err)
	}
	return resp.StatusCode, body, nil
}

// endpoint appends route and the escaped segments to the base URL. The path is
// not cleaned, so every segment reaches the server exactly as given.
func (c *supabaseClient) endpoint(route string, segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString("/")
	b.WriteString(route)
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// parseNames extracts the name field of every object in a JSON array.
// Numbers and booleans are accepted and kept in their JSON text form.
func parseNames(body []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("expected a JSON array")
	}

	var entries []listEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for i, e := range entries {
		name, err := scalarName(e.Name)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		names = append(names, name)
	}
	return names, nil
}

func scalarName(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", errors.New("no name")
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", errors.New("name is not a scalar")
	default:
		// number, true or false
		return string(raw), nil
	}
}
