package upload

import (
	"context"
	"fmt"
	"time"

	"imgbase/core/storage"
	"imgbase/core/utils"
	"imgbase/feature/activity"

	"go.uber.org/zap"
)

// Receipt describes a stored image.
type Receipt struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Service uploads user images to the bucket.
type Service struct {
	client   storage.Client
	recorder activity.Recorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new upload service.
func NewService(client storage.Client, recorder activity.Recorder, logger *zap.Logger) *Service {
	if recorder == nil {
		recorder = activity.NopRecorder{}
	}
	return &Service{
		client:   client,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Upload stores data under the first usable name candidate and returns its public URL.
// A storage failure is returned as a *storage.Failure.
func (s *Service) Upload(ctx context.Context, data []byte, mimeType string, names ...string) (*Receipt, error) {
	name := utils.ImageName(s.now(), names...)

	res := s.client.Upload(ctx, name, data, mimeType)
	s.recorder.Record(ctx, storage.OpUpload, []string{name}, res)

	switch r := res.(type) {
	case storage.UploadSuccess:
		return &Receipt{Name: name, URL: s.client.PublicURL(name)}, nil
	case *storage.Failure:
		return nil, r
	default:
		return nil, fmt.Errorf("unknown upload result %T", res)
	}
}
