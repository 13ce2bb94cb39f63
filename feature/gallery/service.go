package gallery

import (
	"context"
	"fmt"

	"imgbase/core/storage"
	"imgbase/feature/activity"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// EmptyMessage is shown when the bucket holds no objects.
const EmptyMessage = "the bucket is empty"

// Item is one image in the gallery.
type Item struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Service lists and deletes bucket images for the admin.
type Service struct {
	client   storage.Client
	recorder activity.Recorder
	logger   *zap.Logger
	// listing coalesces concurrent List calls into one backend request.
	listing singleflight.Group
}

// NewService creates a new gallery service.
func NewService(client storage.Client, recorder activity.Recorder, logger *zap.Logger) *Service {
	if recorder == nil {
		recorder = activity.NopRecorder{}
	}
	return &Service{client: client, recorder: recorder, logger: logger}
}

// List returns the first page of images with their public URLs.
// Callers arriving while a listing is in flight share its result. The shared
// request is detached from every caller's cancellation; a cancelled caller
// stops waiting and gets a network Failure while the others keep theirs.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, cancelled(err)
	}

	ch := s.listing.DoChan("list", func() (any, error) {
		return s.list(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, cancelled(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.logger.Debug("Shared in-flight listing")
		}
		return res.Val.([]Item), nil
	}
}

func cancelled(err error) *storage.Failure {
	return &storage.Failure{Kind: storage.KindNetwork, Message: "network error: " + err.Error()}
}

func (s *Service) list(ctx context.Context) ([]Item, error) {
	switch r := s.client.List(ctx).(type) {
	case storage.ListSuccess:
		items := make([]Item, 0, len(r.Items))
		for _, name := range r.Items {
			items = append(items, Item{Name: name, URL: s.client.PublicURL(name)})
		}
		return items, nil
	case *storage.Failure:
		return nil, r
	default:
		return nil, fmt.Errorf("unknown list result %T", r)
	}
}

// Delete removes the selected images and returns how many were requested.
func (s *Service) Delete(ctx context.Context, names []string) (int, error) {
	res := s.client.Delete(ctx, names)
	if len(names) > 0 {
		s.recorder.Record(ctx, storage.OpDelete, names, res)
	}

	switch r := res.(type) {
	case storage.DeleteSuccess:
		return len(names), nil
	case *storage.Failure:
		return 0, r
	default:
		return 0, fmt.Errorf("unknown delete result %T", r)
	}
}

// DeletedMessage is the confirmation shown after a successful delete.
func DeletedMessage(n int) string {
	return fmt.Sprintf("deleted (%d)", n)
}
