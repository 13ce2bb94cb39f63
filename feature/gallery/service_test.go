package gallery

import (
	"context"
	"sync"
	"testing"
	"time"

	"imgbase/core/storage"
	"imgbase/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorderMock struct {
	mock.Mock
}

func (m *recorderMock) Record(ctx context.Context, op storage.Operation, objects []string, result any) {
	m.Called(ctx, op, objects, result)
}

func TestService_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, nil, zap.NewNop())

		client.On("List", mock.Anything).Return(storage.ListSuccess{Items: []string{"b.jpg", "a.png"}})
		client.On("PublicURL", "b.jpg").Return("url/b.jpg")
		client.On("PublicURL", "a.png").Return("url/a.png")

		items, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []Item{{Name: "b.jpg", URL: "url/b.jpg"}, {Name: "a.png", URL: "url/a.png"}}, items)
	})

	t.Run("Empty", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, nil, zap.NewNop())
		client.On("List", mock.Anything).Return(storage.ListSuccess{Items: []string{}})

		items, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("Failure", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, nil, zap.NewNop())
		failure := &storage.Failure{Kind: storage.KindNotFound, StatusCode: 404, Message: "bucket not found: images"}
		client.On("List", mock.Anything).Return(failure)

		items, err := svc.List(context.Background())
		assert.Nil(t, items)
		assert.Same(t, failure, err)
	})
}

func TestService_ListCoalesces(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, nil, zap.NewNop())

	entered := make(chan struct{})
	release := make(chan struct{})
	client.On("List", mock.Anything).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return(storage.ListSuccess{Items: []string{"a.jpg"}}).Once()
	client.On("PublicURL", "a.jpg").Return("url/a.jpg")

	var wg sync.WaitGroup
	results := make([][]Item, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = svc.List(context.Background())
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = svc.List(context.Background())
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	client.AssertNumberOfCalls(t, "List", 1)
	assert.Equal(t, results[0], results[1])
	assert.Len(t, results[0], 1)
}

func TestService_ListCancellationIsPerCaller(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, nil, zap.NewNop())

	entered := make(chan struct{})
	release := make(chan struct{})
	var backendErr error
	client.On("List", mock.Anything).Run(func(args mock.Arguments) {
		close(entered)
		<-release
		backendErr = args.Get(0).(context.Context).Err()
	}).Return(storage.ListSuccess{Items: []string{"a.jpg"}}).Once()
	client.On("PublicURL", "a.jpg").Return("url/a.jpg")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := make(chan error, 1)
	go func() {
		_, err := svc.List(ctx)
		first <- err
	}()
	<-entered

	type outcome struct {
		items []Item
		err   error
	}
	second := make(chan outcome, 1)
	go func() {
		items, err := svc.List(context.Background())
		second <- outcome{items, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	var f *storage.Failure
	require.ErrorAs(t, <-first, &f)
	assert.Equal(t, storage.KindNetwork, f.Kind)

	close(release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, []Item{{Name: "a.jpg", URL: "url/a.jpg"}}, got.items)
	assert.NoError(t, backendErr)
	client.AssertNumberOfCalls(t, "List", 1)
}

func TestService_ListAlreadyCancelled(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := svc.List(ctx)
	assert.Nil(t, items)
	var f *storage.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, storage.KindNetwork, f.Kind)
	client.AssertNotCalled(t, "List", mock.Anything)
}

func TestService_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		rec := new(recorderMock)
		svc := NewService(client, rec, zap.NewNop())

		names := []string{"a.jpg", "b.jpg"}
		client.On("Delete", mock.Anything, names).Return(storage.DeleteSuccess{})
		rec.On("Record", mock.Anything, storage.OpDelete, names, storage.DeleteSuccess{}).Return()

		n, err := svc.Delete(context.Background(), names)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		rec.AssertExpectations(t)
	})

	t.Run("EmptySelectionIsNotRecorded", func(t *testing.T) {
		client := new(mocks.Client)
		rec := new(recorderMock)
		svc := NewService(client, rec, zap.NewNop())
		client.On("Delete", mock.Anything, []string(nil)).Return(storage.DeleteSuccess{})

		n, err := svc.Delete(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		rec.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure", func(t *testing.T) {
		client := new(mocks.Client)
		rec := new(recorderMock)
		svc := NewService(client, rec, zap.NewNop())

		failure := &storage.Failure{Kind: storage.KindPermission, StatusCode: 403, Message: "permission denied: check delete permission"}
		client.On("Delete", mock.Anything, []string{"a.jpg"}).Return(failure)
		rec.On("Record", mock.Anything, storage.OpDelete, []string{"a.jpg"}, failure).Return()

		n, err := svc.Delete(context.Background(), []string{"a.jpg"})
		assert.Zero(t, n)
		assert.Same(t, failure, err)
		rec.AssertExpectations(t)
	})
}

func TestDeletedMessage(t *testing.T) {
	assert.Equal(t, "deleted (3)", DeletedMessage(3))
}
