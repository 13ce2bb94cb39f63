package loader_test

import (
	"errors"
	"testing"

	"imgbase/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		on := &fakeFeature{name: "upload", enabled: true}
		off := &fakeFeature{name: "activity", enabled: false}

		mgr := loader.NewManager(zap.NewNop())
		mgr.Register(on)
		mgr.Register(off)

		assert.NoError(t, mgr.LoadAll(fiber.New()))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
		assert.Len(t, mgr.Features(), 2)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		bad := &fakeFeature{name: "gallery", enabled: true, err: errors.New("boom")}
		after := &fakeFeature{name: "activity", enabled: true}

		mgr := loader.NewManager(nil)
		mgr.Register(bad)
		mgr.Register(after)

		err := mgr.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "failed to load feature gallery: boom")
		assert.False(t, after.loaded)
	})
}
