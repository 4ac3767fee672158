package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"artspace/internal/config"
	"artspace/internal/config/logger"
)

func Test_NewWatcher_Disabled(t *testing.T) {
	tests := []struct {
		name  string
		dir   string
		watch bool
	}{
		{name: "Watch off", dir: "/tmp", watch: false},
		{name: "No directory", dir: "", watch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Assets.Dir = tt.dir
			cfg.Assets.Watch = tt.watch

			w, err := NewWatcher(cfg, nil, logger.NewSilentLogger())
			require.NoError(t, err)

			assert.False(t, w.Enabled())
			assert.NoError(t, w.Start())

			w.Close()
			w.Close()
		})
	}
}

func Test_Watcher_ReloadsChangedArt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Assets.Dir = dir
	cfg.Assets.Watch = true
	cfg.Assets.Debounce = 20 * time.Millisecond

	mockProvider := NewMockProvider(ctrl)
	mockProvider.EXPECT().Invalidate("image4").MinTimes(1)

	w, err := NewWatcher(cfg, mockProvider, logger.NewSilentLogger())
	require.NoError(t, err)
	require.True(t, w.Enabled())
	require.NoError(t, w.Start())

	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "image4.txt"), []byte("tiger"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0600))

	select {
	case ref := <-w.Changes():
		assert.Equal(t, "image4", ref)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change notification")
	}
}

func Test_Watcher_StartMissingDir(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Assets.Dir = filepath.Join(t.TempDir(), "missing")
	cfg.Assets.Watch = true

	w, err := NewWatcher(cfg, nil, logger.NewSilentLogger())
	require.NoError(t, err)

	defer w.Close()

	assert.Error(t, w.Start())
}

func Test_Watcher_CloseClosesChanges(t *testing.T) {
	cfg := config.DefaultConfig()

	w, err := NewWatcher(cfg, nil, logger.NewSilentLogger())
	require.NoError(t, err)

	w.Close()

	_, ok := <-w.Changes()
	assert.False(t, ok)
}
