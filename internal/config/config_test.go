package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/soettl/fluentui/internal/domain"
	"github.com/soettl/fluentui/internal/eventbus"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewConfigServiceWithBus(nil, path)

	cfg, err := cs.Load()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, path, cs.Path())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, `
item_count = 500

[list]
compact = true
overscan_ratio = 1.5

[scroll]
stopped_scrolling_timeout = "300ms"
`)

	cfg, err := NewConfigServiceWithBus(nil, path).Load()
	require.NoError(t, err)

	require.Equal(t, 500, cfg.ItemCount)
	require.True(t, cfg.List.Compact)
	require.Equal(t, 1.0, cfg.List.CurrentItemHeight())
	require.Equal(t, 1.5, cfg.List.OverscanRatio)
	require.Equal(t, 300*time.Millisecond, cfg.Scroll.StoppedScrollingTimeout.Duration)
	require.Equal(t, 16*time.Millisecond, cfg.Scroll.FrameInterval.Duration)
	require.True(t, cfg.List.EnableHardwareAccelleration)
	require.Equal(t, 50, cfg.Loader.PageSize)
}

func TestLoad_RejectsInvalidGeometry(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero item height", "[list]\nitem_height = 0\n"},
		{"negative compact height", "[list]\ncompact_item_height = -1\n"},
		{"negative item count", "item_count = -3\n"},
		{"negative overscan", "[list]\noverscan_ratio = -0.1\n"},
		{"infinite overscan", "[list]\noverscan_ratio = inf\n"},
		{"NaN overscan", "[list]\noverscan_ratio = nan\n"},
		{"infinite scroll overscan", "[list]\nscroll_overscan_ratio = inf\n"},
		{"infinite surface top", "[list]\nsurface_top = inf\n"},
		{"zero wheel step", "[scroll]\nwheel_step = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			writeConfig(t, path, tt.content)

			_, err := NewConfigServiceWithBus(nil, path).Load()
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_ParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	writeConfig(t, path, "[scroll]\nframe_interval = \"soon\"\n")
	_, err := NewConfigServiceWithBus(nil, path).Load()
	require.Error(t, err)

	writeConfig(t, path, "unknown_key = 1\n")
	_, err = NewConfigServiceWithBus(nil, path).Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := NewConfigServiceWithBus(nil, path)

	cfg := DefaultConfig()
	cfg.List.Compact = true
	cfg.Loader.Latency = Duration{time.Second}
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoad_PublishesConfigLoaded(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	loaded := make(chan domain.ConfigLoadedEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(domain.ConfigLoadedEvent)
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := NewConfigServiceWithBus(bus, path).Load()
	require.NoError(t, err)

	select {
	case e := <-loaded:
		require.Equal(t, path, e.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("no ConfigLoaded event")
	}
}

func TestWatcher_SignalsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "item_count = 1\n")

	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	changes, err := w.Start()
	require.NoError(t, err)
	defer w.Stop()

	writeConfig(t, filepath.Join(filepath.Dir(path), "other.toml"), "x = 1\n")
	writeConfig(t, path, "item_count = 2\n")

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("no change signalled")
	}
}
