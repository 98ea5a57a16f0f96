package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchdeck/internal/eventbus"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_Missing(t *testing.T) {
	svc := NewConfigService("")
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.UI.Pagination = PaginationDots
	cfg.UI.OverviewColumns = 3
	cfg.Input.SwipeThreshold = 72
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), LocalFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
pagination = "counter"
constrained_width = 60
`), 0644))

	cfg, err := NewConfigService("").LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, PaginationCounter, cfg.UI.Pagination)
	assert.Equal(t, 60, cfg.UI.ConstrainedWidth)
	assert.Equal(t, 4, cfg.UI.OverviewColumns)
	assert.Equal(t, 50.0, cfg.Input.SwipeThreshold)
	assert.Equal(t, "**/*.md", cfg.Deck.Pattern)
}

func TestLoadFromPath_RejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"unknown pagination": "[ui]\npagination = \"roman\"\n",
		"zero swipe":         "[input]\nswipe_threshold = 0.0\n",
		"bad toml":           "[ui\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))

			_, err := NewConfigService(path).Load()
			require.Error(t, err)
		})
	}
}

func TestConfigService_PublishesEvents(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	loaded := make(chan string, 1)
	saved := make(chan string, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(eventbus.ConfigLoadedEvent).Path
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		saved <- e.(eventbus.ConfigSavedEvent).Path
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigServiceWithBus(path, bus)

	_, err := svc.Load()
	require.NoError(t, err)
	require.NoError(t, svc.Save(DefaultConfig()))

	select {
	case p := <-loaded:
		assert.Equal(t, path, p)
	case <-time.After(time.Second):
		t.Fatal("config loaded event not delivered")
	}
	select {
	case p := <-saved:
		assert.Equal(t, path, p)
	case <-time.After(time.Second):
		t.Fatal("config saved event not delivered")
	}
}
