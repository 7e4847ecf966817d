package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFrom_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capsule.toml")
	require.NoError(t, os.WriteFile(path, []byte("item_width = 10\n"), 0o600))

	got := make(chan NavigationConfig, 4)
	stop, err := WatchFrom(func(cfg NavigationConfig, err error) {
		if err == nil {
			got <- cfg
		}
	}, path, filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("item_width = 14\n"), 0o600))

	// a truncate and a write may arrive as separate events
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-got:
			if cfg.ItemWidth == 14 {
				return
			}
		case <-timeout:
			t.Fatal("no reload after the file changed")
		}
	}
}

func TestWatchFrom_NothingToWatch(t *testing.T) {
	stop, err := WatchFrom(func(NavigationConfig, error) {}, filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.NotPanics(t, stop)
}
