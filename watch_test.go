package skincfg_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skincfg"
)

func TestSkinWatcher(t *testing.T) {
	t.Run("Initial Store And Reload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "skin.ini")
		require.NoError(t, os.WriteFile(path, []byte("[General]\nName: original\nVersion: 1.0\n"), 0644))

		opts := skincfg.WatchOptions{
			PollInterval: skincfg.MinPollInterval,
			Debounce:     skincfg.MinPollInterval,
		}

		watcher, initial, err := skincfg.WatchFile(path, opts, skincfg.DefaultDecodeOptions())
		require.NoError(t, err)
		defer watcher.Stop()

		require.NotNil(t, initial)
		assert.Equal(t, "original", *initial.Settings["Name"])

		updates := watcher.Subscribe()

		// Longer content so a coarse mod-time still registers via size.
		require.NoError(t, os.WriteFile(path, []byte("[General]\nName: rewritten skin\nVersion: 2.3\n"), 0644))

		select {
		case store := <-updates:
			require.NotNil(t, store)
			assert.Equal(t, "rewritten skin", *store.Settings["Name"])
			require.NotNil(t, store.LegacyVersion)
			assert.Equal(t, 2.3, *store.LegacyVersion)
		case <-time.After(10 * time.Second):
			t.Fatal("timed out waiting for reloaded store")
		}
	})

	t.Run("Missing File Fails To Start", func(t *testing.T) {
		_, _, err := skincfg.WatchFile(
			filepath.Join(t.TempDir(), "absent.ini"),
			skincfg.DefaultWatchOptions(),
			skincfg.DefaultDecodeOptions(),
		)
		assert.ErrorIs(t, err, skincfg.ErrSkinNotFound)
	})

	t.Run("Stop Closes Subscriber Channels", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "skin.ini")
		require.NoError(t, os.WriteFile(path, []byte("[General]\nName: stop test\n"), 0644))

		watcher, _, err := skincfg.WatchFile(path, skincfg.DefaultWatchOptions(), skincfg.DefaultDecodeOptions())
		require.NoError(t, err)

		updates := watcher.Subscribe()
		watcher.Stop()

		_, open := <-updates
		assert.False(t, open)
	})
}
