package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langlint/langlint/internal/registry"
	"github.com/langlint/langlint/internal/watcher"
)

// receiveEvent asserts a registry event of the given type is pending.
func receiveEvent(t *testing.T, events <-chan registry.LocaleEvent, want registry.EventType) {
	t.Helper()
	select {
	case event := <-events:
		assert.Equal(t, want, event.Type)
	default:
		t.Fatalf("expected a %s registry event", want)
	}
}

func TestSyncLocaleFile_RegistersAndBroadcasts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.yaml")
	require.NoError(t, os.WriteFile(path, []byte("greeting: hello\n"), 0644))

	reg := registry.NewLocaleRegistry()
	events := reg.Watch()

	err := syncLocaleFile(reg, watcher.ChangeEvent{Type: watcher.EventTypeCreated, Path: path})
	require.NoError(t, err)

	info, ok := reg.Get("en")
	require.True(t, ok)
	assert.True(t, info.Paths.Contains("greeting"))
	assert.Equal(t, path, info.FilePath)
	receiveEvent(t, events, registry.EventTypeAdded)

	// An edit re-registers the same tag in place
	require.NoError(t, os.WriteFile(path, []byte("greeting: hi\nfarewell: bye\n"), 0644))
	err = syncLocaleFile(reg, watcher.ChangeEvent{Type: watcher.EventTypeModified, Path: path})
	require.NoError(t, err)

	info, ok = reg.Get("en")
	require.True(t, ok)
	assert.True(t, info.Paths.Contains("farewell"))
	receiveEvent(t, events, registry.EventTypeUpdated)
}

func TestSyncLocaleFile_DeletionDropsTag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "de.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: x\n"), 0644))

	reg := registry.NewLocaleRegistry()
	require.NoError(t, syncLocaleFile(reg, watcher.ChangeEvent{Type: watcher.EventTypeCreated, Path: path}))

	events := reg.Watch()
	require.NoError(t, os.Remove(path))
	require.NoError(t, syncLocaleFile(reg, watcher.ChangeEvent{Type: watcher.EventTypeDeleted, Path: path}))

	_, ok := reg.Get("de")
	assert.False(t, ok)
	receiveEvent(t, events, registry.EventTypeRemoved)
}

func TestSyncLocaleFile_BadFileLeavesRegistryIntact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.yaml")
	require.NoError(t, os.WriteFile(path, []byte("greeting: hello\n"), 0644))

	reg := registry.NewLocaleRegistry()
	require.NoError(t, syncLocaleFile(reg, watcher.ChangeEvent{Type: watcher.EventTypeCreated, Path: path}))

	require.NoError(t, os.WriteFile(path, []byte("greeting: [unclosed\n"), 0644))
	err := syncLocaleFile(reg, watcher.ChangeEvent{Type: watcher.EventTypeModified, Path: path})
	assert.Error(t, err)

	// The last good dictionary stays registered
	info, ok := reg.Get("en")
	require.True(t, ok)
	assert.True(t, info.Paths.Contains("greeting"))
}

func TestIsLocaleFile(t *testing.T) {
	cfg, _ := testConfig(t,
		map[string]string{"en.yaml": "a: x\n"},
		map[string]string{})

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"locale yaml", filepath.Join(cfg.Locales.Dir, "en.yaml"), true},
		{"locale json", filepath.Join(cfg.Locales.Dir, "de.json"), true},
		{"nested yaml", filepath.Join(cfg.Locales.Dir, "sub", "en.yaml"), false},
		{"yaml outside locales dir", filepath.Join(t.TempDir(), "en.yaml"), false},
		{"source file in locales dir", filepath.Join(cfg.Locales.Dir, "page.go"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLocaleFile(cfg, tt.path))
		})
	}
}
