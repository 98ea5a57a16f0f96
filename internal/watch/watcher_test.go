package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"pitchdeck/internal/eventbus"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func waitForChange(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case p := <-ch:
		return p
	case <-time.After(3 * time.Second):
		t.Fatal("no deck change published")
		return ""
	}
}

func subscribeChanges(bus eventbus.EventBus) <-chan string {
	ch := make(chan string, 8)
	bus.Subscribe(eventbus.EventDeckChanged, func(e eventbus.DomainEvent) {
		ch <- e.(eventbus.DeckChangedEvent).Path
	})
	return ch
}

func TestWatcher_FileDeck(t *testing.T) {
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "slides.md")
	require.NoError(t, os.WriteFile(deckPath, []byte("# One\n"), 0644))

	bus := eventbus.New(nil)
	defer bus.Close()
	changes := subscribeChanges(bus)

	w, err := New(deckPath, "", bus, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	// Unrelated files next to the deck are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(deckPath, []byte("# One\n---\n# Two\n"), 0644))

	abs, _ := filepath.Abs(deckPath)
	require.Equal(t, abs, waitForChange(t, changes))
}

func TestWatcher_DirectoryDeckCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01.md"), []byte("# One\n"), 0644))

	bus := eventbus.New(nil)
	defer bus.Close()
	changes := subscribeChanges(bus)

	w, err := New(dir, "", bus, nil)
	require.NoError(t, err)
	w.SetDebounce(150 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "02.md"), []byte("# Two\n"), 0644))
	}
	waitForChange(t, changes)

	select {
	case <-changes:
		t.Fatal("burst should produce a single change")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	dir := t.TempDir()
	bus := eventbus.New(nil)
	defer bus.Close()

	w, err := New(dir, "", bus, nil)
	require.NoError(t, err)
	w.Stop()
}

func TestNew_MissingDeck(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	_, err := New(filepath.Join(t.TempDir(), "missing.md"), "", bus, nil)
	require.Error(t, err)
}

func expectQuiet(t *testing.T, ch <-chan string, d time.Duration) {
	t.Helper()
	select {
	case p := <-ch:
		t.Fatalf("unexpected deck change for %s", p)
	case <-time.After(d):
	}
}

func TestWatcher_DirectoryIgnoresNonSlideFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01.md"), []byte("# One\n"), 0644))
	swap := filepath.Join(dir, ".01.md.swp")
	require.NoError(t, os.WriteFile(swap, []byte("x"), 0644))

	bus := eventbus.New(nil)
	defer bus.Close()
	changes := subscribeChanges(bus)

	w, err := New(dir, "", bus, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.tmp"), []byte("x"), 0644))
	require.NoError(t, os.Remove(filepath.Join(dir, "notes.tmp")))
	require.NoError(t, os.Remove(swap))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_draft.md"), []byte("# Draft\n"), 0644))
	expectQuiet(t, changes, 300*time.Millisecond)

	require.NoError(t, os.Remove(filepath.Join(dir, "01.md")))
	waitForChange(t, changes)
}

func TestWatcher_CustomPattern(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01.slide"), []byte("# One\n"), 0644))

	bus := eventbus.New(nil)
	defer bus.Close()
	changes := subscribeChanges(bus)

	w, err := New(dir, "*.slide", bus, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("# Readme\n"), 0644))
	expectQuiet(t, changes, 300*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "02.slide"), []byte("# Two\n"), 0644))
	abs, _ := filepath.Abs(dir)
	require.Equal(t, abs, waitForChange(t, changes))
}

func TestWatcher_RemovedSubdirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "part2")
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01.md"), []byte("# One\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "02.md"), []byte("# Two\n"), 0644))

	bus := eventbus.New(nil)
	defer bus.Close()
	changes := subscribeChanges(bus)

	w, err := New(dir, "", bus, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.RemoveAll(sub))
	waitForChange(t, changes)
}

func TestNew_InvalidPattern(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	_, err := New(t.TempDir(), "[", bus, nil)
	require.Error(t, err)
}
