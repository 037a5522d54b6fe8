package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestWatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 16)
	errc := make(chan error, 1)
	go func() {
		errc <- watchFile(ctx, path, log.New(io.Discard), func() { calls <- struct{}{} })
	}()

	// The watcher may not be registered yet, so keep writing until it fires.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for fired := false; !fired; {
		select {
		case <-calls:
			fired = true
		case <-tick.C:
			os.WriteFile(path, []byte(`{"width": 1}`), 0o644)
		case <-deadline:
			t.Fatal("no callback after writing the watched file")
		}
	}

	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("watchFile() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watchFile did not return after cancel")
	}
}

func TestWatchFileIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	called := false
	go func() {
		for i := 0; i < 5; i++ {
			time.Sleep(50 * time.Millisecond)
			os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644)
		}
	}()
	if err := watchFile(ctx, path, log.New(io.Discard), func() { called = true }); err != nil {
		t.Fatalf("watchFile() = %v", err)
	}
	if called {
		t.Error("callback fired for a sibling file")
	}
}

func TestWatchFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone", "room.json")
	err := watchFile(context.Background(), path, log.New(io.Discard), func() {})
	if err == nil {
		t.Fatal("expected error for a missing directory")
	}
}
