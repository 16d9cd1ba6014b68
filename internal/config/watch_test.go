package config

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

const watchTimeout = 5 * time.Second

func TestWatchReloads(t *testing.T) {
	path := writeFile(t, "gridterm.toml", "[log]\nlevel = \"info\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	deadline := time.After(watchTimeout)
	for {
		select {
		case cfg := <-w.Updates():
			if cfg.Log.Level == "debug" {
				return
			}
		case err := <-w.Errors():
			// a write observed half-way may fail to parse; the next event fixes it
			t.Logf("transient reload error: %v", err)
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatchReportsInvalidFile(t *testing.T) {
	path := writeFile(t, "gridterm.toml", "")

	w, err := Watch(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[frame]\nmode = \"window\"\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case err := <-w.Errors():
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("expected *ValidationError, got %v", err)
		}
	case <-time.After(watchTimeout):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatchClose(t *testing.T) {
	path := writeFile(t, "gridterm.toml", "")

	w, err := Watch(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("expected second close to be a no-op, got %v", err)
	}

	if _, ok := <-w.Updates(); ok {
		t.Error("expected updates channel closed")
	}
}

func TestWatchContextCancel(t *testing.T) {
	path := writeFile(t, "gridterm.toml", "")

	ctx, cancel := context.WithCancel(context.Background())
	w, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	cancel()
	select {
	case _, ok := <-w.Updates():
		if ok {
			t.Error("expected no update after cancel")
		}
	case <-time.After(watchTimeout):
		t.Fatal("timed out waiting for watcher to stop")
	}
}
