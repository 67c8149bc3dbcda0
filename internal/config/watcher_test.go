package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motive.toml")
	if err := os.WriteFile(path, []byte("[movement]\nwrap_search = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := make(chan Config, 1)
	w, err := NewWatcher(path, func(cfg Config, err error) {
		if err != nil {
			t.Errorf("reload error: %v", err)
			return
		}
		select {
		case got <- cfg:
		default:
		}
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[movement]\nwrap_search = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-got:
		if cfg.Movement.WrapSearch {
			t.Error("reload did not pick up wrap_search = false")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within timeout")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motive.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 1)
	w, err := NewWatcher(path, func(Config, error) {
		select {
		case fired <- struct{}{}:
		default:
		}
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
		t.Error("sibling write triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

// Once Close returns, no reload may still be in flight, even if the debounce
// timer had already fired.
func TestWatcherNoReloadAfterClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motive.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int64
	w, err := NewWatcher(path, func(Config, error) {
		calls.Add(1)
	}, WithDebounce(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("[movement]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	settled := calls.Load()
	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != settled {
		t.Errorf("handler ran after Close: %d calls, then %d", settled, got)
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motive.toml")
	w, err := NewWatcher(path, func(Config, error) {})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}
