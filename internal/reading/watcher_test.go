package reading

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_DetectsChange(t *testing.T) {
	dir := t.TempDir()

	// Create a reading file.
	file := filepath.Join(dir, "subject.toml")
	if err := os.WriteFile(file, []byte(fullRequest), 0644); err != nil {
		t.Fatalf("failed to create reading file: %v", err)
	}

	w, err := NewWatcher(dir, 0)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// Modify the file.
	if err := os.WriteFile(file, []byte(fullRequest+"\n"), 0644); err != nil {
		t.Fatalf("failed to update reading file: %v", err)
	}

	// Wait for change with timeout.
	select {
	case change := <-w.Changes:
		if change.Kind != ChangeModified {
			t.Errorf("expected ChangeModified, got %d", change.Kind)
		}
		if filepath.Base(change.File) != "subject.toml" {
			t.Errorf("expected subject.toml, got %q", change.File)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_IgnoresNonTOMLFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir, 0)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// Write a non-toml file.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	// Should not receive any change.
	select {
	case change := <-w.Changes:
		t.Errorf("unexpected change event: %+v", change)
	case <-time.After(300 * time.Millisecond):
		// Expected: no events for non-toml files.
	}
}

func TestWatcher_DetectsRemoval(t *testing.T) {
	dir := t.TempDir()

	// Create a reading file before starting the watcher.
	file := filepath.Join(dir, "removable.toml")
	if err := os.WriteFile(file, []byte(fullRequest), 0644); err != nil {
		t.Fatalf("failed to create reading file: %v", err)
	}

	w, err := NewWatcher(dir, 0)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// Remove the file.
	if err := os.Remove(file); err != nil {
		t.Fatalf("failed to remove reading file: %v", err)
	}

	select {
	case change := <-w.Changes:
		if change.Kind != ChangeRemoved {
			t.Errorf("expected ChangeRemoved, got %d", change.Kind)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for removal event")
	}
}

func TestNewWatcher_DefaultDebounce(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if w.Debounce != 100*time.Millisecond {
		t.Errorf("default debounce = %v, want 100ms", w.Debounce)
	}
	w.watcher.Close()
}
