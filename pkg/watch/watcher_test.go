package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coolbeans/meetcheck/pkg/report"
)

func TestNew(t *testing.T) {
	t.Run("valid_root", func(t *testing.T) {
		w, err := New(t.TempDir(), nil)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if w == nil {
			t.Fatal("Expected watcher, got nil")
		}
	})

	t.Run("missing_root", func(t *testing.T) {
		if _, err := New(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
			t.Error("Expected error for missing root")
		}
	})

	t.Run("root_is_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if _, err := New(path, nil); err == nil {
			t.Error("Expected error for non-directory root")
		}
	})
}

func TestStartStop(t *testing.T) {
	w, err := New(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := w.Stop(); err == nil {
		t.Error("Expected error stopping a watcher that was never started")
	}

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := w.Start(); err == nil {
		t.Error("Expected error starting an already running watcher")
	}

	if err := w.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}

func TestWatcherValidatesOnWrite(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "wrpf", "bob3")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create meet directory: %v", err)
	}

	w, err := New(root, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.SetDebounce(50 * time.Millisecond)

	results := make(chan *report.Report, 4)
	w.OnResult(func(r *report.Report) {
		results <- r
	})

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	data := "Federation,Date,MeetCountry,MeetState,MeetTown,MeetName\n" +
		"WRPF,2016-08-19,USAA,CA,Mountain View,Boss of Bosses 3\n"
	path := filepath.Join(dir, "meet.csv")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write meet.csv: %v", err)
	}

	select {
	case r := <-results:
		if r.Path() != path {
			t.Errorf("Expected report for %s, got %s", path, r.Path())
		}
		if !r.HasErrors() {
			t.Error("Expected errors for unknown country")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for validation result")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	w, err := New(root, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.SetDebounce(50 * time.Millisecond)

	results := make(chan *report.Report, 4)
	w.OnResult(func(r *report.Report) {
		results <- r
	})

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	select {
	case r := <-results:
		t.Errorf("Unexpected report for %s", r.Path())
	case <-time.After(300 * time.Millisecond):
	}
}
