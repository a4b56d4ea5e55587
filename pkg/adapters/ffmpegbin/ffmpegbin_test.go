package ffmpegbin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFind_CustomPath(t *testing.T) {
	fake := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	SetPath(fake)
	t.Cleanup(func() { SetPath("") })

	path, err := Find()
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if path != fake {
		t.Errorf("expected %s, got %s", fake, path)
	}
}

func TestFind_CustomPathMissing(t *testing.T) {
	SetPath(filepath.Join(t.TempDir(), "nope"))
	t.Cleanup(func() { SetPath("") })

	if _, err := Find(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if IsAvailable() {
		t.Error("expected IsAvailable to be false")
	}
}

func TestFind_EnvPathMissing(t *testing.T) {
	t.Setenv("FFMPEG_PATH", filepath.Join(t.TempDir(), "nope"))

	if _, err := Find(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
