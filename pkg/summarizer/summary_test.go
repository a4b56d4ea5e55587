package summarizer

import (
	"testing"
	"time"

	"github.com/user/h5tomp4/pkg/orchestrator"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithInput(t *testing.T) {
	shape := []int{5, 4, 4}
	summary := NewBuilder().
		WithInput("x/y.h5", "frames", shape).
		Build()

	if summary.Input.Path != "x/y.h5" {
		t.Errorf("expected path 'x/y.h5', got '%s'", summary.Input.Path)
	}
	if summary.Input.Dataset != "frames" {
		t.Errorf("expected dataset 'frames', got '%s'", summary.Input.Dataset)
	}

	shape[0] = 99
	if summary.Input.Shape[0] != 5 {
		t.Error("expected shape to be copied")
	}
}

func TestBuilder_WithVerified(t *testing.T) {
	summary := NewBuilder().
		WithVideo(VideoInfo{FrameCount: 3}).
		WithVerified(true).
		Build()

	if !summary.Video.Verified {
		t.Error("expected Verified to be true")
	}
	if summary.Video.FrameCount != 3 {
		t.Errorf("expected video info to survive, got %+v", summary.Video)
	}
}

func TestFromRunResult(t *testing.T) {
	summary := FromRunResult(orchestrator.RunResult{
		InputPath:    "in.h5",
		Dataset:      "frames",
		InputShape:   []int{5, 3, 5},
		OutputPath:   "in.mp4",
		Codec:        "mp4v",
		FPS:          20,
		Quality:      2,
		FrameCount:   5,
		SourceWidth:  5,
		SourceHeight: 3,
		Width:        6,
		Height:       4,
		DurationMs:   250,
		FileSize:     2048,
	}).Build()

	if summary.Input.Path != "in.h5" || len(summary.Input.Shape) != 3 {
		t.Errorf("unexpected input %+v", summary.Input)
	}
	if summary.Settings.FPS != 20 || summary.Settings.Codec != "mp4v" {
		t.Errorf("unexpected settings %+v", summary.Settings)
	}
	if summary.Video.Width != 6 || summary.Video.SourceWidth != 5 || summary.Video.FileSize != 2048 {
		t.Errorf("unexpected video %+v", summary.Video)
	}
}
