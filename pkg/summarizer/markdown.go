package summarizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/user/h5tomp4/pkg/framestack"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", l10n.T("Conversion Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", l10n.T("Generated"), s.GeneratedAt.Format(time.RFC3339))

	section(&b, l10n.T("Input"))
	row(&b, l10n.T("File"), orNA(s.Input.Path))
	row(&b, l10n.T("Dataset"), orNA(s.Input.Dataset))
	row(&b, l10n.T("Shape"), framestack.ShapeString(s.Input.Shape))
	b.WriteString("\n")

	section(&b, l10n.T("Settings"))
	row(&b, l10n.T("Codec"), orNA(s.Settings.Codec))
	row(&b, l10n.T("Frame Rate"), fmt.Sprintf("%d fps", s.Settings.FPS))
	row(&b, l10n.T("Quantizer"), formatQuality(s.Settings.Quality))
	b.WriteString("\n")

	section(&b, l10n.T("Video Details"))
	row(&b, l10n.T("File"), orNA(s.Video.Path))
	row(&b, l10n.T("Frames"), fmt.Sprintf("%d", s.Video.FrameCount))
	row(&b, l10n.T("Size"), fmt.Sprintf("%dx%d", s.Video.Width, s.Video.Height))
	if s.Video.SourceWidth != s.Video.Width || s.Video.SourceHeight != s.Video.Height {
		row(&b, l10n.T("Source Size"), fmt.Sprintf("%dx%d (%s)",
			s.Video.SourceWidth, s.Video.SourceHeight, l10n.T("resized")))
	}
	row(&b, l10n.T("Duration"), formatDuration(s.Video.DurationMs))
	row(&b, l10n.T("File Size"), formatBytes(s.Video.FileSize))
	if s.Video.Verified {
		row(&b, l10n.T("Verified"), l10n.T("yes"))
	} else {
		row(&b, l10n.T("Verified"), l10n.T("no"))
	}

	return b.String()
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintf(b, "| %s | %s |\n|---|---|\n", l10n.T("Item"), l10n.T("Value"))
}

func row(b *strings.Builder, item, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", item, value)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatQuality(q int) string {
	if q == 0 {
		return l10n.T("encoder default")
	}
	return fmt.Sprintf("%d", q)
}

// formatDuration renders milliseconds as seconds with two decimals.
func formatDuration(ms int) string {
	return fmt.Sprintf("%.2f s (%d ms)", float64(ms)/1000, ms)
}

// formatBytes renders a byte count with a binary unit.
func formatBytes(n int64) string {
	const unit = 1024
	switch {
	case n >= unit*unit:
		return fmt.Sprintf("%.2f MB", float64(n)/(unit*unit))
	case n >= unit:
		return fmt.Sprintf("%.2f KB", float64(n)/unit)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

var _ Formatter = (*MarkdownFormatter)(nil)
