package subtitle

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Segment is a span of transcript text with a time range, as produced
// by an upstream ASR or transcription source.
type Segment struct {
	StartTime  time.Duration
	EndTime    time.Duration
	Text       string
	Confidence float64
	Speaker    string
}

// Entry is a display-ready subtitle card: chunked to fit line-length
// limits, with finalized timing.
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
	Style     string
}

// Format identifies a supported subtitle file format.
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
)

// ErrUnsupportedFormat is returned when a format outside the registry
// is requested.
var ErrUnsupportedFormat = errors.New("unsupported subtitle format")

// Spec describes a subtitle format's capabilities.
type Spec struct {
	Name                string
	Extension           string
	MIMEType            string
	SupportsStyling     bool
	SupportsPositioning bool
	SupportsEffects     bool
}

var specs = map[Format]Spec{
	FormatSRT: {
		Name:      "SubRip",
		Extension: ".srt",
		MIMEType:  "text/srt",
	},
	FormatVTT: {
		Name:                "WebVTT",
		Extension:           ".vtt",
		MIMEType:            "text/vtt",
		SupportsStyling:     true,
		SupportsPositioning: true,
	},
	FormatASS: {
		Name:                "Advanced SubStation Alpha",
		Extension:           ".ass",
		MIMEType:            "text/x-ass",
		SupportsStyling:     true,
		SupportsPositioning: true,
		SupportsEffects:     true,
	},
}

// SpecFor returns the format descriptor for f.
func SpecFor(f Format) (Spec, bool) {
	s, ok := specs[f]
	return s, ok
}

// Formats returns the supported formats in a stable order.
func Formats() []Format {
	return []Format{FormatSRT, FormatVTT, FormatASS}
}

// ParseFormat converts a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "srt":
		return FormatSRT, nil
	case "vtt":
		return FormatVTT, nil
	case "ass", "ssa":
		return FormatASS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ExtensionFor returns the file extension for a format, including the dot.
func ExtensionFor(f Format) string {
	if s, ok := specs[f]; ok {
		return s.Extension
	}
	return ".srt"
}

// FormatFromExtension guesses the format from a file path's extension.
func FormatFromExtension(path string) (Format, bool) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".srt"):
		return FormatSRT, true
	case strings.HasSuffix(lower, ".vtt"):
		return FormatVTT, true
	case strings.HasSuffix(lower, ".ass"), strings.HasSuffix(lower, ".ssa"):
		return FormatASS, true
	default:
		return "", false
	}
}

// Options holds the tunable limits shared by the chunking, estimation
// and timing stages.
type Options struct {
	MaxCharsPerLine  int
	MaxLinesPerEntry int
	MinDuration      time.Duration
	MaxDuration      time.Duration
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxCharsPerLine:  50,
		MaxLinesPerEntry: 2,
		MinDuration:      time.Second,
		MaxDuration:      6 * time.Second,
	}
}
