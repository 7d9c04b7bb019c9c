package subtitle

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Parse decodes subtitle content in the given format. Parsers are
// tolerant of malformed individual blocks: a bad entry is skipped and
// the rest of the file still parses.
func Parse(content string, format Format) ([]Entry, error) {
	switch format {
	case FormatSRT:
		return parseSRT(content), nil
	case FormatVTT:
		return parseVTT(content), nil
	case FormatASS:
		return parseASS(content), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// DetectFormat sniffs subtitle content. Returns false when the content
// matches none of the supported formats.
func DetectFormat(content string) (Format, bool) {
	content = strings.TrimSpace(strings.TrimPrefix(content, "\uFEFF"))

	if strings.HasPrefix(content, "WEBVTT") {
		return FormatVTT, true
	}

	if strings.Contains(content, "[Script Info]") &&
		strings.Contains(content, "[V4+ Styles]") {
		return FormatASS, true
	}

	// SRT heuristic: integer first line, timing arrow on the second.
	lines := strings.Split(content, "\n")
	if len(lines) >= 2 {
		if _, err := strconv.Atoi(strings.TrimSpace(lines[0])); err == nil {
			if strings.Contains(lines[1], "-->") {
				return FormatSRT, true
			}
		}
	}

	return "", false
}

// Convert parses content in one format and re-serializes it in another.
func Convert(content string, from, to Format) (string, error) {
	entries, err := Parse(content, from)
	if err != nil {
		return "", err
	}
	return Generate(entries, to)
}

// Open reads a subtitle file, picking the parser by file extension.
func Open(path string) ([]Entry, Format, error) {
	format, ok := FormatFromExtension(path)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read subtitle file: %w", err)
	}

	entries, err := Parse(string(data), format)
	if err != nil {
		return nil, "", err
	}
	return entries, format, nil
}
