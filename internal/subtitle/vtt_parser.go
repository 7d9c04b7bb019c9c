package subtitle

import (
	"bufio"
	"regexp"
	"strings"
)

var (
	vttTimestampRe = regexp.MustCompile(
		`(\d{2}):(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})\.(\d{3})`,
	)
	vttShortTimestampRe = regexp.MustCompile(
		`(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2})\.(\d{3})`,
	)
)

// parseVTT parses WebVTT content. Optional cue identifiers, NOTE and
// STYLE blocks are tolerated; malformed cues are skipped.
func parseVTT(content string) []Entry {
	content = strings.TrimPrefix(content, "\uFEFF")

	var entries []Entry
	var current *Entry
	var textLines []string

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Text = strings.Join(textLines, "\n")
			entries = append(entries, *current)
		}
		current = nil
		textLines = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	skipBlock := false

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if skipBlock {
			if trimmed == "" {
				skipBlock = false
			}
			continue
		}

		if strings.HasPrefix(trimmed, "WEBVTT") {
			continue
		}
		if strings.HasPrefix(trimmed, "NOTE") || strings.HasPrefix(trimmed, "STYLE") {
			flush()
			skipBlock = true
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		if matches := vttTimestampRe.FindStringSubmatch(line); len(matches) == 9 {
			flush()
			startTime, err1 := parseClockTimestamp(
				matches[1], matches[2], matches[3], matches[4],
			)
			endTime, err2 := parseClockTimestamp(
				matches[5], matches[6], matches[7], matches[8],
			)
			if err1 != nil || err2 != nil {
				continue
			}
			current = &Entry{
				Index:     len(entries) + 1,
				StartTime: startTime,
				EndTime:   endTime,
			}
			continue
		}

		if matches := vttShortTimestampRe.FindStringSubmatch(line); len(matches) == 7 {
			flush()
			startTime, err1 := parseClockTimestamp(
				"00", matches[1], matches[2], matches[3],
			)
			endTime, err2 := parseClockTimestamp(
				"00", matches[4], matches[5], matches[6],
			)
			if err1 != nil || err2 != nil {
				continue
			}
			current = &Entry{
				Index:     len(entries) + 1,
				StartTime: startTime,
				EndTime:   endTime,
			}
			continue
		}

		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	return entries
}
