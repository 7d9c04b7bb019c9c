package subtitle

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	blockSeparatorRe = regexp.MustCompile(`\n\s*\n`)
	srtTimestampRe   = regexp.MustCompile(
		`(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`,
	)
)

// parseSRT parses SubRip content. Malformed blocks are skipped so a
// single bad entry never loses the rest of the file.
func parseSRT(content string) []Entry {
	content = strings.TrimPrefix(content, "\uFEFF")

	var entries []Entry
	for _, block := range blockSeparatorRe.Split(strings.TrimSpace(content), -1) {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 {
			continue
		}

		if _, err := strconv.Atoi(strings.TrimSpace(lines[0])); err != nil {
			continue
		}

		matches := srtTimestampRe.FindStringSubmatch(lines[1])
		if len(matches) != 9 {
			continue
		}

		startTime, err := parseClockTimestamp(
			matches[1], matches[2], matches[3], matches[4],
		)
		if err != nil {
			continue
		}
		endTime, err := parseClockTimestamp(
			matches[5], matches[6], matches[7], matches[8],
		)
		if err != nil {
			continue
		}

		entries = append(entries, Entry{
			Index:     len(entries) + 1,
			StartTime: startTime,
			EndTime:   endTime,
			Text:      strings.Join(lines[2:], "\n"),
		})
	}

	return entries
}

// parseClockTimestamp converts HH/MM/SS/mmm components to a duration.
func parseClockTimestamp(
	hours, minutes, seconds, millis string,
) (time.Duration, error) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, err
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
