package subtitle

import (
	"strconv"
	"strings"
	"time"
)

// parseASS parses Advanced SubStation Alpha content. Field positions
// come from the Format line of the [Events] section; Dialogue lines
// that cannot be parsed are skipped.
func parseASS(content string) []Entry {
	content = strings.TrimPrefix(content, "\uFEFF")

	var entries []Entry
	inEvents := false
	var formatColumns []string
	startIdx, endIdx, styleIdx, textIdx := -1, -1, -1, -1

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section := strings.ToLower(strings.Trim(trimmed, "[]"))
			inEvents = section == "events"
			continue
		}
		if !inEvents {
			continue
		}

		if strings.HasPrefix(trimmed, "Format:") {
			formatColumns = nil
			for _, col := range strings.Split(strings.TrimPrefix(trimmed, "Format:"), ",") {
				formatColumns = append(formatColumns, strings.TrimSpace(col))
			}
			for i, col := range formatColumns {
				switch strings.ToLower(col) {
				case "start":
					startIdx = i
				case "end":
					endIdx = i
				case "style":
					styleIdx = i
				case "text":
					textIdx = i
				}
			}
			continue
		}

		if !strings.HasPrefix(trimmed, "Dialogue:") {
			continue
		}
		if textIdx < 0 || startIdx < 0 || endIdx < 0 {
			continue
		}

		fields := splitASSFields(
			strings.TrimSpace(strings.TrimPrefix(trimmed, "Dialogue:")),
			len(formatColumns),
		)
		if len(fields) < len(formatColumns) {
			continue
		}

		startTime, ok := parseASSTimestamp(fields[startIdx])
		if !ok {
			continue
		}
		endTime, ok := parseASSTimestamp(fields[endIdx])
		if !ok {
			continue
		}

		style := ""
		if styleIdx >= 0 {
			style = strings.TrimSpace(fields[styleIdx])
		}

		text := fields[textIdx]
		text = strings.ReplaceAll(text, "\\N", "\n")
		text = strings.ReplaceAll(text, "\\n", "\n")

		entries = append(entries, Entry{
			Index:     len(entries) + 1,
			StartTime: startTime,
			EndTime:   endTime,
			Text:      text,
			Style:     style,
		})
	}

	return entries
}

// splitASSFields splits a Dialogue line into exactly numFields fields;
// the final field (Text) may itself contain commas.
func splitASSFields(content string, numFields int) []string {
	if numFields <= 0 {
		return nil
	}

	fields := make([]string, 0, numFields)
	remaining := content

	for i := 0; i < numFields-1; i++ {
		idx := strings.Index(remaining, ",")
		if idx == -1 {
			fields = append(fields, remaining)
			remaining = ""
			break
		}
		fields = append(fields, remaining[:idx])
		remaining = remaining[idx+1:]
	}
	fields = append(fields, remaining)

	return fields
}

// parseASSTimestamp parses the H:MM:SS.CC centisecond clock format.
func parseASSTimestamp(ts string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	if len(parts) != 3 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	secParts := strings.Split(parts[2], ".")
	if len(secParts) != 2 {
		return 0, false
	}
	seconds, err := strconv.Atoi(secParts[0])
	if err != nil {
		return 0, false
	}
	centis, err := strconv.Atoi(secParts[1])
	if err != nil {
		return 0, false
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(centis)*10*time.Millisecond, true
}
