package subtitle

import (
	"strings"
	"unicode/utf8"
)

// SplitText splits text into subtitle-sized chunks of at most maxChars
// runes, preferring sentence boundaries. No characters are dropped: a
// single word longer than maxChars is emitted as its own chunk
// unmodified.
func SplitText(text string, maxChars int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return []string{text}
	}

	sentences := strings.Split(text, ". ")
	var chunks []string
	var current string

	for i, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		// The split consumed the period; restore it on all but the
		// final piece.
		if i < len(sentences)-1 && !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}

		candidate := sentence
		if current != "" {
			candidate = current + " " + sentence
		}

		if utf8.RuneCountInString(candidate) <= maxChars {
			current = candidate
		} else {
			if current != "" {
				chunks = append(chunks, current)
			}
			current = sentence
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}

	// A run-on sentence can still exceed the budget; re-split by words.
	var final []string
	for _, chunk := range chunks {
		if utf8.RuneCountInString(chunk) <= maxChars {
			final = append(final, chunk)
			continue
		}
		final = append(final, splitByWords(chunk, maxChars)...)
	}

	return final
}

func splitByWords(text string, maxChars int) []string {
	var chunks []string
	var current string

	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}

		if utf8.RuneCountInString(candidate) <= maxChars {
			current = candidate
			continue
		}

		if current != "" {
			chunks = append(chunks, current)
		}
		current = word
	}
	if current != "" {
		chunks = append(chunks, current)
	}

	return chunks
}

// WrapLines word-wraps a chunk into at most maxLines lines of maxChars
// runes each. Text is never truncated: once the line budget is
// exhausted, remaining words stay on the last line.
func WrapLines(text string, maxChars, maxLines int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return []string{text}
	}

	words := strings.Fields(text)
	var lines []string
	var current []string
	currentLen := 0

	for i, word := range words {
		wordLen := utf8.RuneCountInString(word)

		if len(current) == 0 {
			current = []string{word}
			currentLen = wordLen
			continue
		}

		if currentLen+1+wordLen <= maxChars {
			current = append(current, word)
			currentLen += 1 + wordLen
			continue
		}

		// Current line is full. If no lines remain, the rest of the
		// text stays on this one.
		if maxLines > 0 && len(lines) == maxLines-1 {
			current = append(current, words[i:]...)
			break
		}

		lines = append(lines, strings.Join(current, " "))
		current = []string{word}
		currentLen = wordLen
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	return lines
}
