package subtitle

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitTextShortTextUnchanged(t *testing.T) {
	got := SplitText("Hello world.", 50)
	want := []string{"Hello world."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitTextSentenceBoundaries(t *testing.T) {
	got := SplitText("Hello world. This is a test of subtitle timing.", 20)
	want := []string{
		"Hello world.",
		"This is a test of",
		"subtitle timing.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitTextAccumulatesSentences(t *testing.T) {
	got := SplitText("One. Two. Three.", 12)
	want := []string{"One. Two.", "Three."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitTextLongWordEmittedWhole(t *testing.T) {
	word := "Supercalifragilisticexpialidocious"
	got := SplitText(word, 10)
	if len(got) != 1 || got[0] != word {
		t.Errorf("long word must be emitted unmodified, got %v", got)
	}
}

func TestSplitTextEmptyInput(t *testing.T) {
	if got := SplitText("   ", 10); got != nil {
		t.Errorf("expected nil for blank input, got %v", got)
	}
}

// Chunking never drops or duplicates a word, in order.
func TestSplitTextCompleteness(t *testing.T) {
	inputs := []string{
		"Hello world. This is a test of subtitle timing.",
		"A run on sentence that just keeps going and going without any punctuation at all",
		"Short. Mid sentence here. And a much longer sentence that will not fit in one chunk by itself.",
	}

	normalize := func(s string) []string {
		return strings.Fields(strings.ReplaceAll(s, ".", ""))
	}

	for _, input := range inputs {
		chunks := SplitText(input, 25)
		if len(chunks) == 0 {
			t.Fatalf("non-empty input produced no chunks: %q", input)
		}

		got := normalize(strings.Join(chunks, " "))
		want := normalize(input)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("words lost or duplicated:\n got %v\nwant %v", got, want)
		}
	}
}

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		maxLines int
		want     []string
	}{
		{
			name:     "fits one line",
			text:     "Hello world",
			maxChars: 20,
			maxLines: 2,
			want:     []string{"Hello world"},
		},
		{
			name:     "wraps to two lines",
			text:     "This is a test of subtitle timing",
			maxChars: 20,
			maxLines: 2,
			want:     []string{"This is a test of", "subtitle timing"},
		},
		{
			name:     "line budget exhausted keeps text",
			text:     "one two three four five six seven eight",
			maxChars: 10,
			maxLines: 2,
			want:     []string{"one two", "three four five six seven eight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapLines(tt.text, tt.maxChars, tt.maxLines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if tt.maxLines > 0 && len(got) > tt.maxLines {
				t.Errorf("got %d lines, max %d", len(got), tt.maxLines)
			}
		})
	}
}

func TestWrapLinesWithinBudgetExceptLast(t *testing.T) {
	lines := WrapLines("some words that need wrapping into lines", 15, 3)
	for i, line := range lines[:len(lines)-1] {
		if utf8.RuneCountInString(line) > 15 {
			t.Errorf("line %d exceeds budget: %q", i, line)
		}
	}
}
