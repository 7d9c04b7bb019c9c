package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGenerateSRT(t *testing.T) {
	entries := []Entry{
		{Index: 1, StartTime: 0, EndTime: 2500 * time.Millisecond, Text: "Hello world."},
		{Index: 2, StartTime: 2600 * time.Millisecond, EndTime: 5 * time.Second, Text: "Line one\nLine two"},
	}

	got, err := Generate(entries, FormatSRT)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:02,500\nHello world.\n\n" +
		"2\n00:00:02,600 --> 00:00:05,000\nLine one\nLine two\n\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestGenerateVTT(t *testing.T) {
	entries := []Entry{
		{Index: 1, StartTime: time.Second, EndTime: 2500 * time.Millisecond, Text: "Hi"},
	}

	got, err := Generate(entries, FormatVTT)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.HasPrefix(got, "WEBVTT\n\n") {
		t.Errorf("missing WEBVTT header:\n%q", got)
	}
	if !strings.Contains(got, "00:00:01.000 --> 00:00:02.500\nHi\n") {
		t.Errorf("cue missing or malformed:\n%q", got)
	}
}

func TestGenerateASS(t *testing.T) {
	entries := []Entry{
		{Index: 1, StartTime: 0, EndTime: 3 * time.Second, Text: "First line\nSecond line"},
	}

	got, err := Generate(entries, FormatASS)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, section := range []string{"[Script Info]", "[V4+ Styles]", "[Events]"} {
		if !strings.Contains(got, section) {
			t.Errorf("missing section %s:\n%q", section, got)
		}
	}
	if !strings.Contains(got, "Style: Default,Arial,20,") {
		t.Errorf("missing Default style:\n%q", got)
	}
	if !strings.Contains(got, "Dialogue: 0,0:00:00.00,0:00:03.00,Default,,0,0,0,,First line\\NSecond line") {
		t.Errorf("dialogue line malformed:\n%q", got)
	}
}

func TestGenerateASSCustomStylePreserved(t *testing.T) {
	entries := []Entry{
		{Index: 1, StartTime: 0, EndTime: time.Second, Text: "Sign", Style: "Signs"},
	}

	got, err := Generate(entries, FormatASS)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(got, ",Signs,,0,0,0,,Sign") {
		t.Errorf("custom style not carried through:\n%q", got)
	}
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	_, err := Generate(nil, Format("ttml"))
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "ttml") {
		t.Errorf("error should name the format: %v", err)
	}
}

func TestGenerateEmptyEntries(t *testing.T) {
	got, err := Generate(nil, FormatSRT)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "" {
		t.Errorf("empty entries should produce empty SRT, got %q", got)
	}

	got, err = Generate(nil, FormatVTT)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "WEBVTT\n\n" {
		t.Errorf("empty entries should produce bare VTT header, got %q", got)
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "test.srt")

	entries := []Entry{
		{Index: 1, StartTime: 0, EndTime: time.Second, Text: "Hello"},
	}
	if err := WriteFile(entries, FormatSRT, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Hello") {
		t.Errorf("written file missing content: %q", data)
	}
}

func TestFormatTimestamps(t *testing.T) {
	d := time.Hour + 2*time.Minute + 3*time.Second + 456*time.Millisecond

	if got, want := formatSRTTime(d), "01:02:03,456"; got != want {
		t.Errorf("formatSRTTime = %q, want %q", got, want)
	}
	if got, want := formatVTTTime(d), "01:02:03.456"; got != want {
		t.Errorf("formatVTTTime = %q, want %q", got, want)
	}
	if got, want := formatASSTime(d), "1:02:03.45"; got != want {
		t.Errorf("formatASSTime = %q, want %q", got, want)
	}
}
