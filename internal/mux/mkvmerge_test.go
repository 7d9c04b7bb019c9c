package mux

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/MylesLandais/subsync/internal/logging"
)

func writeTestFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMkvmergeMuxBuildsExpectedArgs(t *testing.T) {
	dir := t.TempDir()
	video := writeTestFile(t, dir, "movie.mp4")
	subs := writeTestFile(t, dir, "movie.srt")
	output := filepath.Join(dir, "movie_with_subtitles.mkv")

	var gotName string
	var gotArgs []string

	m := &MkvmergeMuxer{
		binary: "mkvmerge",
		logger: logging.NewNop(),
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			gotName = name
			gotArgs = args
			return nil, nil
		},
	}

	err := m.Mux(context.Background(), Request{
		VideoPath:    video,
		SubtitlePath: subs,
		OutputPath:   output,
		Language:     "jpn",
		TrackName:    "Japanese",
	})
	if err != nil {
		t.Fatalf("Mux: %v", err)
	}

	if gotName != "mkvmerge" {
		t.Errorf("binary = %q", gotName)
	}
	want := []string{
		"--output", output,
		"--language", "0:jpn",
		"--track-name", "0:Japanese",
		"--default-track", "0:yes",
		subs,
		video,
	}
	if !reflect.DeepEqual(gotArgs, want) {
		t.Errorf("args:\n got %v\nwant %v", gotArgs, want)
	}
}

func TestMkvmergeMuxAppliesDefaultTrackMetadata(t *testing.T) {
	dir := t.TempDir()
	video := writeTestFile(t, dir, "movie.mp4")
	subs := writeTestFile(t, dir, "movie.srt")

	var gotArgs []string
	m := &MkvmergeMuxer{
		binary: "mkvmerge",
		logger: logging.NewNop(),
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			gotArgs = args
			return nil, nil
		},
	}

	err := m.Mux(context.Background(), Request{
		VideoPath:    video,
		SubtitlePath: subs,
		OutputPath:   filepath.Join(dir, "out.mkv"),
	})
	if err != nil {
		t.Fatalf("Mux: %v", err)
	}

	joined := strings.Join(gotArgs, " ")
	if !strings.Contains(joined, "--language 0:eng") {
		t.Errorf("missing default language: %v", gotArgs)
	}
	if !strings.Contains(joined, "--track-name 0:English") {
		t.Errorf("missing default track name: %v", gotArgs)
	}
}

func TestMkvmergeMuxMissingInputs(t *testing.T) {
	dir := t.TempDir()
	video := writeTestFile(t, dir, "movie.mp4")

	m := &MkvmergeMuxer{
		binary: "mkvmerge",
		logger: logging.NewNop(),
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			t.Fatal("runner must not be called for missing inputs")
			return nil, nil
		},
	}

	err := m.Mux(context.Background(), Request{
		VideoPath:    filepath.Join(dir, "missing.mp4"),
		SubtitlePath: filepath.Join(dir, "missing.srt"),
		OutputPath:   filepath.Join(dir, "out.mkv"),
	})
	if err == nil || !strings.Contains(err.Error(), "video file not found") {
		t.Errorf("missing video error = %v", err)
	}

	err = m.Mux(context.Background(), Request{
		VideoPath:    video,
		SubtitlePath: filepath.Join(dir, "missing.srt"),
		OutputPath:   filepath.Join(dir, "out.mkv"),
	})
	if err == nil || !strings.Contains(err.Error(), "subtitle file not found") {
		t.Errorf("missing subtitle error = %v", err)
	}
}

func TestMkvmergeMuxCommandFailure(t *testing.T) {
	dir := t.TempDir()
	video := writeTestFile(t, dir, "movie.mp4")
	subs := writeTestFile(t, dir, "movie.srt")

	m := &MkvmergeMuxer{
		binary: "mkvmerge",
		logger: logging.NewNop(),
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return []byte("track 0 is unsupported"), errors.New("exit status 2")
		},
	}

	err := m.Mux(context.Background(), Request{
		VideoPath:    video,
		SubtitlePath: subs,
		OutputPath:   filepath.Join(dir, "out.mkv"),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "track 0 is unsupported") {
		t.Errorf("tool output not surfaced: %v", err)
	}
}

func TestMkvmergeMuxTimeout(t *testing.T) {
	dir := t.TempDir()
	video := writeTestFile(t, dir, "movie.mp4")
	subs := writeTestFile(t, dir, "movie.srt")

	m := &MkvmergeMuxer{
		binary: "mkvmerge",
		logger: logging.NewNop(),
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return nil, ctx.Err()
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Mux(ctx, Request{
		VideoPath:    video,
		SubtitlePath: subs,
		OutputPath:   filepath.Join(dir, "out.mkv"),
	})
	if err == nil || !strings.Contains(err.Error(), "timed out") {
		t.Errorf("timeout error = %v", err)
	}
}
