package mux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	ffmpegbin "github.com/MylesLandais/subsync/internal/ffmpeg"
	"github.com/MylesLandais/subsync/internal/logging"
)

// commandRunner abstracts process execution so tests never spawn a real
// mkvmerge.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func defaultCommandRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// MkvmergeMuxer embeds subtitles into MKV containers using mkvmerge.
type MkvmergeMuxer struct {
	binary string
	run    commandRunner
	logger *logging.Logger
}

// NewMkvmergeMuxer resolves the mkvmerge binary and constructs a muxer.
func NewMkvmergeMuxer(logger *logging.Logger) (*MkvmergeMuxer, error) {
	binary, err := ffmpegbin.MkvmergePath()
	if err != nil {
		return nil, err
	}
	return &MkvmergeMuxer{
		binary: binary,
		run:    defaultCommandRunner,
		logger: logger,
	}, nil
}

// WithCommandRunner injects a custom command runner for tests.
func (m *MkvmergeMuxer) WithCommandRunner(r commandRunner) {
	if r != nil {
		m.run = r
	}
}

// Mux combines the video and subtitle into req.OutputPath. The subtitle
// track is flagged as the default and carries the requested language
// and name.
func (m *MkvmergeMuxer) Mux(ctx context.Context, req Request) error {
	req.applyDefaults()

	if _, err := os.Stat(req.VideoPath); err != nil {
		return fmt.Errorf("video file not found: %w", err)
	}
	if _, err := os.Stat(req.SubtitlePath); err != nil {
		return fmt.Errorf("subtitle file not found: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(req.OutputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	args := []string{
		"--output", req.OutputPath,
		"--language", "0:" + req.Language,
		"--track-name", "0:" + req.TrackName,
		"--default-track", "0:yes",
		req.SubtitlePath,
		req.VideoPath,
	}

	m.logger.Debugw("Running mkvmerge",
		"binary", m.binary,
		"output", req.OutputPath,
	)

	output, err := m.run(ctx, m.binary, args...)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("mkvmerge timed out: %w", ctx.Err())
		}
		return fmt.Errorf("mkvmerge failed: %w: %s", err, string(output))
	}

	return nil
}
