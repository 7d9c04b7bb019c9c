package mux

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/MylesLandais/subsync/internal/logging"
)

// FFmpegMuxer remuxes video with a subtitle track using ffmpeg,
// stream-copying the existing video and audio.
type FFmpegMuxer struct {
	logger *logging.Logger
}

func NewFFmpegMuxer(logger *logging.Logger) *FFmpegMuxer {
	return &FFmpegMuxer{logger: logger}
}

// Mux adds the subtitle file as an SRT track in req.OutputPath. The
// ffmpeg process runs to completion or until ctx is done.
func (m *FFmpegMuxer) Mux(ctx context.Context, req Request) error {
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

	videoIn := ffmpeg.Input(req.VideoPath)
	subtitleIn := ffmpeg.Input(req.SubtitlePath)

	stream := ffmpeg.Output(
		[]*ffmpeg.Stream{videoIn, subtitleIn},
		req.OutputPath,
		ffmpeg.KwArgs{
			"c:v":            "copy",
			"c:a":            "copy",
			"c:s":            "srt",
			"metadata:s:s:0": "language=" + req.Language,
		},
	).OverWriteOutput()

	m.logger.Debugw("Running ffmpeg remux",
		"video", req.VideoPath,
		"subtitle", req.SubtitlePath,
		"output", req.OutputPath,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- stream.Run()
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("ffmpeg remux timed out: %w", ctx.Err())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ffmpeg remux failed: %w", err)
		}
		return nil
	}
}
