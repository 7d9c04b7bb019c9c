// Package syncer drives the subtitle workflow: load transcript
// segments, build optimized entries, write one file per requested
// format, and optionally hand the SRT output to an external muxer.
package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MylesLandais/subsync/internal/config"
	"github.com/MylesLandais/subsync/internal/logging"
	"github.com/MylesLandais/subsync/internal/mux"
	"github.com/MylesLandais/subsync/internal/subtitle"
)

// ErrInputNotFound reports a missing video or segments file.
var ErrInputNotFound = errors.New("input not found")

// MalformedSegmentError describes a transcript segment that was skipped.
type MalformedSegmentError struct {
	Index  int
	Reason string
}

func (e *MalformedSegmentError) Error() string {
	return fmt.Sprintf("segment %d: %s", e.Index, e.Reason)
}

// Request describes one sync run.
type Request struct {
	VideoPath    string
	SegmentsPath string
	OutputDir    string
	Formats      []subtitle.Format
	CreateMKV    bool
}

// Result reports what a run produced. MuxError is non-fatal: subtitle
// files already written stay on disk.
type Result struct {
	EntryCount   int
	FilesWritten []string
	MKVPath      string
	MuxError     error
}

// Syncer is the top-level orchestrator. Each Run call is independent;
// concurrent runs are safe as long as they use distinct output
// directories.
type Syncer struct {
	opts       subtitle.Options
	muxTimeout time.Duration
	language   string
	trackName  string
	muxer      mux.Muxer
	logger     *logging.Logger
}

// New constructs a Syncer. The muxer may be nil when MKV creation is
// never requested.
func New(cfg *config.Config, muxer mux.Muxer, logger *logging.Logger) *Syncer {
	return &Syncer{
		opts:       cfg.SubtitleOptions(),
		muxTimeout: cfg.MuxTimeout(),
		language:   cfg.Language,
		trackName:  cfg.TrackName,
		muxer:      muxer,
		logger:     logger,
	}
}

// Run executes the full workflow. It fails fast on missing inputs and
// collects per-format failures without aborting the remaining formats.
func (s *Syncer) Run(ctx context.Context, req Request) (*Result, error) {
	if _, err := os.Stat(req.VideoPath); err != nil {
		return nil, fmt.Errorf("%w: video file %s", ErrInputNotFound, req.VideoPath)
	}
	if _, err := os.Stat(req.SegmentsPath); err != nil {
		return nil, fmt.Errorf("%w: segments file %s", ErrInputNotFound, req.SegmentsPath)
	}

	segments, err := s.loadSegments(req.SegmentsPath)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Loaded transcript segments",
		"path", req.SegmentsPath,
		"segments", len(segments),
	)

	entries := subtitle.NewProcessor(s.opts).BuildEntries(segments)
	if len(entries) == 0 {
		return nil, errors.New("no subtitle entries created")
	}

	result := &Result{EntryCount: len(entries)}
	baseName := strings.TrimSuffix(
		filepath.Base(req.VideoPath),
		filepath.Ext(req.VideoPath),
	)

	var srtPath string
	for _, format := range req.Formats {
		outPath := filepath.Join(req.OutputDir, baseName+subtitle.ExtensionFor(format))

		if err := subtitle.WriteFile(entries, format, outPath); err != nil {
			// A format unsupported or unwritable fails only itself.
			s.logger.Errorw("Failed to generate subtitle file",
				"format", format,
				"error", err,
			)
			continue
		}

		s.logger.Infow("Generated subtitle file",
			"format", format,
			"path", outPath,
		)
		result.FilesWritten = append(result.FilesWritten, outPath)
		if format == subtitle.FormatSRT {
			srtPath = outPath
		}
	}

	if len(result.FilesWritten) == 0 {
		return nil, errors.New("no subtitle files were generated")
	}

	if req.CreateMKV {
		result.MKVPath, result.MuxError = s.createMKV(ctx, req, baseName, srtPath)
	}

	return result, nil
}

// createMKV hands the SRT output to the muxer. Failures are reported,
// never fatal, and already-written subtitle files are not rolled back.
func (s *Syncer) createMKV(
	ctx context.Context,
	req Request,
	baseName, srtPath string,
) (string, error) {
	if srtPath == "" {
		return "", errors.New("mkv requested but no srt file was generated")
	}
	if s.muxer == nil {
		return "", errors.New("mkv requested but no muxer configured")
	}

	outputPath := filepath.Join(req.OutputDir, baseName+"_with_subtitles.mkv")

	muxCtx, cancel := context.WithTimeout(ctx, s.muxTimeout)
	defer cancel()

	err := s.muxer.Mux(muxCtx, mux.Request{
		VideoPath:    req.VideoPath,
		SubtitlePath: srtPath,
		OutputPath:   outputPath,
		Language:     s.language,
		TrackName:    s.trackName,
	})
	if err != nil {
		s.logger.Errorw("MKV muxing failed",
			"video", req.VideoPath,
			"error", err,
		)
		return "", err
	}

	s.logger.Infow("MKV created", "path", outputPath)
	return outputPath, nil
}

type segmentJSON struct {
	Text       string   `json:"text"`
	StartTime  float64  `json:"start_time"`
	EndTime    float64  `json:"end_time"`
	Confidence *float64 `json:"confidence"`
	Speaker    string   `json:"speaker"`
}

type segmentsFile struct {
	Segments []segmentJSON `json:"segments"`
}

// loadSegments reads the transcript segments JSON. Entries missing text
// or with inverted timing are skipped with a warning; the rest proceed.
func (s *Syncer) loadSegments(path string) ([]subtitle.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read segments file: %w", err)
	}

	var file segmentsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse segments file: %w", err)
	}

	segments := make([]subtitle.Segment, 0, len(file.Segments))
	for i, seg := range file.Segments {
		if reason := validateSegment(seg); reason != "" {
			segErr := &MalformedSegmentError{Index: i, Reason: reason}
			s.logger.Warnw("Skipping malformed segment", "error", segErr)
			continue
		}

		converted := subtitle.Segment{
			StartTime: secondsToDuration(seg.StartTime),
			EndTime:   secondsToDuration(seg.EndTime),
			Text:      strings.TrimSpace(seg.Text),
			Speaker:   seg.Speaker,
		}
		if seg.Confidence != nil {
			converted.Confidence = *seg.Confidence
		}
		segments = append(segments, converted)
	}

	return segments, nil
}

func validateSegment(seg segmentJSON) string {
	if strings.TrimSpace(seg.Text) == "" {
		return "missing text"
	}
	if seg.EndTime < seg.StartTime {
		return "end_time before start_time"
	}
	return ""
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
