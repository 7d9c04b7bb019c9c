// Package mux embeds subtitle tracks into video containers by driving
// external tools. The core pipeline depends only on the Muxer port;
// tests substitute a fake.
package mux

import "context"

// Request describes one muxing job.
type Request struct {
	VideoPath    string
	SubtitlePath string
	OutputPath   string
	Language     string // ISO 639-2 code, e.g. "eng"
	TrackName    string // display name for the subtitle track
}

// Muxer combines a video file and a subtitle file into one container.
type Muxer interface {
	Mux(ctx context.Context, req Request) error
}

func (r *Request) applyDefaults() {
	if r.Language == "" {
		r.Language = "eng"
	}
	if r.TrackName == "" {
		r.TrackName = "English"
	}
}
