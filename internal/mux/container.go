package mux

import "github.com/MylesLandais/subsync/internal/subtitle"

// Container describes which subtitle formats a video container can
// embed.
type Container struct {
	Name              string
	SubtitleFormats   []subtitle.Format
	MultipleSubtitles bool
	ExternalSubtitles bool
}

var containers = map[string]Container{
	"mkv": {
		Name:              "Matroska",
		SubtitleFormats:   []subtitle.Format{subtitle.FormatASS, subtitle.FormatSRT, subtitle.FormatVTT},
		MultipleSubtitles: true,
		ExternalSubtitles: true,
	},
	"mp4": {
		Name:              "MP4",
		SubtitleFormats:   []subtitle.Format{subtitle.FormatSRT, subtitle.FormatVTT},
		MultipleSubtitles: true,
	},
	"avi": {
		Name:              "AVI",
		SubtitleFormats:   []subtitle.Format{subtitle.FormatSRT},
		ExternalSubtitles: true,
	},
}

// ContainerInfo looks up a container by extension (without dot).
func ContainerInfo(name string) (Container, bool) {
	c, ok := containers[name]
	return c, ok
}

// CanEmbed reports whether the container supports embedding the given
// subtitle format.
func CanEmbed(container string, format subtitle.Format) bool {
	c, ok := containers[container]
	if !ok {
		return false
	}
	for _, f := range c.SubtitleFormats {
		if f == format {
			return true
		}
	}
	return false
}

// RecommendFormat picks the richest subtitle format a container
// supports, preferring styling-capable formats when asked.
func RecommendFormat(container string, preferStyling bool) (subtitle.Format, bool) {
	c, ok := containers[container]
	if !ok || len(c.SubtitleFormats) == 0 {
		return "", false
	}

	if preferStyling {
		for _, f := range []subtitle.Format{subtitle.FormatASS, subtitle.FormatVTT, subtitle.FormatSRT} {
			if !CanEmbed(container, f) {
				continue
			}
			if spec, ok := subtitle.SpecFor(f); ok && spec.SupportsStyling {
				return f, true
			}
		}
	}

	return c.SubtitleFormats[0], true
}
