package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MylesLandais/subsync/internal/mux"
	"github.com/MylesLandais/subsync/internal/subtitle"
	"github.com/MylesLandais/subsync/internal/syncer"
)

var syncCmd = &cobra.Command{
	Use:   "sync [video_file]",
	Short: "Generate synchronized subtitle files from transcript segments",
	Long: `Generate subtitle files for a video from a transcript segments JSON file.

The segments file carries {"segments": [{"text", "start_time", "end_time"}, ...]}
as produced by a transcription pipeline. Text is chunked to the configured
line length, timing is optimized for readability, and one file per
requested format is written next to the video's basename.

With --mkv the generated SRT track is embedded into an MKV container.

Examples:
  subsync sync video.mp4 --segments video_segments.json
  subsync sync video.wmv --segments segs.json --formats srt,vtt --mkv
  subsync sync video.mkv --segments segs.json --mkv --muxer ffmpeg`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().
		StringP("segments", "s", "", "Path to the transcript segments JSON file (required)")
	syncCmd.Flags().
		String("output-dir", ".", "Directory for generated files")
	syncCmd.Flags().
		StringSliceP("formats", "f", []string{"srt", "vtt"}, "Subtitle formats to generate (srt, vtt, ass)")
	syncCmd.Flags().
		Bool("mkv", false, "Embed the generated SRT into an MKV container")
	syncCmd.Flags().
		String("muxer", "mkvmerge", "Muxing backend (mkvmerge or ffmpeg)")

	_ = syncCmd.MarkFlagRequired("segments")
}

func runSync(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	segmentsPath, _ := cmd.Flags().GetString("segments")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	formatNames, _ := cmd.Flags().GetStringSlice("formats")
	createMKV, _ := cmd.Flags().GetBool("mkv")
	muxerName, _ := cmd.Flags().GetString("muxer")

	formats := make([]subtitle.Format, 0, len(formatNames))
	for _, name := range formatNames {
		format, err := subtitle.ParseFormat(name)
		if err != nil {
			return err
		}
		formats = append(formats, format)
	}

	var muxer mux.Muxer
	if createMKV {
		var err error
		muxer, err = newMuxer(muxerName)
		if err != nil {
			return err
		}
	}

	logger.Infow("Starting subtitle sync",
		"video", videoPath,
		"segments", segmentsPath,
		"formats", strings.Join(formatNames, ","),
		"mkv", createMKV,
	)

	result, err := syncer.New(cfg, muxer, logger).Run(cmd.Context(), syncer.Request{
		VideoPath:    videoPath,
		SegmentsPath: segmentsPath,
		OutputDir:    outputDir,
		Formats:      formats,
		CreateMKV:    createMKV,
	})
	if err != nil {
		return err
	}

	fmt.Println(renderSyncResult(result))
	if result.MuxError != nil {
		fmt.Printf("MKV creation failed: %v\n", result.MuxError)
	}

	return nil
}

func newMuxer(name string) (mux.Muxer, error) {
	switch strings.ToLower(name) {
	case "mkvmerge":
		return mux.NewMkvmergeMuxer(logger)
	case "ffmpeg":
		return mux.NewFFmpegMuxer(logger), nil
	default:
		return nil, fmt.Errorf("unknown muxer %q: use mkvmerge or ffmpeg", name)
	}
}
