package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MylesLandais/subsync/internal/subtitle"
	"github.com/MylesLandais/subsync/internal/video"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [transcript_file]",
	Short: "Estimate subtitle timing for a plain transcript",
	Long: `Generate timed subtitle files from a flat transcript with no timing
information. Each sentence receives a share of the total duration
proportional to its length, clamped to the configured bounds.

The total duration comes from --duration, or is probed from a media
file given with --media. Estimation is lossy under tight budgets:
trailing sentences that do not fit in the duration are dropped.

Examples:
  subsync estimate transcript.txt --duration 90s
  subsync estimate transcript.txt --media video.mp4 --formats srt,ass`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().
		StringP("media", "m", "", "Media file to probe for total duration")
	estimateCmd.Flags().
		StringP("duration", "d", "", "Total duration (e.g. 90s, 3m20s)")
	estimateCmd.Flags().
		StringSliceP("formats", "f", []string{"srt"}, "Subtitle formats to generate (srt, vtt, ass)")
	estimateCmd.Flags().
		String("output-dir", ".", "Directory for generated files")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	transcriptPath := args[0]

	mediaPath, _ := cmd.Flags().GetString("media")
	durationStr, _ := cmd.Flags().GetString("duration")
	formatNames, _ := cmd.Flags().GetStringSlice("formats")
	outputDir, _ := cmd.Flags().GetString("output-dir")

	total, err := resolveDuration(mediaPath, durationStr)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}

	opts := cfg.SubtitleOptions()

	logger.Infow("Estimating subtitle timing",
		"transcript", transcriptPath,
		"duration", total.String(),
	)

	segments := subtitle.NewEstimator(opts).Estimate(string(data), total)
	if len(segments) == 0 {
		return fmt.Errorf("transcript produced no segments")
	}

	entries := subtitle.NewProcessor(opts).BuildEntries(segments)

	baseName := strings.TrimSuffix(
		filepath.Base(transcriptPath),
		filepath.Ext(transcriptPath),
	)

	for _, name := range formatNames {
		format, err := subtitle.ParseFormat(name)
		if err != nil {
			return err
		}

		outPath := filepath.Join(outputDir, baseName+subtitle.ExtensionFor(format))
		if err := subtitle.WriteFile(entries, format, outPath); err != nil {
			return err
		}
		fmt.Printf("Generated %s: %s\n", format, outPath)
	}

	fmt.Printf("  Entries: %d\n", len(entries))
	fmt.Printf("  Duration: %s\n", total.String())

	return nil
}

func resolveDuration(mediaPath, durationStr string) (time.Duration, error) {
	switch {
	case durationStr != "":
		total, err := time.ParseDuration(durationStr)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", durationStr, err)
		}
		return total, nil
	case mediaPath != "":
		total, err := video.ProbeDuration(mediaPath)
		if err != nil {
			return 0, fmt.Errorf("failed to probe media duration: %w", err)
		}
		return total, nil
	default:
		return 0, fmt.Errorf("total duration is required: use --duration or --media")
	}
}
