package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MylesLandais/subsync/internal/subtitle"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert a subtitle file to another format",
	Long: `Convert between SRT, VTT, and ASS subtitle formats.

The input format is sniffed from the file content, falling back to the
file extension. The target format comes from the output path's extension.

Examples:
  subsync convert movie.srt -o movie.vtt
  subsync convert episode.ass -o episode.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		return fmt.Errorf("output path is required: use --output")
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}
	content := string(data)

	from, ok := subtitle.DetectFormat(content)
	if !ok {
		from, ok = subtitle.FormatFromExtension(inputPath)
		if !ok {
			return fmt.Errorf("could not determine input format of %s", inputPath)
		}
	}

	to, ok := subtitle.FormatFromExtension(outputPath)
	if !ok {
		return fmt.Errorf("could not determine target format of %s", outputPath)
	}

	logger.Infow("Converting subtitles",
		"input", inputPath,
		"from", from,
		"to", to,
	)

	converted, err := subtitle.Convert(content, from, to)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(converted), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Converted %s -> %s: %s\n", from, to, absOutput)

	return nil
}
