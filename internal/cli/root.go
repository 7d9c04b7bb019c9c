package cli

import (
	"github.com/spf13/cobra"

	"github.com/MylesLandais/subsync/internal/config"
	"github.com/MylesLandais/subsync/internal/logging"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "subsync",
	Short: "Subtitle synchronization, formatting, and muxing",
	Long: `Subsync turns transcript segments into timed subtitle files.

It chunks transcript text to fit on screen, optimizes display timing,
writes SRT, VTT, or ASS output, and can embed the result into an MKV
container via mkvmerge or ffmpeg.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		var err error
		cfg, err = config.Load(configPath)
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
