package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/aspire/config"
	"github.com/lixenwraith/aspire/logging"
	"github.com/lixenwraith/aspire/parameter"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// screenAnnotation marks commands that own the terminal and must log to a file
const screenAnnotation = "screen"

var rootCmd = &cobra.Command{
	Use:   "aspire",
	Short: "Particle hero, not-found globe and contact endpoint for the aspire site",
	Long: `aspire runs the contact submission service and previews the site's particle scenes.

The hero field morphs a point sphere into the logo silhouette as you scroll;
the not-found globe is a rotating point cloud. Both can be previewed in the
terminal or rendered headless to WebP/PNG posters.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logCfg := cfg.Logging
		if verbose {
			logCfg = logCfg.Verbose()
		}
		if cmd.Annotations[screenAnnotation] == "true" && len(logCfg.OutputPaths) == 0 {
			logCfg.OutputPaths = []string{parameter.PreviewLogFile}
		}
		logger, err = logging.New(logCfg)
		if err != nil {
			return err
		}
		logger.Debug("Config loaded", zap.String("path", configPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "aspire.yaml", "Config file (defaults apply when missing)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(heroCmd)
	rootCmd.AddCommand(notFoundCmd)
	rootCmd.AddCommand(posterCmd)
	rootCmd.AddCommand(submissionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
