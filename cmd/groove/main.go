package main

import (
	"github.com/spf13/cobra"

	"github.com/aamati/groove/groove/config"
	"github.com/aamati/groove/logging"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "groove",
	Short: "Groove descriptor extraction for MIDI performances",
	Long: `Analyzes performed MIDI passages and derives groove descriptors:
density, swing, polyphony, onset statistics, composite energy, and
categorical timing/dynamics/fill codes for mood classification.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logging.SetLevel(logging.ParseLevel(cfg.LogLevel))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a YAML config file (env vars with prefix GROOVE_ override)")
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
