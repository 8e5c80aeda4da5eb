package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Zachkp/cyberfolio/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cyberfolio",
	Short: "Animated single-page developer portfolio",
	Long: `cyberfolio serves a single-page developer portfolio. Page behavior
(section highlighting, the hero name reveal, theme switching, the cursor
follower and the mobile menu) runs in a live session per browser tab.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
