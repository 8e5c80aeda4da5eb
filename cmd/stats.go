package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/cyberfolio/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print visitor and theme statistics as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := store.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()

		stats, err := db.Stats(time.Now())
		if err != nil {
			return fmt.Errorf("loading stats: %w", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
