package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/cyberfolio/internal/content"
	"github.com/Zachkp/cyberfolio/internal/server"
	"github.com/Zachkp/cyberfolio/internal/store"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Port = servePort
		}
		gin.SetMode(cfg.Mode)

		portfolio, err := content.Load(cfg.ContentPath)
		if err != nil {
			return err
		}

		db, err := store.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()

		srv, err := server.New(cfg, db, portfolio)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
