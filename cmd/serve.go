package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"odgen/pkg/config"
	"odgen/pkg/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve roster upload and report download over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.ResolveServerAddr()
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Serving Official Duty lists on %s\n", addr)
		h := server.NewHandler(newGenerator(cfg), cfg, logger)
		if err := server.Run(ctx, addr, h); err != nil {
			logger.Error("server stopped", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (default from config or :8080)")
}
