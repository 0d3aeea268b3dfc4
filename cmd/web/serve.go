package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/landing-web/internal/server"
)

func newServeCommand(flags *rootFlags) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()
			if port != "" {
				a.cfg.Server.Port = port
			}
			for _, issue := range a.store.Parity() {
				a.logger.Warn("content parity drift", zap.String("issue", issue.String()))
			}

			srv := server.New(server.Options{
				Config:   a.cfg,
				Pages:    a.pages,
				Chrome:   a.chrome,
				Logger:   a.logger,
				LoadedAt: time.Now(),
			})
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			a.logger.Info("starting landing web",
				zap.String("env", a.cfg.Env),
				zap.Bool("dev", a.cfg.Dev),
				zap.String("default_site", a.cfg.Sites.Default),
				zap.Strings("sites", a.store.IDs()),
			)
			return server.Run(ctx, srv, a.logger, a.cfg.Server.ShutdownTimeout)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides LANDING_PORT)")
	return cmd
}
