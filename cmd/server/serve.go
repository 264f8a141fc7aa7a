package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveFlags.addr != "" {
			cfg.Addr = serveFlags.addr
		}

		srv, err := newServer()
		if err != nil {
			log.Error().Err(err).Msg("Failed to build dashboard")
			return err
		}

		httpServer := &http.Server{
			Addr:    cfg.Addr,
			Handler: srv.Router(),
		}

		// Graceful shutdown
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Info().Str("signal", sig.String()).Msg("Shutting down")

			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("Graceful shutdown failed")
			}
		}()

		log.Info().Str("addr", cfg.Addr).Msg("Starting DevOps Dashboard")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server failed")
			return err
		}
		log.Info().Msg("Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveFlags.addr, "addr", "a", "", "Address to listen on (overrides config)")
}
