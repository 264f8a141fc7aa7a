package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/devopsboard/dashboard/internal/config"
	"github.com/devopsboard/dashboard/internal/dashboard"
	"github.com/devopsboard/dashboard/internal/server"
)

var rootFlags struct {
	config  string
	verbose bool
}

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:           "devops-dashboard",
	Short:         "Deployment, pipeline and system health dashboard",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		var err error
		cfg, err = config.Load(rootFlags.config)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load configuration")
			return err
		}

		zerolog.SetGlobalLevel(cfg.Level())
		if rootFlags.verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Debug().Interface("config", cfg).Msg("Loaded configuration")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.config, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.AddCommand(serveCmd, renderCmd)
}

func newServer() (*server.Server, error) {
	board, err := dashboard.NewBoard(dashboard.NewStaticSource())
	if err != nil {
		return nil, err
	}
	return server.NewServer(board, cfg.Root), nil
}
