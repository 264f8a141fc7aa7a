package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var renderFlags struct {
	out string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the dashboard as static HTML files",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cfg.OutDir
		if renderFlags.out != "" {
			out = renderFlags.out
		}

		srv, err := newServer()
		if err != nil {
			log.Error().Err(err).Msg("Failed to build dashboard")
			return err
		}

		written, err := srv.WriteSite(out)
		if err != nil {
			log.Error().Err(err).Msg("Failed to render site")
			return err
		}
		for _, path := range written {
			log.Debug().Str("path", path).Msg("Wrote page")
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFlags.out, "out", "o", "", "Output directory (overrides config)")
}
