/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/dashboard-audit/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server",
		Description: `Serve the collector item and dashboard lookup routes:

  GET /v1/collector-items
  GET /v1/dashboards

plus /health, /ready and /metrics. Server settings come from the config file
and DASHAUDIT_SERVER_* environment variables.`,
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "Listen port, overrides server.port",
			},
		}, storeFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.IsSet("port") {
				cfg.Server.Port = int(cmd.Int("port"))
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			slog.Info("serving",
				"backend", cfg.Store.Backend,
				"port", cfg.Server.Port)

			return api.Run(ctx, cfg, name, version)
		},
	}
}
