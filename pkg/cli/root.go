/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/dashboard-audit/pkg/logging"
)

const (
	name           = "dashaudit"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the CLI with the process arguments and exits non-zero on
// error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Resolve dashboard collector items",
		Description: `dashaudit resolves the collector items a dashboard's metric
evaluations read, using the same fallback strategies as the API server.`,
		Flags: []cli.Flag{
			configFlag(),
			logLevelFlag(),
			outputFlag(),
			formatFlag(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			resolveCmd(),
			dashboardCmd(),
			typesCmd(),
			serveCmd(),
			seedCmd(),
		},
	}
}
