/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/dashboard-audit/pkg/config"
	"github.com/NVIDIA/dashboard-audit/pkg/serializer"
	"github.com/NVIDIA/dashboard-audit/pkg/store"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Usage:   "Path to a YAML config file",
		Sources: cli.EnvVars("DASHAUDIT_CONFIG"),
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Value:   "info",
		Sources: cli.EnvVars("LOG_LEVEL"),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output destination: file path or ConfigMap URI (cm://namespace/name). Default: stdout",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "backend",
			Usage: fmt.Sprintf("Store backend, overrides store.backend (supported values: %s)", strings.Join(store.SupportedBackends(), ", ")),
		},
		&cli.StringFlag{
			Name:    "dataset",
			Aliases: []string{"f"},
			Usage: `Dataset to load, overrides store.dataset.
	Supports: file paths, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).`,
		},
		&cli.StringFlag{
			Name:    "kubeconfig",
			Aliases: []string{"k"},
			Usage:   "Path to kubeconfig file, used when reading or writing ConfigMaps",
			Sources: cli.EnvVars("KUBECONFIG"),
		},
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %s",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// loadConfig reads --config and applies the store flag overrides.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("backend") {
		cfg.Store.Backend = cmd.String("backend")
	}
	if cmd.IsSet("dataset") {
		cfg.Store.Dataset = cmd.String("dataset")
	}
	if cmd.IsSet("kubeconfig") {
		cfg.Store.Kubeconfig = cmd.String("kubeconfig")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	st, err := store.Open(ctx, cfg.StoreConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}
	return st, nil
}

// writeResult serializes v to --output in --format.
func writeResult(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var s serializer.Serializer
	if path := strings.TrimSpace(cmd.String("output")); path != "" {
		s = serializer.NewFileWriterOrStdout(format, path)
	} else {
		s = serializer.NewWriter(format, stdout(cmd))
	}
	if c, ok := s.(serializer.Closer); ok {
		defer c.Close()
	}

	return s.Serialize(ctx, v)
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
