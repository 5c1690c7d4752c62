/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/dashboard-audit/pkg/config"
	"github.com/NVIDIA/dashboard-audit/pkg/model"
	"github.com/NVIDIA/dashboard-audit/pkg/resolver"
)

func businessFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "business-service",
			Aliases:  []string{"s"},
			Usage:    "Configuration item business service name of the dashboard",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "business-application",
			Aliases:  []string{"a"},
			Usage:    "Configuration item business application name of the dashboard",
			Required: true,
		},
	}
}

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "resolve",
		EnableShellCompletion: true,
		Usage:                 "Resolve the collector items of a dashboard",
		Description: `Find the dashboard configured for a business service and application,
then resolve its collector items of the requested type.

Strategy selection:
  --test-type        keep items whose testType option equals the value (case-sensitive)
  --next-gen         use the first component of the dashboard's application
  otherwise          --identifier-name, falling back to --alt-identifier,
                     falling back to every item of the type

Identifier matching is case-insensitive.`,
		Flags: append(append(businessFlags(),
			&cli.StringFlag{
				Name:     "type",
				Usage:    fmt.Sprintf("Collector type (supported values: %s)", strings.Join(model.SupportedCollectorTypes(), ", ")),
				Required: true,
			},
			&cli.StringFlag{
				Name:  "alt-identifier",
				Usage: "Alternate identifier to match against collector items",
			},
			&cli.StringFlag{
				Name:  "identifier-name",
				Usage: "Artifact name to match against the artifactName option",
			},
			&cli.StringFlag{
				Name:  "test-type",
				Usage: "Test type to match against the testType option",
			},
			&cli.BoolFlag{
				Name:  "next-gen",
				Usage: "Resolve through the dashboard's application components instead of its widgets",
			},
			&cli.BoolFlag{
				Name:  "alt-identifier-fallback",
				Usage: "Return every item of the type when no item matches --alt-identifier",
			},
		), storeFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			q, err := buildQueryFromCmd(cmd)
			if err != nil {
				return fmt.Errorf("error parsing resolve input parameter: %w", err)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.IsSet("alt-identifier-fallback") {
				cfg.Resolver.AltIdentifierFallback = cmd.Bool("alt-identifier-fallback")
			}

			r, closeFn, err := newResolver(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := r.Resolve(ctx, q)
			if err != nil {
				return fmt.Errorf("error resolving collector items: %w", err)
			}

			return writeResult(ctx, cmd, res)
		},
	}
}

func dashboardCmd() *cli.Command {
	return &cli.Command{
		Name:                  "dashboard",
		EnableShellCompletion: true,
		Usage:                 "Show the dashboard configured for a business service and application",
		Flags: append(businessFlags(), storeFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			r, closeFn, err := newResolver(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			l, err := r.Lookup(ctx, cmd.String("business-service"), cmd.String("business-application"))
			if err != nil {
				return fmt.Errorf("error looking up dashboard: %w", err)
			}

			return writeResult(ctx, cmd, l)
		},
	}
}

// buildQueryFromCmd constructs a resolver.Query from CLI flags.
func buildQueryFromCmd(cmd *cli.Command) (*resolver.Query, error) {
	t, err := model.ParseCollectorType(cmd.String("type"))
	if err != nil {
		return nil, err
	}

	q := &resolver.Query{
		BusinessService:     cmd.String("business-service"),
		BusinessApplication: cmd.String("business-application"),
		CollectorType:       t,
		AltIdentifier:       cmd.String("alt-identifier"),
		IdentifierName:      cmd.String("identifier-name"),
		TestType:            cmd.String("test-type"),
		NextGen:             cmd.Bool("next-gen"),
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

func newResolver(ctx context.Context, cfg *config.Config) (*resolver.Resolver, func(), error) {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	r := resolver.New(st.Components(), st.CollectorItems(), st.Dashboards(),
		resolver.WithAltIdentifierFallback(cfg.Resolver.AltIdentifierFallback),
		resolver.WithVersion(version),
	)
	return r, func() { _ = st.Close(ctx) }, nil
}
