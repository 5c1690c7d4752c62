/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/dashboard-audit/pkg/model"
	"github.com/NVIDIA/dashboard-audit/pkg/store"
)

// supported lists the values accepted by --type and --backend.
type supported struct {
	CollectorTypes []string `json:"collectorTypes" yaml:"collectorTypes"`
	Backends       []string `json:"backends" yaml:"backends"`
}

func (s *supported) TableRows() ([]string, [][]string) {
	rows := make([][]string, 0, len(s.CollectorTypes)+len(s.Backends))
	for _, t := range s.CollectorTypes {
		rows = append(rows, []string{"collectorType", t})
	}
	for _, b := range s.Backends {
		rows = append(rows, []string{"backend", b})
	}
	return []string{"KIND", "VALUE"}, rows
}

func typesCmd() *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: "List supported collector types and store backends",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeResult(ctx, cmd, &supported{
				CollectorTypes: model.SupportedCollectorTypes(),
				Backends:       store.SupportedBackends(),
			})
		},
	}
}
