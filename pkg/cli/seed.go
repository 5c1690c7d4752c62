/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/dashboard-audit/pkg/store"
)

// seedSummary reports what seed wrote.
type seedSummary struct {
	Backend        string `json:"backend" yaml:"backend"`
	Dataset        string `json:"dataset" yaml:"dataset"`
	Dashboards     int    `json:"dashboards" yaml:"dashboards"`
	Components     int    `json:"components" yaml:"components"`
	CollectorItems int    `json:"collectorItems" yaml:"collectorItems"`
}

func (s *seedSummary) TableRows() ([]string, [][]string) {
	return []string{"BACKEND", "DATASET", "DASHBOARDS", "COMPONENTS", "COLLECTOR ITEMS"},
		[][]string{{
			s.Backend,
			s.Dataset,
			strconv.Itoa(s.Dashboards),
			strconv.Itoa(s.Components),
			strconv.Itoa(s.CollectorItems),
		}}
}

func seedCmd() *cli.Command {
	return &cli.Command{
		Name:                  "seed",
		EnableShellCompletion: true,
		Usage:                 "Load a dataset into the configured store",
		Description: `Read a Dataset document and upsert its dashboards, components and
collector items into the configured backend. With the memory backend the
dataset is only validated.`,
		Flags: storeFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			location := cfg.Store.Dataset
			if location == "" {
				return fmt.Errorf("--dataset or store.dataset is required")
			}

			ds, err := store.LoadDataset(ctx, location, cfg.Store.Kubeconfig)
			if err != nil {
				return err
			}

			sc := cfg.StoreConfig()
			sc.Dataset = ""
			st, err := store.Open(ctx, sc)
			if err != nil {
				return fmt.Errorf("failed to open %s store: %w", sc.Backend, err)
			}
			defer func() { _ = st.Close(ctx) }()

			if st.Backend() == store.BackendMemory {
				slog.Warn("memory backend does not persist seeded data")
			}

			if err := st.Seed(ctx, ds); err != nil {
				return err
			}

			return writeResult(ctx, cmd, &seedSummary{
				Backend:        st.Backend().String(),
				Dataset:        location,
				Dashboards:     len(ds.Dashboards),
				Components:     len(ds.Components),
				CollectorItems: len(ds.CollectorItems),
			})
		},
	}
}
