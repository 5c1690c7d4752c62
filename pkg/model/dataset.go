package model

import "github.com/NVIDIA/dashboard-audit/pkg/header"

// Dataset is a seed document holding every entity the stores serve. It is
// used to populate the in-memory store and to load fixtures into the
// persistent backends.
type Dataset struct {
	header.Header `json:",inline" yaml:",inline"`

	Dashboards     []Dashboard     `json:"dashboards,omitempty" yaml:"dashboards,omitempty"`
	Components     []Component     `json:"components,omitempty" yaml:"components,omitempty"`
	CollectorItems []CollectorItem `json:"collectorItems,omitempty" yaml:"collectorItems,omitempty"`
}

// Validate checks that identifiers are present and unique per entity kind.
func (d *Dataset) Validate() error {
	if err := uniqueIDs("dashboard", len(d.Dashboards), func(i int) string { return d.Dashboards[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("component", len(d.Components), func(i int) string { return d.Components[i].ID }); err != nil {
		return err
	}
	return uniqueIDs("collector item", len(d.CollectorItems), func(i int) string { return d.CollectorItems[i].ID })
}
