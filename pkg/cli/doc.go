// Package cli implements the dashaudit command-line interface.
//
// # Commands
//
// resolve - Resolve the collector items for a dashboard:
//
//	dashaudit resolve --business-service payments --business-application checkout \
//	  --type Build [--alt-identifier svc-a] [--identifier-name api] \
//	  [--test-type Unit] [--next-gen]
//
// The dashboard is found by its configuration item pair. The strategy is
// picked from the flags: --test-type wins, then --next-gen, otherwise the
// identifier name lookup, which degrades to the alternate identifier and then
// to the plain type lookup.
//
// dashboard - Show the dashboard configured for a business service/application:
//
//	dashaudit dashboard --business-service payments --business-application checkout
//
// types - List supported collector types and store backends.
//
// serve - Run the HTTP API server (same as dashauditd).
//
// seed - Load a dataset into the configured store backend:
//
//	dashaudit seed --dataset cm://dashboards/seed --backend postgres
//
// # Global Flags
//
//	--config       Config file (see pkg/config), also DASHAUDIT_CONFIG
//	--log-level    debug, info, warn, error (default: info)
//	--output, -o   Output file path or cm://namespace/name (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: yaml)
//
// Store selection flags (--backend, --dataset, --kubeconfig) override the
// matching store.* configuration keys.
package cli
