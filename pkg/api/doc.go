// Package api wires the collector item resolver into the HTTP server.
//
// Serve loads configuration (see pkg/config), opens the configured store
// backend, and mounts the resolver routes on a pkg/server instance:
//
//	GET /v1/collector-items?businessService=&businessApplication=&type=
//	    [&altIdentifier=][&identifierName=][&testType=][&nextGen=true]
//	GET /v1/dashboards?businessService=&businessApplication=
//
// System routes (/health, /ready, /metrics) come from pkg/server.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/dashboard-audit/pkg/api.version=1.0.0'"
package api
