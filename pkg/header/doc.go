// Package header provides the common document header shared by datasets,
// resolution results and dashboard lookups.
//
// Every document written by the CLI, and every dataset it reads, starts with:
//
//	kind: Dataset
//	apiVersion: dashaudit.io/v1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v0.3.0
//
// Consumers should check APIVersion and Kind before decoding the body.
package header
