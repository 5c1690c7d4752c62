// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server runs the dashaudit HTTP API.
//
// Routes are supplied by the caller through WithHandler and wrapped in a
// middleware chain: metrics, API version negotiation, request id, panic
// recovery, rate limiting and request logging. The server also exposes
// /health, /ready and /metrics, and a root route listing the registered
// paths.
//
//	s := server.New(
//	    server.WithName("dashauditd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/collector-items": r.HandleCollectorItems,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Errors are written as ErrorResponse JSON bodies. Handlers should use
// WriteError or WriteErrorFromErr so the request id and retry hint are
// filled in consistently.
//
// Clients may request an API version with
// "Accept: application/vnd.dashaudit.v1+json"; the negotiated version is
// echoed in X-API-Version.
package server
