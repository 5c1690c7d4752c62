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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// ResolveHandlerTimeout bounds a single collector-item resolution request.
	ResolveHandlerTimeout = 15 * time.Second

	// DashboardHandlerTimeout bounds a dashboard lookup request.
	DashboardHandlerTimeout = 10 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server sizing.
const (
	// ServerPort is the default listen port.
	ServerPort = 8080

	// ServerRateLimit is the default sustained requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the default burst size.
	ServerRateLimitBurst = 200

	// ServerMaxBulkRequests caps concurrent in-flight requests.
	ServerMaxBulkRequests = 100
)

// Store timeouts and sizing.
const (
	// StoreConnectTimeout bounds the initial connection and ping.
	StoreConnectTimeout = 10 * time.Second

	// StoreQueryTimeout bounds a single store read issued by the CLI.
	StoreQueryTimeout = 30 * time.Second

	// StoreSeedTimeout bounds a full dataset seed.
	StoreSeedTimeout = 2 * time.Minute

	// PostgresMaxConns is the default pool size.
	PostgresMaxConns int32 = 10

	// PostgresMaxConnLifetime recycles pooled connections.
	PostgresMaxConnLifetime = 30 * time.Minute

	// MongoDatabase is the default database name.
	MongoDatabase = "dashboard"
)

// Kubernetes timeouts for K8s API operations.
const (
	// ConfigMapReadTimeout is the timeout for reading ConfigMaps.
	ConfigMapReadTimeout = 30 * time.Second

	// ConfigMapWriteTimeout is the timeout for writing to ConfigMaps.
	ConfigMapWriteTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)
