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

package server

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/dashboard-audit/pkg/defaults"
)

// Config holds server configuration.
type Config struct {
	Name    string
	Version string

	// Handlers maps route patterns to handlers. Each is wrapped in the
	// middleware chain.
	Handlers map[string]http.HandlerFunc

	Address string
	Port    int

	RateLimit      rate.Limit // requests per second
	RateLimitBurst int

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a Config with the package defaults.
func NewConfig() *Config {
	return &Config{
		Name:              "dashauditd",
		Version:           "dev",
		Handlers:          map[string]http.HandlerFunc{},
		Port:              defaults.ServerPort,
		RateLimit:         defaults.ServerRateLimit,
		RateLimitBurst:    defaults.ServerRateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}
}
