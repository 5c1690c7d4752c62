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

package header

import (
	"time"
)

// APIVersionV1 is the current document API version.
const APIVersionV1 = "dashaudit.io/v1"

// Kind identifies the type of a serialized document.
type Kind string

const (
	KindDataset         Kind = "Dataset"
	KindResolution      Kind = "Resolution"
	KindDashboardLookup Kind = "DashboardLookup"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known document kind.
func (k *Kind) IsValid() bool {
	switch *k {
	case KindDataset, KindResolution, KindDashboardLookup:
		return true
	default:
		return false
	}
}

// Option configures a Header.
type Option func(*Header)

// WithMetadata sets a single metadata key.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind sets the document kind.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion sets the document API version.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

func (h *Header) SetKind(kind Kind) {
	h.Kind = kind
}

func (h *Header) GetKind() Kind {
	return h.Kind
}

func (h *Header) GetMetadata() map[string]string {
	return h.Metadata
}

// New returns a Header with the given options applied.
func New(opts ...Option) *Header {
	s := &Header{
		Metadata: make(map[string]string),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Header is the common preamble of every document the tool reads or writes.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the API version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing how the document was produced.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init resets the header to kind/apiVersion and stamps the current time and
// producing tool version.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = make(map[string]string)

	h.Metadata["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata["version"] = version
	}
}
