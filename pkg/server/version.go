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
	"strings"
)

// DefaultAPIVersion is used when the client does not negotiate one.
const DefaultAPIVersion = "v1"

const vendorMediaPrefix = "application/vnd.dashaudit."

var supportedAPIVersions = map[string]bool{
	"v1": true,
}

// negotiateAPIVersion reads "Accept: application/vnd.dashaudit.vN+json".
// Unknown or malformed versions fall back to DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	for _, accept := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType := strings.TrimSpace(strings.SplitN(accept, ";", 2)[0])
		if !strings.HasPrefix(mediaType, vendorMediaPrefix) {
			continue
		}
		version := strings.TrimPrefix(mediaType, vendorMediaPrefix)
		version = strings.SplitN(version, "+", 2)[0]
		if isValidAPIVersion(version) {
			return version
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(version string) bool {
	return supportedAPIVersions[version]
}

// SetAPIVersionHeader sets X-API-Version.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
