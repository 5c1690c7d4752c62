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

// Package client builds and caches Kubernetes clients.
//
// Clients are cached per kubeconfig path so repeated dataset loads from
// ConfigMaps reuse one connection:
//
//	cs, _, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	cm, err := cs.CoreV1().ConfigMaps("ops").Get(ctx, "seed", metav1.GetOptions{})
//
// An empty kubeconfig path means discovery: $KUBECONFIG, then
// ~/.kube/config, then the in-cluster service account.
package client
