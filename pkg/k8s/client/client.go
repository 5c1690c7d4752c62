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

package client

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// Interface is an alias for kubernetes.Interface so fake clientsets can be
// passed wherever a client is expected.
type Interface = kubernetes.Interface

type entry struct {
	once   sync.Once
	client Interface
	config *rest.Config
	err    error
}

var (
	mu    sync.Mutex
	cache = map[string]*entry{}
)

// GetKubeClient returns the cached client for the discovered kubeconfig,
// building it on first use.
func GetKubeClient() (Interface, *rest.Config, error) {
	return GetKubeClientWithConfig("")
}

// GetKubeClientWithConfig returns the cached client for kubeconfig, building
// it on first use. Build failures are cached too.
func GetKubeClientWithConfig(kubeconfig string) (Interface, *rest.Config, error) {
	mu.Lock()
	e, ok := cache[kubeconfig]
	if !ok {
		e = &entry{}
		cache[kubeconfig] = e
	}
	mu.Unlock()

	e.once.Do(func() {
		cs, cfg, err := BuildKubeClient(kubeconfig)
		if err != nil {
			e.err = err
			return
		}
		e.client, e.config = cs, cfg
	})
	return e.client, e.config, e.err
}

// BuildKubeClient creates an uncached client from kubeconfig. An empty path
// falls back to $KUBECONFIG, ~/.kube/config and finally in-cluster config.
func BuildKubeClient(kubeconfig string) (*kubernetes.Clientset, *rest.Config, error) {
	path := resolveKubeconfig(kubeconfig)

	var (
		config *rest.Config
		err    error
	)
	if path == "" {
		config, err = rest.InClusterConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
	} else {
		config, err = clientcmd.BuildConfigFromFlags("", path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build kube config from %s: %w", path, err)
		}
	}

	cs, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return cs, config, nil
}

func resolveKubeconfig(kubeconfig string) string {
	if kubeconfig != "" {
		return kubeconfig
	}
	if env := os.Getenv("KUBECONFIG"); env != "" {
		return env
	}
	home := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(home); err == nil {
		return home
	}
	return ""
}

func resetCache() {
	mu.Lock()
	cache = map[string]*entry{}
	mu.Unlock()
}
