// Package k8s groups the Kubernetes integration used to read and write
// datasets and results stored in ConfigMaps (cm://namespace/name).
//
// The client sub-package caches one clientset per kubeconfig:
//
//	cs, err := client.GetKubeClientWithConfig(kubeconfig)
package k8s
