package cluster

import (
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

// Client represents a connection to a single Kubernetes cluster
type Client struct {
	// Context is the kubeconfig context name
	Context string

	// Clientset is the Kubernetes client interface
	Clientset kubernetes.Interface

	// RestConfig is the underlying REST configuration
	RestConfig *rest.Config

	// Healthy indicates if the last health check passed
	Healthy bool
}
