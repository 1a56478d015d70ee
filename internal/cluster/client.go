// Package cluster establishes and checks the single cluster connection a
// dashboard run uses. The dashboard watches exactly one cluster and one
// namespace; both preconditions (reachable API server, existing namespace)
// are verified here before the refresh loop starts.
package cluster

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"

	"github.com/aryankumar/appwatch/internal/config"
	"github.com/aryankumar/appwatch/internal/util"
)

// Connect builds a client for the current (or named) kubeconfig context.
// It does not touch the network; HealthCheck does.
func Connect(kubeconfigPath, contextName string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	loader := config.NewKubeconfigLoader(kubeconfigPath)

	if contextName == "" {
		current, err := loader.GetCurrentContext()
		if err != nil {
			return nil, fmt.Errorf("failed to determine current context: %w", err)
		}
		contextName = current
	}

	restConfig, err := loader.BuildClientConfig(contextName)
	if err != nil {
		return nil, fmt.Errorf("failed to build client config: %w", err)
	}

	return NewClient(contextName, restConfig, logger)
}

// NewClient creates a cluster client from a REST config
func NewClient(contextName string, restConfig *rest.Config, logger *slog.Logger) (*Client, error) {
	if restConfig == nil {
		return nil, fmt.Errorf("rest config cannot be nil")
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	client := &Client{
		Context:    contextName,
		Clientset:  clientset,
		RestConfig: restConfig,
		Healthy:    false, // Will be set by health check
	}

	logger.Debug("created cluster client",
		"context", contextName,
		"server", restConfig.Host)

	return client, nil
}

// HealthCheck pings the API server via the Discovery API. The ServerVersion
// call is the lightest request the server answers, which makes it a cheap
// reachability probe.
func (c *Client) HealthCheck(ctx context.Context) error {
	healthCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	type result struct {
		version string
		err     error
	}
	resultCh := make(chan result, 1)

	// Discovery calls ignore contexts, so run the probe in a goroutine and
	// race it against the timeout
	go func() {
		version, err := c.Clientset.Discovery().ServerVersion()
		if err != nil {
			resultCh <- result{err: err}
			return
		}
		resultCh <- result{version: version.String(), err: nil}
	}()

	select {
	case <-healthCtx.Done():
		c.Healthy = false
		return util.WrapErrorf(util.ErrClusterUnreachable, "health check timeout")
	case res := <-resultCh:
		if res.err != nil {
			c.Healthy = false
			return fmt.Errorf("%w: %v", util.ErrClusterUnreachable, res.err)
		}
		c.Healthy = true
		return nil
	}
}

// NamespaceExists verifies the target namespace is present. A missing
// namespace is fatal; any other failure (permissions, transient) is
// reported as unreachable since the loop cannot start without the check.
func (c *Client) NamespaceExists(ctx context.Context, namespace string) error {
	nsCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := c.Clientset.CoreV1().Namespaces().Get(nsCtx, namespace, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return fmt.Errorf("%w: %q", util.ErrNamespaceNotFound, namespace)
		}
		return fmt.Errorf("%w: checking namespace %q: %v", util.ErrClusterUnreachable, namespace, err)
	}

	return nil
}

// IsHealthy returns the current health status
func (c *Client) IsHealthy() bool {
	return c.Healthy
}

// String returns a string representation of the client
func (c *Client) String() string {
	return fmt.Sprintf("Client{Context: %s, Healthy: %v}", c.Context, c.Healthy)
}
