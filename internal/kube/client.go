// Package kube is the typed query layer between the dashboard and the
// Kubernetes API. It flattens API objects into generic, read-only Object
// records carrying the display columns of their kind, so the resolver and
// renderers never touch client-go types directly.
package kube

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/client-go/kubernetes"
)

// AppLabel is the label key used for tier-1 application matching.
const AppLabel = "app"

// Client queries a single namespace of a single cluster.
type Client struct {
	clientset kubernetes.Interface
	namespace string
	timeout   time.Duration
	logger    *slog.Logger
}

// NewClient creates a query client scoped to a namespace. Every call gets
// its own timeout derived from the passed context.
func NewClient(clientset kubernetes.Interface, namespace string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		clientset: clientset,
		namespace: namespace,
		timeout:   timeout,
		logger:    logger,
	}
}

// Namespace returns the namespace this client is scoped to.
func (c *Client) Namespace() string {
	return c.namespace
}

// ListByLabel lists objects of a kind carrying the label app=<app>.
func (c *Client) ListByLabel(ctx context.Context, kind Kind, app string) ([]Object, error) {
	selector := labels.Set{AppLabel: app}.String()
	return c.list(ctx, kind, metav1.ListOptions{LabelSelector: selector})
}

// ListAll lists every object of a kind in the namespace.
func (c *Client) ListAll(ctx context.Context, kind Kind) ([]Object, error) {
	return c.list(ctx, kind, metav1.ListOptions{})
}

func (c *Client) list(ctx context.Context, kind Kind, opts metav1.ListOptions) ([]Object, error) {
	listCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	now := time.Now()

	switch kind {
	case KindDeployment:
		list, err := c.clientset.AppsV1().Deployments(c.namespace).List(listCtx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list deployments: %w", err)
		}
		objects := make([]Object, 0, len(list.Items))
		for i := range list.Items {
			objects = append(objects, deploymentToObject(&list.Items[i], now))
		}
		return objects, nil

	case KindReplicaSet:
		list, err := c.clientset.AppsV1().ReplicaSets(c.namespace).List(listCtx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list replica sets: %w", err)
		}
		objects := make([]Object, 0, len(list.Items))
		for i := range list.Items {
			objects = append(objects, replicaSetToObject(&list.Items[i], now))
		}
		return objects, nil

	case KindPod:
		list, err := c.clientset.CoreV1().Pods(c.namespace).List(listCtx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pods: %w", err)
		}
		objects := make([]Object, 0, len(list.Items))
		for i := range list.Items {
			objects = append(objects, podToObject(&list.Items[i], now))
		}
		return objects, nil

	case KindService:
		list, err := c.clientset.CoreV1().Services(c.namespace).List(listCtx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list services: %w", err)
		}
		objects := make([]Object, 0, len(list.Items))
		for i := range list.Items {
			objects = append(objects, serviceToObject(&list.Items[i], now))
		}
		return objects, nil

	case KindEvent:
		// Events rarely carry app labels; the caller's prefix fallback is
		// what actually groups them, via the involved object's name.
		list, err := c.clientset.CoreV1().Events(c.namespace).List(listCtx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}
		objects := make([]Object, 0, len(list.Items))
		for i := range list.Items {
			objects = append(objects, eventToObject(&list.Items[i], now))
		}
		return objects, nil

	case KindConfigMap:
		list, err := c.clientset.CoreV1().ConfigMaps(c.namespace).List(listCtx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list configmaps: %w", err)
		}
		objects := make([]Object, 0, len(list.Items))
		for i := range list.Items {
			objects = append(objects, configMapToObject(&list.Items[i], now))
		}
		return objects, nil

	case KindSecret:
		list, err := c.clientset.CoreV1().Secrets(c.namespace).List(listCtx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list secrets: %w", err)
		}
		objects := make([]Object, 0, len(list.Items))
		for i := range list.Items {
			objects = append(objects, secretToObject(&list.Items[i], now))
		}
		return objects, nil

	default:
		return nil, fmt.Errorf("unsupported resource kind %q", kind)
	}
}

// PodHealth fetches the current phase, ready count, and restart count for a
// single pod.
func (c *Client) PodHealth(ctx context.Context, name string) (PodHealth, error) {
	getCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	pod, err := c.clientset.CoreV1().Pods(c.namespace).Get(getCtx, name, metav1.GetOptions{})
	if err != nil {
		return PodHealth{}, fmt.Errorf("failed to get pod %s: %w", name, err)
	}

	return PodHealth{
		Phase:    podStatus(pod),
		Ready:    readyCount(pod),
		Restarts: int(restartCount(pod)),
	}, nil
}

// TailLogs fetches the last lines of a pod's logs. The line count bounds the
// read on the server side so a chatty pod cannot flood a refresh pass.
func (c *Client) TailLogs(ctx context.Context, podName string, lines int64) ([]string, error) {
	logCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := &corev1.PodLogOptions{TailLines: &lines}
	raw, err := c.clientset.CoreV1().Pods(c.namespace).GetLogs(podName, opts).Do(logCtx).Raw()
	if err != nil {
		return nil, fmt.Errorf("failed to tail logs for pod %s: %w", podName, err)
	}

	text := strings.TrimRight(string(raw), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
