package kube

import (
	"fmt"
	"strings"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
)

func deploymentToObject(dep *appsv1.Deployment, now time.Time) Object {
	replicas := int32(0)
	if dep.Spec.Replicas != nil {
		replicas = *dep.Spec.Replicas
	}

	// The Available condition carries a True/False token that classifies
	// cleanly; missing condition renders neutrally.
	available := ""
	for _, cond := range dep.Status.Conditions {
		if cond.Type == appsv1.DeploymentAvailable {
			available = string(cond.Status)
			break
		}
	}

	return Object{
		Kind: KindDeployment,
		Name: dep.Name,
		Columns: []string{
			fmt.Sprintf("%d/%d", dep.Status.ReadyReplicas, replicas),
			available,
			formatAge(dep.CreationTimestamp.Time, now),
		},
	}
}

func replicaSetToObject(rs *appsv1.ReplicaSet, now time.Time) Object {
	desired := int32(0)
	if rs.Spec.Replicas != nil {
		desired = *rs.Spec.Replicas
	}

	return Object{
		Kind: KindReplicaSet,
		Name: rs.Name,
		Columns: []string{
			fmt.Sprintf("%d", desired),
			fmt.Sprintf("%d", rs.Status.Replicas),
			fmt.Sprintf("%d", rs.Status.ReadyReplicas),
			formatAge(rs.CreationTimestamp.Time, now),
		},
	}
}

func podToObject(pod *corev1.Pod, now time.Time) Object {
	return Object{
		Kind: KindPod,
		Name: pod.Name,
		Columns: []string{
			readyCount(pod),
			podStatus(pod),
			fmt.Sprintf("%d", restartCount(pod)),
			formatAge(pod.CreationTimestamp.Time, now),
			pod.Status.PodIP,
			pod.Spec.NodeName,
		},
	}
}

func serviceToObject(svc *corev1.Service, now time.Time) Object {
	ports := make([]string, 0, len(svc.Spec.Ports))
	for _, p := range svc.Spec.Ports {
		ports = append(ports, fmt.Sprintf("%d/%s", p.Port, p.Protocol))
	}

	return Object{
		Kind: KindService,
		Name: svc.Name,
		Columns: []string{
			string(svc.Spec.Type),
			svc.Spec.ClusterIP,
			strings.Join(ports, ","),
			formatAge(svc.CreationTimestamp.Time, now),
		},
	}
}

// eventToObject keys the record by the involved object's name rather than
// the event's own generated name, so prefix matching groups events under
// the application that owns the involved object.
func eventToObject(evt *corev1.Event, now time.Time) Object {
	lastSeen := evt.LastTimestamp.Time
	if lastSeen.IsZero() {
		lastSeen = evt.EventTime.Time
	}

	age := ""
	if !lastSeen.IsZero() {
		age = formatAge(lastSeen, now)
	}

	return Object{
		Kind: KindEvent,
		Name: evt.InvolvedObject.Name,
		Columns: []string{
			age,
			evt.Type,
			evt.Reason,
			evt.Message,
		},
	}
}

func configMapToObject(cm *corev1.ConfigMap, now time.Time) Object {
	return Object{
		Kind: KindConfigMap,
		Name: cm.Name,
		Columns: []string{
			fmt.Sprintf("%d", len(cm.Data)+len(cm.BinaryData)),
			formatAge(cm.CreationTimestamp.Time, now),
		},
	}
}

// secretToObject exposes only the entry count, never the data.
func secretToObject(sec *corev1.Secret, now time.Time) Object {
	return Object{
		Kind: KindSecret,
		Name: sec.Name,
		Columns: []string{
			string(sec.Type),
			fmt.Sprintf("%d", len(sec.Data)),
			formatAge(sec.CreationTimestamp.Time, now),
		},
	}
}

// podStatus derives the display status for a pod. A waiting container
// reason (CrashLoopBackOff, ImagePullBackOff, ContainerCreating, ...) is
// more telling than the phase, so it wins when present.
func podStatus(pod *corev1.Pod) string {
	if pod.DeletionTimestamp != nil {
		return "Terminating"
	}

	for _, cs := range pod.Status.ContainerStatuses {
		if cs.State.Waiting != nil && cs.State.Waiting.Reason != "" {
			return cs.State.Waiting.Reason
		}
	}

	return string(pod.Status.Phase)
}

func readyCount(pod *corev1.Pod) string {
	total := len(pod.Spec.Containers)
	ready := 0
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.Ready {
			ready++
		}
	}
	return fmt.Sprintf("%d/%d", ready, total)
}

func restartCount(pod *corev1.Pod) int32 {
	var restarts int32
	for _, cs := range pod.Status.ContainerStatuses {
		restarts += cs.RestartCount
	}
	return restarts
}

// formatAge renders a kubectl-style compact age (12s, 4m, 7h, 3d).
func formatAge(created time.Time, now time.Time) string {
	if created.IsZero() {
		return "<unknown>"
	}

	duration := now.Sub(created)
	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	case duration < time.Hour:
		return fmt.Sprintf("%dm", int(duration.Minutes()))
	case duration < 24*time.Hour:
		return fmt.Sprintf("%dh", int(duration.Hours()))
	default:
		return fmt.Sprintf("%dd", int(duration.Hours()/24))
	}
}
