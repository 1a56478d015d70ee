package kube

// Kind identifies a resource kind the dashboard knows how to query.
type Kind string

const (
	KindDeployment Kind = "Deployment"
	KindReplicaSet Kind = "ReplicaSet"
	KindPod        Kind = "Pod"
	KindService    Kind = "Service"
	KindEvent      Kind = "Event"
	KindConfigMap  Kind = "ConfigMap"
	KindSecret     Kind = "Secret"
)

// ColumnClass tags how a column's values should be color-classified.
type ColumnClass int

const (
	// ColumnPlain values render neutrally.
	ColumnPlain ColumnClass = iota

	// ColumnStatus values are classified as status tokens.
	ColumnStatus

	// ColumnRestarts values are restart-like counters: zero is healthy,
	// positive deserves attention.
	ColumnRestarts
)

// Column describes one kind-specific display column.
type Column struct {
	Name  string
	Class ColumnClass
}

// kindColumns is the per-kind column layout, in display order. Every kind's
// table starts with NAME and ends with the provenance APP column; these are
// the columns in between.
var kindColumns = map[Kind][]Column{
	KindDeployment: {
		{Name: "READY"},
		{Name: "STATUS", Class: ColumnStatus},
		{Name: "AGE"},
	},
	KindReplicaSet: {
		{Name: "DESIRED"},
		{Name: "CURRENT"},
		{Name: "READY"},
		{Name: "AGE"},
	},
	KindPod: {
		{Name: "READY"},
		{Name: "STATUS", Class: ColumnStatus},
		{Name: "RESTARTS", Class: ColumnRestarts},
		{Name: "AGE"},
		{Name: "IP"},
		{Name: "NODE"},
	},
	KindService: {
		{Name: "TYPE"},
		{Name: "CLUSTER-IP"},
		{Name: "PORTS"},
		{Name: "AGE"},
	},
	KindEvent: {
		{Name: "LAST SEEN"},
		{Name: "TYPE"},
		{Name: "REASON", Class: ColumnStatus},
		{Name: "MESSAGE"},
	},
	KindConfigMap: {
		{Name: "DATA"},
		{Name: "AGE"},
	},
	KindSecret: {
		{Name: "TYPE"},
		{Name: "DATA"},
		{Name: "AGE"},
	},
}

// Columns returns the display columns for a kind (excluding NAME and APP).
func Columns(kind Kind) []Column {
	return kindColumns[kind]
}

// Object is a read-only snapshot of one cluster resource, flattened to the
// display columns of its kind. Objects are valid for a single refresh pass
// and never mutated.
type Object struct {
	Kind    Kind     `json:"kind" yaml:"kind"`
	Name    string   `json:"name" yaml:"name"`
	Columns []string `json:"columns" yaml:"columns"`
}

// PodHealth is the result of a secondary per-pod health query.
type PodHealth struct {
	Phase    string `json:"phase" yaml:"phase"`
	Ready    string `json:"ready" yaml:"ready"`
	Restarts int    `json:"restarts" yaml:"restarts"`
}
