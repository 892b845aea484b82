// Package metrics mirrors the index engine's plain atomic counters as
// optional Prometheus instrumentation. Grounded on
// _examples/drpcorg-chotki/index_manager.go's package-level
// prometheus.NewCounterVec/NewGaugeVec for its own index manager, and on
// the intent documented (if not wired to an actual client) in
// _examples/hupe1980-vecgo/metrics.go's MetricsCollector interface, whose
// doc comment names Prometheus as the expected integration.
//
// Collection is opt-in and nil-safe: an index built without a *Collector
// never touches Prometheus, so embedding applications that don't run a
// registry pay nothing and are never forced to share one.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector holds the per-index-operation vectors. Label "index" is the
// index name, matching the teacher's habit of keying its index-manager
// metrics by the class/field the index is built over.
type Collector struct {
	Lookups  *prometheus.CounterVec
	Inserts  *prometheus.CounterVec
	Deletes  *prometheus.CounterVec
	Updates  *prometheus.CounterVec
	Failures *prometheus.CounterVec
	Tuples   *prometheus.GaugeVec
}

// NewCollector builds a Collector with the given namespace/subsystem,
// following chotki's prometheus.CounterOpts{Namespace, Subsystem, Name}
// convention.
func NewCollector(namespace, subsystem string) *Collector {
	labels := []string{"index"}
	return &Collector{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "lookups_total",
		}, labels),
		Inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "inserts_total",
		}, labels),
		Deletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "deletes_total",
		}, labels),
		Updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "updates_total",
		}, labels),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "failures_total",
		}, []string{"index", "code"}),
		Tuples: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "tuples",
		}, labels),
	}
}

// Register adds every vector in c to reg. The caller chooses which
// registry (or none at all) to use, the same caution chotki takes by
// leaving its vectors as unregistered package vars until a caller opts in.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, coll := range []prometheus.Collector{c.Lookups, c.Inserts, c.Deletes, c.Updates, c.Failures, c.Tuples} {
		if err := reg.Register(coll); err != nil {
			return err
		}
	}
	return nil
}
