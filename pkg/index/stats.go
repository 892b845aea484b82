package index

import (
	"sync/atomic"

	"secidx/pkg/metrics"
)

// Stats holds the per-operation counters and dirty flag spec.md §4.5
// assigns to every index: plain monotonic counters with relaxed
// visibility (no happens-before claimed versus the data operations
// themselves), grounded on the atomic.Int64 counter fields in
// _examples/utkarsh5026-StoreMy/pkg/catalog/table_cache.go. An optional
// metrics.Collector mirrors the same counts into Prometheus; it is never
// required and is nil unless the embedding application opts in by passing
// one to ordered.NewUnique/ordered.NewMultiMap (or factory.New).
type Stats struct {
	lookups atomic.Int64
	inserts atomic.Int64
	deletes atomic.Int64
	updates atomic.Int64
	tuples  atomic.Int64
	dirty   atomic.Bool

	collector *metrics.Collector
	indexName string
}

// NewStats builds a zeroed Stats, optionally wired to collector for the
// named index.
func NewStats(indexName string, collector *metrics.Collector) *Stats {
	return &Stats{collector: collector, indexName: indexName}
}

func (s *Stats) RecordLookup() {
	s.lookups.Add(1)
	if s.collector != nil {
		s.collector.Lookups.WithLabelValues(s.indexName).Inc()
	}
}

func (s *Stats) RecordInsert() {
	s.inserts.Add(1)
	s.tuples.Add(1)
	s.dirty.Store(true)
	if s.collector != nil {
		s.collector.Inserts.WithLabelValues(s.indexName).Inc()
		s.collector.Tuples.WithLabelValues(s.indexName).Set(float64(s.tuples.Load()))
	}
}

func (s *Stats) RecordDelete() {
	s.deletes.Add(1)
	s.tuples.Add(-1)
	s.dirty.Store(true)
	if s.collector != nil {
		s.collector.Deletes.WithLabelValues(s.indexName).Inc()
		s.collector.Tuples.WithLabelValues(s.indexName).Set(float64(s.tuples.Load()))
	}
}

func (s *Stats) RecordUpdate() {
	s.updates.Add(1)
	s.dirty.Store(true)
	if s.collector != nil {
		s.collector.Updates.WithLabelValues(s.indexName).Inc()
	}
}

func (s *Stats) RecordFailure(code Code) {
	if s.collector != nil {
		s.collector.Failures.WithLabelValues(s.indexName, code.String()).Inc()
	}
}

func (s *Stats) Lookups() int64 { return s.lookups.Load() }
func (s *Stats) Inserts() int64 { return s.inserts.Load() }
func (s *Stats) Deletes() int64 { return s.deletes.Load() }
func (s *Stats) Updates() int64 { return s.updates.Load() }
func (s *Stats) NumberOfTuples() int64 { return s.tuples.Load() }
func (s *Stats) Dirty() bool { return s.dirty.Load() }

// ClearDirty lets the catalog layer acknowledge the dirty flag (e.g. after
// a checkpoint), without disturbing the counters.
func (s *Stats) ClearDirty() { s.dirty.Store(false) }
