// Package factory implements spec.md §4.4's index factory: it consumes an
// *index.Metadata and returns a concrete index.Index. Grounded on
// _examples/other_examples/Kirov7-CouloyDB__memIndex.go's NewIndexer
// switch-on-type-tag constructor, extended with the uniqueness branch
// spec.md §9 calls for ("two concrete implementations of the same
// operation set selected by the factory") on top of the method tag.
package factory

import (
	"secidx/pkg/index"
	"secidx/pkg/index/ordered"
	"secidx/pkg/logging"
	"secidx/pkg/metrics"
)

// New selects and constructs an index.Index for metadata. Only
// index.MethodBTree is implemented; every other method tag is a
// recognised-but-unimplemented selector per spec.md §3's "selector only"
// note, and returns index.ErrUnsupportedMethod. collector may be nil to
// opt the index out of Prometheus instrumentation.
func New(metadata *index.Metadata, collector *metrics.Collector) (index.Index, error) {
	log := logging.WithComponent("index-factory")

	switch metadata.Method {
	case index.MethodBTree:
		variant := "multi-map"
		if metadata.UniqueKeys {
			variant = "unique"
		}
		log.Info("building ordered index", "name", metadata.Name, "variant", variant, "ints_only", metadata.IntsOnly)
		if metadata.UniqueKeys {
			return ordered.NewUnique(metadata, collector), nil
		}
		return ordered.NewMultiMap(metadata, collector), nil
	default:
		log.Warn("unsupported index method", "name", metadata.Name, "method", metadata.Method)
		return nil, index.ErrUnsupportedMethod
	}
}
