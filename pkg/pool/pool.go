// Package pool implements the variable-length payload allocator described
// in spec.md §6/§9: a scoped allocator with Allocate(size) and ReleaseAll,
// used by the predicate engine to build self-contained search keys and by
// callers that want their varlen field payloads to share one lifetime.
//
// This is a deliberately trimmed cousin of the chunked arena in
// _examples/hupe1980-vecgo/internal/arena/arena.go: same chunk-based bump
// allocation strategy, but with the unsafe-pointer slice aliasing, off-heap
// mmap backing, lock-free CAS fast path, generation-tagged stale-reference
// detection, and external MemoryAcquirer hook all removed. Those exist in
// the teacher to keep an HNSW graph builder's allocator off the GC heap and
// safely shared across concurrent graph construction; this pool only ever
// backs small, short-lived search keys and string payloads, so a single
// mutex and plain heap-backed []byte chunks are the right size for the job.
package pool

import "sync"

// DefaultChunkSize matches the teacher arena's default; it comfortably fits
// many typical varchar key columns per chunk without over-allocating for
// small point-lookup keys.
const DefaultChunkSize = 4096

// Option configures a Pool at construction time.
type Option func(*Pool)

// WithChunkSize overrides DefaultChunkSize.
func WithChunkSize(size int) Option {
	return func(p *Pool) {
		if size > 0 {
			p.chunkSize = size
		}
	}
}

// Pool is a scoped byte allocator. It is safe for concurrent Allocate calls;
// ReleaseAll must not race with an in-flight Allocate (the same contract the
// teacher arena documents for Reset/Free versus AllocBytes).
type Pool struct {
	mu        sync.Mutex
	chunkSize int
	chunks    [][]byte
	cur       []byte
	allocated int
}

// New creates a Pool ready to allocate.
func New(opts ...Option) *Pool {
	p := &Pool{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Allocate returns a zeroed byte slice of the requested size, backed by
// this pool's current chunk. The returned slice remains valid until the
// next ReleaseAll.
func (p *Pool) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.cur) < size {
		chunkSize := p.chunkSize
		if size > chunkSize {
			chunkSize = size
		}
		p.cur = make([]byte, chunkSize)
		p.chunks = append(p.chunks, p.cur)
	}

	handle := p.cur[:size:size]
	p.cur = p.cur[size:]
	p.allocated += size
	return handle
}

// AllocateString copies s into a freshly allocated handle (counted in
// Allocated) and returns a Go string copied from that handle; the returned
// string does not alias pool memory and stays valid after ReleaseAll. Used
// to materialize varchar key columns (min-value padding, search-key
// construction) without keeping the caller's original backing array alive.
func (p *Pool) AllocateString(s string) string {
	if s == "" {
		return ""
	}
	buf := p.Allocate(len(s))
	copy(buf, s)
	return string(buf)
}

// ReleaseAll discards every chunk this pool owns. Must not be called
// concurrently with Allocate; callers own the scoping (typically: one pool
// per index, released when the index is dropped).
func (p *Pool) ReleaseAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chunks = nil
	p.cur = nil
	p.allocated = 0
}

// Allocated reports the number of bytes handed out since the last
// ReleaseAll, for diagnostics.
func (p *Pool) Allocated() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.allocated
}
