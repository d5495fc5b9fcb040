// Package pool provides reusable per-worker record buffers for the parallel
// table builder.
package pool

import (
	"sync"

	"github.com/arloliu/rlepack/node"
)

const (
	// TableBufferDefaultSize is the initial record capacity of a pooled buffer.
	TableBufferDefaultSize = 1024
	// TableBufferMaxThreshold caps the record capacity a buffer may keep when
	// returned to the pool; larger buffers are discarded.
	TableBufferMaxThreshold = 64 * 1024
)

// NodeBuffer accumulates packed records for one builder worker. Workers
// append to N directly; the coordinator copies the records out and returns
// the buffer to the pool.
type NodeBuffer struct {
	// N is the underlying record slice.
	N []node.Node
}

// NewNodeBuffer creates a new NodeBuffer with the specified record capacity.
func NewNodeBuffer(defaultSize int) *NodeBuffer {
	return &NodeBuffer{
		N: make([]node.Node, 0, defaultSize),
	}
}

// Nodes returns the accumulated records.
func (nb *NodeBuffer) Nodes() []node.Node {
	return nb.N
}

// Len returns the number of accumulated records.
func (nb *NodeBuffer) Len() int {
	return len(nb.N)
}

// Reset empties the buffer but retains its capacity for reuse.
func (nb *NodeBuffer) Reset() {
	nb.N = nb.N[:0]
}

// NodeBufferPool is a pool of NodeBuffers to minimize allocations across
// table builds.
//
// It uses sync.Pool internally. A maximum capacity threshold avoids
// retaining overly large buffers that would lead to memory bloat.
type NodeBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewNodeBufferPool creates a pool handing out buffers of the specified
// default capacity and discarding returned buffers above maxThreshold.
func NewNodeBufferPool(defaultSize int, maxThreshold int) *NodeBufferPool {
	return &NodeBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewNodeBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a NodeBuffer from the pool.
func (p *NodeBufferPool) Get() *NodeBuffer {
	nb, _ := p.pool.Get().(*NodeBuffer)
	return nb
}

// Put returns a NodeBuffer to the pool for reuse.
func (p *NodeBufferPool) Put(nb *NodeBuffer) {
	if nb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(nb.N) > p.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	nb.Reset()
	p.pool.Put(nb)
}

var tableDefaultPool = NewNodeBufferPool(TableBufferDefaultSize, TableBufferMaxThreshold)

// GetTableBuffer retrieves a NodeBuffer from the default table pool.
func GetTableBuffer() *NodeBuffer {
	return tableDefaultPool.Get()
}

// PutTableBuffer returns a NodeBuffer to the default table pool.
func PutTableBuffer(nb *NodeBuffer) {
	tableDefaultPool.Put(nb)
}
