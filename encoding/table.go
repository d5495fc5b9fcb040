package encoding

import (
	"runtime"
	"sync"

	"github.com/arloliu/rlepack/internal/pool"
	"github.com/arloliu/rlepack/node"
)

// MinRunsPerWorker is the default smallest contiguous run block handed to a
// builder worker. Below this the goroutine overhead outweighs the work.
const MinRunsPerWorker = 256

// buildConfig holds the table builder knobs.
type buildConfig struct {
	workers          int
	minRunsPerWorker int
}

// BuildOption configures the table builder.
type BuildOption func(*buildConfig)

// WithWorkers overrides the number of builder workers. The default is
// runtime.GOMAXPROCS(0). Non-positive values are ignored.
func WithWorkers(n int) BuildOption {
	return func(cfg *buildConfig) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithMinRunsPerWorker overrides the smallest run block a worker may
// receive. The default is MinRunsPerWorker. Non-positive values are ignored.
func WithMinRunsPerWorker(n int) BuildOption {
	return func(cfg *buildConfig) {
		if n > 0 {
			cfg.minRunsPerWorker = n
		}
	}
}

// AppendRunNodes appends the record sequence for a single run: zero or more
// Skip records, then Signal+Long pairs while the residual length overflows
// the length field, then a trailing Standard for the residual.
//
// The run's residual prefix is carried by the first record that can hold it:
// the first Signal when pairs are emitted, otherwise the Standard. Later
// Signals carry prefix 0, so a run longer than one Signal+Long pair still
// reconstructs at its original position.
func AppendRunNodes(l node.Layout, r Run, nodes []node.Node) []node.Node {
	prefix := r.Prefix
	for prefix > l.PrefixMax() {
		n, consumed := l.Skip(prefix)
		nodes = append(nodes, n)
		prefix -= consumed
	}

	length := r.Length
	for length > l.LengthMax() {
		nodes = append(nodes, l.Signal(prefix))
		prefix = 0
		n, consumed := l.Long(length, r.Value)
		nodes = append(nodes, n)
		length -= consumed
	}

	if length > 0 {
		nodes = append(nodes, l.Standard(prefix, length, r.Value))
	}

	return nodes
}

// buildBlock materializes the records for a contiguous run slice.
func buildBlock(l node.Layout, runs []Run) []node.Node {
	nodes := make([]node.Node, 0, len(runs))
	for i := range runs {
		nodes = AppendRunNodes(l, runs[i], nodes)
	}

	return nodes
}

// BuildTable materializes the full node table for the chosen layout.
//
// The run list is partitioned into contiguous blocks, one worker per block,
// and the per-block outputs are concatenated in partition order. Record
// generation depends only on per-run data, so workers share nothing and the
// concatenation preserves total run order. Workers accumulate into pooled
// buffers that are recycled once the coordinator has copied them out.
func BuildTable(l node.Layout, runs []Run, opts ...BuildOption) []node.Node {
	cfg := buildConfig{
		workers:          runtime.GOMAXPROCS(0),
		minRunsPerWorker: MinRunsPerWorker,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	workers := cfg.workers
	if limit := len(runs) / cfg.minRunsPerWorker; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		return buildBlock(l, runs)
	}

	blockSize := len(runs) / workers
	bufs := make([]*pool.NodeBuffer, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		lo := w * blockSize
		hi := lo + blockSize
		if w == workers-1 {
			hi = len(runs)
		}
		go func(w int, block []Run) {
			defer wg.Done()
			buf := pool.GetTableBuffer()
			for i := range block {
				buf.N = AppendRunNodes(l, block[i], buf.N)
			}
			bufs[w] = buf
		}(w, runs[lo:hi])
	}
	wg.Wait()

	total := 0
	for _, b := range bufs {
		total += b.Len()
	}
	nodes := make([]node.Node, 0, total)
	for _, b := range bufs {
		nodes = append(nodes, b.N...)
		pool.PutTableBuffer(b)
	}

	return nodes
}

// MeasureEfficiency walks a materialized table and computes the saving it
// realizes: the run bytes its records absorb minus the table's byte size.
// It is the ground truth the analytic estimator must agree with.
func MeasureEfficiency(l node.Layout, nodes []node.Node) int64 {
	absorbed := int64(0)

	expectLong := false
	for _, n := range nodes {
		if expectLong {
			absorbed += int64(l.LongLength(n))
			expectLong = false
			continue
		}

		expectLong = n.Role() == node.RoleSignal
		absorbed += int64(n.Length)
	}

	return absorbed - int64(len(nodes)*l.Size())
}
