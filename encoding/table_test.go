package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rlepack/format"
	"github.com/arloliu/rlepack/node"
)

func TestAppendRunNodesStandard(t *testing.T) {
	l := node.MustLayoutOf(format.FormatP8L8)
	nodes := AppendRunNodes(l, Run{Prefix: 4, Length: 50, Value: 0xFF}, nil)
	require.Len(t, nodes, 1)
	assert.Equal(t, node.Node{Prefix: 4, Length: 50, Value: 0xFF}, nodes[0])
}

func TestAppendRunNodesSignalLong(t *testing.T) {
	l := node.MustLayoutOf(format.FormatP8L8)
	nodes := AppendRunNodes(l, Run{Prefix: 0, Length: 1000, Value: 0x41}, nil)
	require.Len(t, nodes, 2)

	assert.Equal(t, node.RoleSignal, nodes[0].Role())
	assert.Equal(t, uint64(0), nodes[0].Prefix)
	assert.Equal(t, uint64(1000), l.LongLength(nodes[1]))
	assert.Equal(t, byte(0x41), nodes[1].Value)
}

func TestAppendRunNodesSkips(t *testing.T) {
	l := node.MustLayoutOf(format.FormatP8L8)
	nodes := AppendRunNodes(l, Run{Prefix: 300, Length: 100, Value: 7}, nil)
	require.Len(t, nodes, 2)

	assert.Equal(t, node.RoleSkip, nodes[0].Role())
	assert.Equal(t, uint64(300), l.SkipLength(nodes[0]))
	assert.Equal(t, node.Node{Prefix: 0, Length: 100, Value: 7}, nodes[1])
}

func TestAppendRunNodesPrefixCarriedOnce(t *testing.T) {
	// a run needing several signal+long pairs must place its prefix on the
	// first signal only; repeating it would shift every later byte
	l := node.MustLayoutOf(format.FormatP8L8)
	length := l.MaxLong()*2 + 100
	nodes := AppendRunNodes(l, Run{Prefix: 9, Length: length, Value: 0xCC}, nil)
	require.Len(t, nodes, 5) // signal, long, signal, long, standard

	assert.Equal(t, uint64(9), nodes[0].Prefix)
	assert.Equal(t, node.RoleSignal, nodes[0].Role())
	assert.Equal(t, uint64(0), nodes[2].Prefix)
	assert.Equal(t, node.RoleSignal, nodes[2].Role())
	assert.Equal(t, uint64(0), nodes[4].Prefix)

	covered := l.LongLength(nodes[1]) + l.LongLength(nodes[3]) + nodes[4].Length
	assert.Equal(t, length, covered)
}

func TestAppendRunNodesDegenerateResidualStillEmitted(t *testing.T) {
	// a residual shorter than the record size still needs a record: its
	// bytes would otherwise vanish from the position chain
	l := node.MustLayoutOf(format.FormatP16L16)
	nodes := AppendRunNodes(l, Run{Prefix: 0, Length: 4, Value: 1}, nil)
	require.Len(t, nodes, 1)
	assert.Equal(t, uint64(4), nodes[0].Length)
}

func TestBuildTableMatchesSerial(t *testing.T) {
	l := node.MustLayoutOf(format.FormatP8L16)

	runs := make([]Run, 0, 5000)
	for i := 0; i < 5000; i++ {
		runs = append(runs, Run{
			Prefix: uint64(i%7) * 123,
			Length: 4 + uint64(i%2000)*37,
			Value:  byte(i),
		})
	}

	parallel := BuildTable(l, runs)
	serial := buildBlock(l, runs)
	assert.Equal(t, serial, parallel)
}

func TestBuildTableOptions(t *testing.T) {
	l := node.MustLayoutOf(format.FormatP8L8)

	runs := make([]Run, 0, 1000)
	for i := 0; i < 1000; i++ {
		runs = append(runs, Run{Prefix: uint64(i % 5), Length: 4 + uint64(i%600), Value: byte(i)})
	}
	want := buildBlock(l, runs)

	// forced worker counts all preserve run order
	for _, workers := range []int{1, 2, 3, 7} {
		got := BuildTable(l, runs, WithWorkers(workers), WithMinRunsPerWorker(1))
		assert.Equal(t, want, got, "workers=%d", workers)
	}

	// a minimum block size larger than the run list forces the serial path
	got := BuildTable(l, runs, WithWorkers(8), WithMinRunsPerWorker(len(runs)+1))
	assert.Equal(t, want, got)

	// non-positive values are ignored, keeping the defaults
	got = BuildTable(l, runs, WithWorkers(0), WithMinRunsPerWorker(-1))
	assert.Equal(t, want, got)
}

func TestBuildTableSmallInputSerialPath(t *testing.T) {
	l := node.MustLayoutOf(format.FormatP8L8)
	runs := []Run{{Prefix: 1, Length: 10, Value: 2}}
	nodes := BuildTable(l, runs)
	require.Len(t, nodes, 1)
}

func TestBuildTableEmpty(t *testing.T) {
	l := node.MustLayoutOf(format.FormatP8L8)
	assert.Empty(t, BuildTable(l, nil))
}
