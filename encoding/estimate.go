package encoding

import (
	"sync"

	"github.com/arloliu/rlepack/format"
	"github.com/arloliu/rlepack/node"
)

// RunEfficiency computes, without materializing records, the number of bytes
// the given layout would save on a single run: the run bytes the encoding
// compresses away minus the byte cost of the records it emits. Verbatim
// prefix bytes are carried in the stream either way and contribute nothing.
//
// The decomposition mirrors the table builder exactly; TestEstimatorAgreement
// holds the two to byte equality.
func RunEfficiency(l node.Layout, r Run) int64 {
	recordSize := uint64(l.Size())
	records := uint64(0)
	absorbed := uint64(0)

	// skip records for an oversized gap
	if prefixMax := l.PrefixMax(); r.Prefix > prefixMax {
		maxSkip := l.MaxSkip()
		records += r.Prefix / maxSkip
		if r.Prefix%maxSkip > prefixMax {
			records++
		}
	}

	// signal+long pairs for an oversized length
	length := r.Length
	if lengthMax := l.LengthMax(); length > lengthMax {
		maxLong := l.MaxLong()
		fullPairs := length / maxLong
		records += fullPairs * 2
		length -= fullPairs * maxLong
		absorbed += fullPairs * maxLong
		if length > lengthMax {
			records += 2
			absorbed += length
			length = 0
		}
	}

	// trailing standard record for whatever length remains
	if length > 0 {
		records++
		absorbed += length
	}

	return int64(absorbed) - int64(records*recordSize)
}

// FormatEfficiency sums RunEfficiency over the run list: the total predicted
// saving of encoding runs with the given layout.
func FormatEfficiency(l node.Layout, runs []Run) int64 {
	total := int64(0)
	for i := range runs {
		total += RunEfficiency(l, runs[i])
	}

	return total
}

// SelectFormat computes the predicted saving for each of the four node
// formats concurrently and returns the format with the greatest strictly
// positive saving, plus that saving.
//
// Ties on equal positive savings break toward the smaller record size, in
// the canonical format.Formats() order, so selection is deterministic.
// When no format saves bytes it returns format.FormatInefficient and 0.
func SelectFormat(runs []Run) (format.NodeFormat, int64) {
	formats := format.Formats()

	var savings [4]int64
	var wg sync.WaitGroup
	wg.Add(len(formats))
	for i, f := range formats {
		go func() {
			defer wg.Done()
			savings[i] = FormatEfficiency(node.MustLayoutOf(f), runs)
		}()
	}
	wg.Wait()

	best := format.FormatInefficient
	bestSaving := int64(0)
	for i, f := range formats {
		if savings[i] > bestSaving {
			best = f
			bestSaving = savings[i]
		}
	}

	return best, bestSaving
}
