// Package bloom provides duplicate body detection using Bloom filters.
package bloom

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
)

// Filter remembers fingerprints of book bodies seen during a run.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected bodies
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

func key(text string) []byte {
	return binary.BigEndian.AppendUint64(nil, xxhash.Sum64String(text))
}

// Seen adds a body to the filter and reports whether it might have been
// added before.
func (f *Filter) Seen(text string) bool {
	return f.f.TestAndAdd(key(text))
}

// EstimatedCount returns the approximate number of distinct bodies in the
// filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
