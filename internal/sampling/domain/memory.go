package domain

import "context"

// MemorySampler derives an "actively used" memory reading from raw page
// counts. Used memory counts active, wired and compressed pages; inactive,
// free and speculative pages are reclaimable and deliberately excluded.
// The formula tracks the host OS activity monitor's accounting.
type MemorySampler struct {
	source CounterSource

	// Total physical memory does not change at runtime, query it once
	totalBytes uint64
}

// NewMemorySampler creates a memory sampler reading from the given counter
// source
func NewMemorySampler(source CounterSource) *MemorySampler {
	return &MemorySampler{source: source}
}

// Sample returns the current memory usage. If the counter query fails, a
// zeroed MemoryUsage is returned; repeated exact zeros signal a broken
// platform query path.
func (s *MemorySampler) Sample(ctx context.Context) MemoryUsage {
	counters, err := s.source.MemoryCounters(ctx)
	if err != nil {
		return MemoryUsage{}
	}

	if s.totalBytes == 0 {
		s.totalBytes = counters.TotalBytes
	}

	usedPages := counters.Active + counters.Wired + counters.Compressed
	usedBytes := usedPages * counters.PageSize

	var percentage float64
	if s.totalBytes > 0 {
		percentage = clampPercent(100 * float64(usedBytes) / float64(s.totalBytes))
	}

	return MemoryUsage{
		UsedBytes:  usedBytes,
		TotalBytes: s.totalBytes,
		Percentage: percentage,
	}
}
