package domain

import "context"

// DiskSampler derives used/total/percentage for the volume hosting the root
// filesystem. One filesystem-attribute query per call; the scheduler bounds
// how often it runs.
type DiskSampler struct {
	source CounterSource
}

// NewDiskSampler creates a disk sampler reading from the given counter source
func NewDiskSampler(source CounterSource) *DiskSampler {
	return &DiskSampler{source: source}
}

// Sample returns the current root volume usage. If the counter query fails, a
// zeroed DiskUsage classified as normal is returned.
func (s *DiskSampler) Sample(ctx context.Context) DiskUsage {
	capacity, err := s.source.DiskCapacity(ctx)
	if err != nil {
		return DiskUsage{Level: DiskNormal}
	}

	// The platform can transiently report free > total
	var usedBytes uint64
	if capacity.FreeBytes < capacity.TotalBytes {
		usedBytes = capacity.TotalBytes - capacity.FreeBytes
	}

	var percentage float64
	if capacity.TotalBytes > 0 {
		percentage = clampPercent(100 * float64(usedBytes) / float64(capacity.TotalBytes))
	}

	return DiskUsage{
		UsedBytes:  usedBytes,
		TotalBytes: capacity.TotalBytes,
		Percentage: percentage,
		Level:      ClassifyDiskLevel(percentage),
	}
}
