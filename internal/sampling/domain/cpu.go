package domain

import "context"

// CPUSampler computes system-wide processor utilization from tick deltas.
// It carries exactly one previous tick snapshot between calls; that state is
// owned exclusively by the sampler and must not be touched by two overlapping
// sampling rounds.
type CPUSampler struct {
	source   CounterSource
	previous *RawCPUTicks
}

// NewCPUSampler creates a CPU sampler reading from the given counter source
func NewCPUSampler(source CounterSource) *CPUSampler {
	return &CPUSampler{source: source}
}

// Sample returns the utilization percentage since the previous call, in
// [0, 100]. The first call has no valid delta and returns 0.0. If the counter
// query fails, it returns 0.0 and keeps the previous snapshot so the next
// attempt still has a baseline.
func (s *CPUSampler) Sample(ctx context.Context) float64 {
	current, err := s.source.CPUTicks(ctx)
	if err != nil {
		return 0.0
	}

	prev := s.previous
	s.previous = &current

	if prev == nil {
		return 0.0
	}

	userDelta := tickDelta(prev.User, current.User)
	systemDelta := tickDelta(prev.System, current.System)
	niceDelta := tickDelta(prev.Nice, current.Nice)
	idleDelta := tickDelta(prev.Idle, current.Idle)

	totalDelta := userDelta + systemDelta + niceDelta + idleDelta
	if totalDelta == 0 {
		// Sampled twice within the same tick granularity
		return 0.0
	}

	busyDelta := userDelta + systemDelta + niceDelta
	return clampPercent(100 * float64(busyDelta) / float64(totalDelta))
}

// tickDelta treats a negative delta (counter wraparound, CPU hot-plug) as zero
func tickDelta(prev, current uint64) uint64 {
	if current < prev {
		return 0
	}
	return current - prev
}
