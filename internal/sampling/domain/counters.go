package domain

import "context"

// RawCPUTicks holds cumulative per-state processor tick counts summed across
// all logical CPUs, captured at one instant. A tick is one unit of accumulated
// processor time as reported by the OS since boot.
type RawCPUTicks struct {
	User   uint64
	System uint64
	Nice   uint64
	Idle   uint64
}

// Total returns the sum of all tick states
func (t RawCPUTicks) Total() uint64 {
	return t.User + t.System + t.Nice + t.Idle
}

// MemoryCounters holds raw virtual-memory page counts plus the page size and
// the total amount of physical memory. Page classifications the host OS does
// not expose read as zero.
type MemoryCounters struct {
	Free        uint64
	Active      uint64
	Inactive    uint64
	Wired       uint64
	Compressed  uint64
	Speculative uint64

	PageSize   uint64
	TotalBytes uint64
}

// DiskCapacity holds raw capacity counters for the volume hosting the root
// filesystem
type DiskCapacity struct {
	TotalBytes uint64
	FreeBytes  uint64
}

// CounterSource defines the interface for reading raw OS counters
// This interface abstracts platform-level queries from the domain layer
type CounterSource interface {
	// CPUTicks returns cumulative per-state tick counts summed over all
	// logical processors
	CPUTicks(ctx context.Context) (RawCPUTicks, error)
	// MemoryCounters returns current page counts, the page size and total
	// physical memory
	MemoryCounters(ctx context.Context) (MemoryCounters, error)
	// DiskCapacity returns total and free bytes for the root volume
	DiskCapacity(ctx context.Context) (DiskCapacity, error)
}
