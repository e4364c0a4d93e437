package domain

import "time"

// MemoryUsage is the derived memory reading for one sampling round
type MemoryUsage struct {
	UsedBytes  uint64
	TotalBytes uint64
	Percentage float64
}

// DiskLevel classifies a disk usage percentage for the presentation layer
type DiskLevel string

const (
	DiskNormal   DiskLevel = "normal"
	DiskWarning  DiskLevel = "warning"
	DiskCritical DiskLevel = "critical"
)

// DiskUsage is the derived reading for the root volume
type DiskUsage struct {
	UsedBytes  uint64
	TotalBytes uint64
	Percentage float64
	Level      DiskLevel
}

// SystemStats is one immutable, fully-populated snapshot of one sampling
// round. It is the sole externally observable output of the sampling core.
// Tick increases strictly with every published snapshot.
type SystemStats struct {
	Tick          uint64
	Timestamp     time.Time
	CPUPercentage float64
	Memory        MemoryUsage
	Disk          DiskUsage
}

// ClassifyDiskLevel maps a usage percentage onto a disk level. Exactly 80 is
// a warning, exactly 90 is critical.
func ClassifyDiskLevel(percentage float64) DiskLevel {
	switch {
	case percentage >= 90:
		return DiskCritical
	case percentage >= 80:
		return DiskWarning
	default:
		return DiskNormal
	}
}

// clampPercent bounds a percentage to [0, 100]
func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
