package domain

import (
	"context"
	"errors"
	"testing"
)

func TestDiskSampler_Sample(t *testing.T) {
	tests := []struct {
		name      string
		capacity  DiskCapacity
		wantUsed  uint64
		wantPct   float64
		wantLevel DiskLevel
	}{
		{
			name:      "eighty percent used is a warning",
			capacity:  DiskCapacity{TotalBytes: 1_000_000_000, FreeBytes: 200_000_000},
			wantUsed:  800_000_000,
			wantPct:   80.0,
			wantLevel: DiskWarning,
		},
		{
			name:      "below eighty is normal",
			capacity:  DiskCapacity{TotalBytes: 1_000_000_000, FreeBytes: 500_000_000},
			wantUsed:  500_000_000,
			wantPct:   50.0,
			wantLevel: DiskNormal,
		},
		{
			name:      "ninety percent used is critical",
			capacity:  DiskCapacity{TotalBytes: 1_000_000_000, FreeBytes: 100_000_000},
			wantUsed:  900_000_000,
			wantPct:   90.0,
			wantLevel: DiskCritical,
		},
		{
			name:      "free above total clamps used to zero",
			capacity:  DiskCapacity{TotalBytes: 1_000_000_000, FreeBytes: 1_100_000_000},
			wantUsed:  0,
			wantPct:   0.0,
			wantLevel: DiskNormal,
		},
		{
			name:      "zero total avoids division by zero",
			capacity:  DiskCapacity{},
			wantUsed:  0,
			wantPct:   0.0,
			wantLevel: DiskNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakeCounterSource{disk: tt.capacity}
			sampler := NewDiskSampler(source)

			got := sampler.Sample(context.Background())
			if got.UsedBytes != tt.wantUsed {
				t.Errorf("UsedBytes = %d, want %d", got.UsedBytes, tt.wantUsed)
			}
			if got.Percentage != tt.wantPct {
				t.Errorf("Percentage = %v, want %v", got.Percentage, tt.wantPct)
			}
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", got.Level, tt.wantLevel)
			}
		})
	}
}

func TestDiskSampler_QueryFailureReturnsZeroed(t *testing.T) {
	source := &fakeCounterSource{diskErr: errors.New("statfs failed")}
	sampler := NewDiskSampler(source)

	got := sampler.Sample(context.Background())
	if got.UsedBytes != 0 || got.TotalBytes != 0 || got.Percentage != 0.0 {
		t.Errorf("Sample() on query failure = %+v, want zeroed DiskUsage", got)
	}
	if got.Level != DiskNormal {
		t.Errorf("Level on query failure = %q, want %q", got.Level, DiskNormal)
	}
}

func TestClassifyDiskLevel_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want DiskLevel
	}{
		{0, DiskNormal},
		{79.99, DiskNormal},
		{80, DiskWarning},
		{89.99, DiskWarning},
		{90, DiskCritical},
		{100, DiskCritical},
	}

	for _, tt := range tests {
		if got := ClassifyDiskLevel(tt.pct); got != tt.want {
			t.Errorf("ClassifyDiskLevel(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}
