// Package display holds the derived-unit formatting helpers consumed by
// presentation layers.
package display

import "fmt"

// 1024-based units. The reference display rounds against powers of two, so
// the formatter does too; the decimal variants exist for consumers that
// prefer 1000-based units.
const (
	binaryMegabyte = 1 << 20
	binaryGigabyte = 1 << 30

	decimalMegabyte = 1_000_000
	decimalGigabyte = 1_000_000_000
)

// FormatBytes renders a byte count with automatic unit selection: values
// below 1024 MB are shown in MB with one decimal, everything else in GB with
// one decimal. Units are 1024-based.
func FormatBytes(bytes uint64) string {
	if bytes < 1024*binaryMegabyte {
		return fmt.Sprintf("%.1f MB", float64(bytes)/binaryMegabyte)
	}
	return fmt.Sprintf("%.1f GB", float64(bytes)/binaryGigabyte)
}

// FormatBytesDecimal is FormatBytes with 1000-based units
func FormatBytesDecimal(bytes uint64) string {
	if bytes < 1000*decimalMegabyte {
		return fmt.Sprintf("%.1f MB", float64(bytes)/decimalMegabyte)
	}
	return fmt.Sprintf("%.1f GB", float64(bytes)/decimalGigabyte)
}

// FormatPercent renders a percentage with one decimal place
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
