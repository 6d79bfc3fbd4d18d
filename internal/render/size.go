package render

import "fmt"

var units = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// HumanSize formats a byte count with two decimal places and the largest
// binary unit that keeps the value below 1024. Values past TiB stay in TiB.
func HumanSize(bytes float64) string {
	value := bytes
	for _, unit := range units[:len(units)-1] {
		if value < 1024 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.2f %s", value, units[len(units)-1])
}

// KiB formats a kibibyte count in the raw form used when human-readable
// output is off.
func KiB(kib uint64) string {
	return fmt.Sprintf("%d KiB", kib)
}

// SizeFormatter renders a kibibyte count as a display string.
type SizeFormatter func(kib uint64) string

// NewSizeFormatter picks the size rendering for a report. Human-readable
// mode converts to bytes first, matching how the kernel figures are scaled.
func NewSizeFormatter(humanReadable bool) SizeFormatter {
	if humanReadable {
		return func(kib uint64) string {
			return HumanSize(float64(kib) * 1024)
		}
	}
	return KiB
}
