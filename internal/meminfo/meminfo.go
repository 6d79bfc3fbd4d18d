package meminfo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const procMemInfo = "/proc/meminfo"

// Snapshot holds the system-wide memory figures for a single run, in
// kibibytes as reported by the kernel.
type Snapshot struct {
	TotalKiB     uint64
	AvailableKiB uint64
}

// UsedKiB returns the amount of memory currently in use.
func (s Snapshot) UsedKiB() uint64 {
	if s.AvailableKiB > s.TotalKiB {
		return 0
	}
	return s.TotalKiB - s.AvailableKiB
}

// UsedFraction returns used/total. It can exceed 1.0 when the source data
// is inconsistent; callers render it, they do not trust it.
func (s Snapshot) UsedFraction() float64 {
	return float64(s.UsedKiB()) / float64(s.TotalKiB)
}

// Read retrieves the current memory snapshot from /proc/meminfo. Failure to
// open the file is the one unrecoverable condition in the program.
func Read() (Snapshot, error) {
	f, err := os.Open(procMemInfo)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read %s: %w", procMemInfo, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse extracts a Snapshot from meminfo-format text: one field per line,
// `Name:  <value> kB`. Lines that do not match are skipped. If MemAvailable
// is absent or zero (seen on some virtualization layers), availability falls
// back to MemFree+SwapFree.
func Parse(r io.Reader) (Snapshot, error) {
	var total, free, swapFree, available uint64
	var seen int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() && seen < 4 {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch strings.TrimSuffix(fields[0], ":") {
		case "MemTotal":
			total = value
		case "MemFree":
			free = value
		case "SwapFree":
			swapFree = value
		case "MemAvailable":
			available = value
		default:
			continue
		}
		seen++
	}
	if err := scanner.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("failed to scan meminfo: %w", err)
	}

	if total == 0 {
		return Snapshot{}, errors.New("meminfo is missing the MemTotal field")
	}
	if available == 0 {
		available = free + swapFree
	}

	return Snapshot{TotalKiB: total, AvailableKiB: available}, nil
}
