package proc

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrProcessGone reports that a process exited between enumeration and the
// smaps read. Reading live process state is inherently racy; callers treat
// this as a zero contribution, not a failure.
var ErrProcessGone = errors.New("process no longer exists")

// RSSReader reads per-process resident memory from the proc filesystem.
// ProcPath is overridable so tests can run against a fixture tree.
type RSSReader struct {
	ProcPath string
}

// NewRSSReader returns a reader over the live /proc tree.
func NewRSSReader() *RSSReader {
	return &RSSReader{ProcPath: "/proc"}
}

// RSS returns the resident set size of pid in kibibytes, summed over every
// mapped region in its smaps file. Each region reports its own Rss line;
// the process total is the sum, not the last value.
func (r *RSSReader) RSS(pid int32) (uint64, error) {
	path := filepath.Join(r.ProcPath, strconv.Itoa(int(pid)), "smaps")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("pid %d: %w", pid, ErrProcessGone)
		}
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var total uint64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] != "Rss:" {
			continue
		}
		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		total += value
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	return total, nil
}
