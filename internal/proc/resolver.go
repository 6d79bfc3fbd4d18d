package proc

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Resolver maps a program name to the PIDs of its running instances. An
// empty result with a nil error means no such program is running.
type Resolver interface {
	Resolve(name string) ([]int32, error)
}

// NewResolver returns the pidof-backed resolver when the pidof binary is
// installed, and falls back to scanning the process table otherwise.
func NewResolver() Resolver {
	if _, err := exec.LookPath("pidof"); err == nil {
		return PidofResolver{}
	}
	return TableResolver{}
}

// PidofResolver resolves program names by invoking the pidof utility.
type PidofResolver struct{}

func (PidofResolver) Resolve(name string) ([]int32, error) {
	out, err := exec.Command("pidof", name).Output()
	if err != nil {
		// pidof exits 1 with no output when nothing matched.
		if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 && len(out) == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("pidof %s: %w", name, err)
	}
	return parsePids(string(out))
}

func parsePids(out string) ([]int32, error) {
	fields := strings.Fields(out)
	pids := make([]int32, 0, len(fields))
	for _, f := range fields {
		pid, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("unexpected pid %q in lookup output: %w", f, err)
		}
		pids = append(pids, int32(pid))
	}
	return pids, nil
}

// TableResolver resolves program names by walking the live process table.
type TableResolver struct{}

func (TableResolver) Resolve(name string) ([]int32, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var pids []int32
	for _, p := range procs {
		// A process can exit mid-scan; skip the ones we can no longer name.
		pname, err := p.Name()
		if err != nil {
			continue
		}
		if pname == name {
			pids = append(pids, p.Pid)
		}
	}
	return pids, nil
}
