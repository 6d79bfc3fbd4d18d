package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"memviz/internal/meminfo"
	"memviz/internal/proc"
	"memviz/internal/render"
)

// Options is the flag surface of a single report run.
type Options struct {
	// Program restricts the report to one program's processes. Empty means
	// the system-wide report.
	Program string

	// HumanReadable renders sizes with binary unit suffixes instead of raw
	// kibibytes.
	HumanReadable bool

	// BarLength is the bar width in characters.
	BarLength int
}

// ProcessMemory reads one process's resident memory in kibibytes.
type ProcessMemory interface {
	RSS(pid int32) (uint64, error)
}

// Reporter assembles and prints a memory usage report. All collaborators
// that touch live OS state sit behind interfaces or function fields so the
// report logic runs against synthetic inputs in tests.
type Reporter struct {
	ReadMemInfo func() (meminfo.Snapshot, error)
	Resolver    proc.Resolver
	Memory      ProcessMemory
	Out         io.Writer
	Styles      render.Styles
	Log         logrus.FieldLogger
}

// New returns a Reporter wired to the live system.
func New(out io.Writer) *Reporter {
	return &Reporter{
		ReadMemInfo: meminfo.Read,
		Resolver:    proc.NewResolver(),
		Memory:      proc.NewRSSReader(),
		Out:         out,
		Styles:      render.DefaultStyles(),
		Log:         logrus.StandardLogger(),
	}
}

// Run prints one report and returns. The only error it surfaces is the
// unrecoverable one: the system memory snapshot could not be computed.
func (r *Reporter) Run(opts Options) error {
	snapshot, err := r.ReadMemInfo()
	if err != nil {
		return err
	}

	size := render.NewSizeFormatter(opts.HumanReadable)

	if opts.Program == "" {
		r.printSystem(snapshot, size, opts.BarLength)
		return nil
	}
	r.printProgram(opts.Program, snapshot, size, opts.BarLength)
	return nil
}

func (r *Reporter) printSystem(snapshot meminfo.Snapshot, size render.SizeFormatter, barLength int) {
	used := snapshot.UsedFraction()
	fmt.Fprintf(r.Out, "%s [%s | %.0f%%] %s/%s\n",
		r.Styles.Label.Render(fmt.Sprintf("%-12s", "Memory")),
		r.Styles.Bar.Render(render.Bar(used, barLength)),
		used*100,
		size(snapshot.UsedKiB()),
		size(snapshot.TotalKiB))
}

func (r *Reporter) printProgram(program string, snapshot meminfo.Snapshot, size render.SizeFormatter, barLength int) {
	pids, err := r.Resolver.Resolve(program)
	if err != nil {
		r.Log.Warnf("failed to look up processes for %s: %v", program, err)
	}
	if len(pids) == 0 {
		fmt.Fprintf(r.Out, "%s not found.\n", program)
		return
	}

	perPid := make([]uint64, len(pids))
	var totalRss uint64
	for i, pid := range pids {
		rss, err := r.Memory.RSS(pid)
		if err != nil {
			if errors.Is(err, proc.ErrProcessGone) {
				r.Log.Warnf("process %d not found", pid)
			} else {
				r.Log.Warnf("failed to read memory of process %d: %v", pid, err)
			}
			continue
		}
		perPid[i] = rss
		totalRss += rss
	}

	r.printLine(program, totalRss, snapshot.TotalKiB, size, barLength)
	for i, pid := range pids {
		r.printLine(fmt.Sprintf("%d", pid), perPid[i], snapshot.TotalKiB, size, barLength)
	}
}

func (r *Reporter) printLine(label string, rssKiB, totalKiB uint64, size render.SizeFormatter, barLength int) {
	share := float64(rssKiB) / float64(totalKiB)
	fmt.Fprintf(r.Out, "%s [%s] %s/%s\n",
		r.Styles.Label.Render(fmt.Sprintf("%-12s", label)),
		r.Styles.Bar.Render(render.Bar(share, barLength)),
		size(rssKiB),
		size(totalKiB))
}
