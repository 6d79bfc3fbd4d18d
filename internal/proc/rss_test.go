package proc

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSmaps(t *testing.T, procPath string, pid int32, content string) {
	t.Helper()
	dir := filepath.Join(procPath, strconv.Itoa(int(pid)))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "smaps"), []byte(content), 0o644))
}

func TestRSSSumsAllRegions(t *testing.T) {
	rdr := &RSSReader{ProcPath: t.TempDir()}
	writeSmaps(t, rdr.ProcPath, 1234, `00400000-00452000 r-xp 00000000 08:02 173521 /usr/bin/a
Size:                328 kB
Rss:                 100 kB
Pss:                  60 kB
7f6ee0000000-7f6ee0021000 rw-p 00000000 00:00 0
Size:                132 kB
Rss:                 250 kB
Pss:                 250 kB
`)

	rss, err := rdr.RSS(1234)
	require.NoError(t, err)
	assert.Equal(t, uint64(350), rss)
}

func TestRSSProcessGone(t *testing.T) {
	rdr := &RSSReader{ProcPath: t.TempDir()}

	rss, err := rdr.RSS(4321)
	require.ErrorIs(t, err, ErrProcessGone)
	assert.Zero(t, rss)
}

func TestRSSEmptySmaps(t *testing.T) {
	// A process with no mapped regions reports nothing to sum.
	rdr := &RSSReader{ProcPath: t.TempDir()}
	writeSmaps(t, rdr.ProcPath, 99, "")

	rss, err := rdr.RSS(99)
	require.NoError(t, err)
	assert.Zero(t, rss)
}
