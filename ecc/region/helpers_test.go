package region

import (
	"math/rand/v2"
	"testing"

	"github.com/joshuapare/ecckit/ecc"
	"github.com/joshuapare/ecckit/ecc/codeword"
	"github.com/stretchr/testify/require"
)

// newTestRegion builds a region that is closed when the test ends.
func newTestRegion(t *testing.T, cfg Config) *Region {
	t.Helper()
	r, err := New(cfg)
	require.NoError(t, err, "New should not error")
	t.Cleanup(func() { _ = r.Close() })
	return r
}

// recordingConfig returns DefaultConfig in the given mode with a Recorder.
func recordingConfig(mode ecc.Mode) (Config, *Recorder) {
	rec := &Recorder{}
	cfg := DefaultConfig()
	cfg.Mode = mode
	cfg.Observer = rec
	return cfg, rec
}

func randomPayload(rng *rand.Rand, n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(rng.Uint32())
	}
	return p
}

// flipBit toggles region-relative bit i of the window starting at off.
func flipBit(t *testing.T, r *Region, off, i int) {
	t.Helper()
	require.NoError(t, r.InjectFault(off+i/8, 1<<(i%8)))
}

// covered reports whether region-relative bit i belongs to a group.
func covered(i int) bool {
	return i%codeword.Period < codeword.GroupBits
}
