package index

import (
	"sync"

	"github.com/crossdex/xword-lib/pkg/dictionary"
)

var (
	globalMu   sync.Mutex
	globalIdx  *WordIndex
	globalPath = dictionary.DefaultPath
)

// Default returns the process-wide index, building it from the master
// dictionary on first call. Subsequent calls return the same instance.
func Default() (*WordIndex, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalIdx != nil {
		return globalIdx, nil
	}
	ix := New()
	if err := ix.LoadFile(globalPath); err != nil {
		return nil, err
	}
	globalIdx = ix
	return globalIdx, nil
}

// SetDefaultPath overrides where Default finds the master dictionary. Takes
// effect on the next build, so call it before the first Default.
func SetDefaultPath(path string) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPath = path
}

// ClearDefault drops the shared instance so the next Default rebuilds it.
// Test use only; clearing while queries are in flight is undefined.
func ClearDefault() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalIdx = nil
}
