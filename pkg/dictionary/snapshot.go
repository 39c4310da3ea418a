package dictionary

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// snapshotVersion guards against decoding snapshots written by an
// incompatible release.
const snapshotVersion = 1

// Snapshot is the binary on-disk form of a loaded dictionary. It carries the
// same entries as the text format, msgpack-encoded, and exists only to skip
// text parsing on cold start.
type Snapshot struct {
	Version int     `msgpack:"v"`
	Entries []Entry `msgpack:"e"`
}

// WriteSnapshot writes entries as a msgpack snapshot at path.
func WriteSnapshot(path string, entries []Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot %s: %w", path, err)
	}
	defer file.Close()

	snap := Snapshot{Version: snapshotVersion, Entries: entries}
	if err := msgpack.NewEncoder(file).Encode(&snap); err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", path, err)
	}
	log.Debugf("Snapshot written: %s (%d entries)", path, len(entries))
	return nil
}

// ReadSnapshot reads a msgpack snapshot back into entries. The same error
// taxonomy as ReadFile applies: missing file is ErrNotFound, anything else
// on the read path is ErrIO.
func ReadSnapshot(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	defer file.Close()

	var snap Snapshot
	if err := msgpack.NewDecoder(file).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: %s: unsupported snapshot version %d", ErrIO, path, snap.Version)
	}
	return snap.Entries, nil
}
