package random

import (
	"encoding/binary"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ReadSeed reads a fixed-width (8 byte) seed from the named file.
// The expected source is a system randomness device such as /dev/urandom,
// which does not block on read, but any readable file works.
func ReadSeed(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open seed source")
	}
	defer f.Close() //nolint:errcheck // read-only descriptor

	var seed int64
	if err := binary.Read(f, binary.LittleEndian, &seed); err != nil {
		return 0, errors.Wrapf(err, "read seed from %s", path)
	}

	return seed, nil
}

// TimeSeed returns the current wall-clock time as a seed. It is the
// fallback when the seed source cannot be read; callers must warn the
// user about it, since system time is predictable.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}
