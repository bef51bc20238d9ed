package atom

import (
	"encoding/binary"
	"io"
)

// EpochOffset is the number of seconds between the QuickTime epoch
// (1904-01-01 00:00:00 UTC) and the Unix epoch.
const EpochOffset = 2082844800

// Times holds a creation/modification pair in seconds since the Unix
// epoch. The zero value means the timestamps were not found.
type Times struct {
	Creation     int64
	Modification int64
}

// IsZero reports whether t carries no timestamps.
func (t Times) IsZero() bool {
	return t == Times{}
}

// ReadTimes decodes the creation and modification fields of a header
// sub-atom. The stream must be positioned where Find left it: 4 bytes
// (version and flags) ahead of the creation field. Both raw values are
// big-endian unsigned 32-bit seconds since the QuickTime epoch; the
// conversion is done in int64 so pre-1970 times come out negative rather
// than wrapping. A short read reports not found.
func ReadTimes(r io.Reader) (Times, bool) {
	var buf [12]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Times{}, false
	}
	return Times{
		Creation:     int64(binary.BigEndian.Uint32(buf[4:8])) - EpochOffset,
		Modification: int64(binary.BigEndian.Uint32(buf[8:12])) - EpochOffset,
	}, true
}
