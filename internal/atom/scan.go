package atom

import (
	"encoding/binary"
	"io"
)

// atomHeaderLen is the size+type prefix carried by every atom.
const atomHeaderLen = 8

// Find advances r until it reaches an atom whose type tag and header
// sub-atom tag both match desc. It reports whether such an atom was found.
//
// On success the stream is left 16 bytes past the start of the matched
// atom's header, immediately before the header's version/flags field. On
// failure the stream is wherever scanning stopped. Short reads, seek
// errors and a reported size below 8 (a malformed or terminal marker) all
// end the search; none of them is an error to the caller.
func Find(r io.ReadSeeker, desc Descriptor) bool {
	var buf [atomHeaderLen]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return false
		}
		size := binary.BigEndian.Uint32(buf[:4])

		if string(buf[4:]) == desc.Type && headerMatches(r, desc) {
			return true
		}

		if size < atomHeaderLen {
			return false
		}
		// Skip the rest of this atom's payload relative to the current
		// position. After a failed header probe the 8 probe bytes stay
		// consumed, so the skip is taken from 8 bytes further in.
		if _, err := r.Seek(int64(size)-atomHeaderLen, io.SeekCurrent); err != nil {
			return false
		}
	}
}

// headerMatches reads the first child header of the atom at the current
// position and reports whether its type tag is desc.Header. The 8 probe
// bytes stay consumed either way.
func headerMatches(r io.ReadSeeker, desc Descriptor) bool {
	var buf [atomHeaderLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return false
	}
	return string(buf[4:]) == desc.Header
}
