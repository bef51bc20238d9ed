package atom

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// chunk builds raw atom bytes: a big-endian size, a type tag and payload.
// The declared size need not match the actual length; tests exploit that.
func chunk(size uint32, typ string, payload []byte) []byte {
	b := make([]byte, 0, 8+len(payload))
	b = binary.BigEndian.AppendUint32(b, size)
	b = append(b, typ...)
	return append(b, payload...)
}

// header builds the 8-byte child header carrying the inner tag.
func header(size uint32, tag string) []byte {
	return chunk(size, tag, nil)
}

func pos(t *testing.T, r io.Seeker) int64 {
	t.Helper()
	p, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatalf("seek: %v", err)
	}
	return p
}

func TestFindLeavesStreamPastHeaders(t *testing.T) {
	payload := append(header(108, "mvhd"), make([]byte, 100)...)
	data := chunk(116, "moov", payload)
	r := bytes.NewReader(data)

	if !Find(r, Moov) {
		t.Fatal("moov not found")
	}
	if got := pos(t, r); got != 16 {
		t.Fatalf("position after find = %d, want 16", got)
	}
}

func TestFindSkipsNonMatchingAtomBySize(t *testing.T) {
	free := chunk(24, "free", make([]byte, 16))
	moov := chunk(116, "moov", append(header(108, "mvhd"), make([]byte, 100)...))
	r := bytes.NewReader(append(free, moov...))

	if !Find(r, Moov) {
		t.Fatal("moov not found after skippable atom")
	}
	// 24 bytes skipped, then 16 consumed by the match.
	if got := pos(t, r); got != 40 {
		t.Fatalf("position = %d, want 40", got)
	}
}

func TestFindSkipAdvancesExactlyAtomSize(t *testing.T) {
	// A single non-matching atom whose declared size covers the whole
	// stream: the skip must land exactly at start + size.
	data := chunk(32, "mdat", make([]byte, 24))
	r := bytes.NewReader(data)

	if Find(r, Moov) {
		t.Fatal("unexpected match")
	}
	if got := pos(t, r); got != 32 {
		t.Fatalf("position = %d, want 32", got)
	}
}

func TestFindStopsOnMalformedSize(t *testing.T) {
	bad := chunk(4, "free", nil)
	moov := chunk(116, "moov", append(header(108, "mvhd"), make([]byte, 100)...))
	r := bytes.NewReader(append(bad, moov...))

	if Find(r, Moov) {
		t.Fatal("scan must stop at an atom with size < 8")
	}
}

func TestFindEmptyStream(t *testing.T) {
	if Find(bytes.NewReader(nil), Moov) {
		t.Fatal("found an atom in an empty stream")
	}
}

func TestFindTruncatedAfterHeader(t *testing.T) {
	// A moov header with no payload at all: the header probe comes up
	// short and the subsequent skip runs past the end of the stream.
	r := bytes.NewReader(chunk(0x58, "moov", nil))
	if Find(r, Moov) {
		t.Fatal("found a match in a truncated stream")
	}
}

func TestFindRejectsFalsePositiveTag(t *testing.T) {
	// An atom tagged moov whose first child is not mvhd must be skipped.
	// The skip is taken relative to the position after the 8 probe bytes,
	// so the true moov sits at fakeSize+8.
	fake := chunk(32, "moov", append(header(16, "free"), make([]byte, 16)...))
	filler := make([]byte, 8)
	real := chunk(116, "moov", append(header(108, "mvhd"), make([]byte, 100)...))

	data := append(append(fake, filler...), real...)
	r := bytes.NewReader(data)

	if !Find(r, Moov) {
		t.Fatal("true moov not found after false positive")
	}
	if got := pos(t, r); got != int64(len(fake)+len(filler)+16) {
		t.Fatalf("position = %d, want %d", got, len(fake)+len(filler)+16)
	}
}

func TestFindSecondLevelDescriptor(t *testing.T) {
	trak := chunk(100, "trak", append(header(92, "tkhd"), make([]byte, 84)...))
	r := bytes.NewReader(trak)

	if !Find(r, Trak) {
		t.Fatal("trak not found")
	}
}
