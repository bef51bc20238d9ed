// Package atom locates timestamp-bearing atoms in a QuickTime movie
// stream without a container-format library.
//
// The scanner walks a flat chain of length-prefixed atoms and recognizes
// exactly three kinds by their type tag plus the header sub-atom that
// confirms them: moov/mvhd, trak/tkhd and mdia/mdhd. Skip sizes assume the
// version-0 (32-bit timestamp) layout of those headers; version-1 boxes
// are misparsed rather than rejected.
package atom

// Descriptor identifies an atom to search for: its 4-byte type tag, the
// header sub-atom tag that confirms a true match, and the number of bytes
// between the decoded timestamp fields and the end of the header region.
type Descriptor struct {
	Type   string
	Header string
	Skip   int64
}

var (
	Moov = Descriptor{Type: "moov", Header: "mvhd", Skip: 88}
	Trak = Descriptor{Type: "trak", Header: "tkhd", Skip: 72}
	Mdia = Descriptor{Type: "mdia", Header: "mdhd", Skip: 12}
)
