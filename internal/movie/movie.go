// Package movie collects the timestamps a movie file carries: the
// filesystem mtime plus the creation/modification pairs of the first
// moov, trak and mdia atoms.
package movie

import (
	"io"
	"os"

	"github.com/qtmov/movrename/internal/atom"
	"github.com/qtmov/movrename/internal/fs"
)

// Bundle holds every timestamp collected for one file. It is assembled
// once and never mutated afterwards; a zero pair means the source was not
// found.
type Bundle struct {
	File atom.Times
	Moov atom.Times
	Trak atom.Times
	Mdia atom.Times
}

// Source names one of the bundle's timestamp origins.
type Source string

const (
	SourceFile Source = "file"
	SourceMoov Source = "moov"
	SourceTrak Source = "trak"
	SourceMdia Source = "mdia"
)

// Times returns the pair for the named source.
func (b Bundle) Times(src Source) atom.Times {
	switch src {
	case SourceFile:
		return b.File
	case SourceMoov:
		return b.Moov
	case SourceTrak:
		return b.Trak
	case SourceMdia:
		return b.Mdia
	default:
		return atom.Times{}
	}
}

// Read collects the bundle for path. The filesystem pair carries only a
// modification time. Malformed, truncated or non-QuickTime content
// degrades to zero pairs; only failure to open or stat the file is an
// error.
func Read(filesystem fs.FS, path string) (Bundle, error) {
	if filesystem == nil {
		filesystem = fs.New()
	}

	info, err := filesystem.Stat(path)
	if err != nil {
		return Bundle{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Bundle{}, err
	}
	defer f.Close()

	b := readAtoms(f)
	b.File.Modification = info.MTime.Unix()
	return b, nil
}

// readAtoms runs the three scan phases. Each phase starts where the
// previous header region ended: after decoding a pair the stream is moved
// past the remainder of that header by the descriptor's fixed skip, which
// lands on the first child atom of the just-matched container. A missing
// or undecodable atom ends the chain, leaving the remaining pairs zero.
func readAtoms(r io.ReadSeeker) Bundle {
	var b Bundle

	for _, phase := range []struct {
		desc atom.Descriptor
		dst  *atom.Times
	}{
		{atom.Moov, &b.Moov},
		{atom.Trak, &b.Trak},
		{atom.Mdia, &b.Mdia},
	} {
		if !atom.Find(r, phase.desc) {
			break
		}
		t, ok := atom.ReadTimes(r)
		if !ok {
			break
		}
		*phase.dst = t
		if _, err := r.Seek(phase.desc.Skip, io.SeekCurrent); err != nil {
			break
		}
	}

	return b
}
