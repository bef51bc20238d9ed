// Package plan turns collected timestamps into a deterministic list of
// renames. It never touches the files; execution is the caller's job.
package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/qtmov/movrename/internal/movie"
)

// Field selects which half of a timestamp pair names the file.
type Field int

const (
	FieldCreation Field = iota
	FieldModification
)

// Entry pairs a file with its collected timestamps.
type Entry struct {
	Path   string
	Bundle movie.Bundle
}

// Move is one planned rename. Dst equals Src when only the mtime fix
// applies. When is the timestamp that produced the name; it is zero when
// the file keeps its old name because no timestamp was found.
type Move struct {
	Src  string
	Dst  string
	When time.Time
}

// Options control name synthesis.
type Options struct {
	Source   movie.Source
	Field    Field
	Layout   string
	Location *time.Location // nil means time.Local
}

// Value extracts the chosen epoch seconds from a bundle. Zero means the
// source was not found and the old name is kept.
func (o Options) Value(b movie.Bundle) int64 {
	t := b.Times(o.Source)
	if o.Field == FieldCreation {
		return t.Creation
	}
	return t.Modification
}

// Format renders epoch seconds with the options' layout, or "-" for a
// missing timestamp.
func (o Options) Format(sec int64) string {
	if sec == 0 {
		return "-"
	}
	loc := o.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(sec, 0).In(loc).Format(o.Layout)
}

// Build plans renames for entries. Files in the same directory share a
// used-name set seeded from the directory's current listing (minus the
// batch's own names), so a new name never collides with a file that stays
// behind nor with another name allocated in the same run. Collisions get
// "-1", "-2", … appended before the extension. The original extension is
// kept exactly as found.
func Build(entries []Entry, opts Options) ([]Move, error) {
	byDir := make(map[string][]Entry)
	for _, e := range entries {
		dir := filepath.Dir(e.Path)
		byDir[dir] = append(byDir[dir], e)
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var moves []Move
	for _, dir := range dirs {
		group := byDir[dir]
		sort.Slice(group, func(i, j int) bool { return group[i].Path < group[j].Path })

		used, err := remainingNames(dir, group)
		if err != nil {
			return nil, err
		}

		for _, e := range group {
			base := filepath.Base(e.Path)
			ext := filepath.Ext(base)

			sec := opts.Value(e.Bundle)
			var when time.Time
			candidate := base
			if sec != 0 {
				when = time.Unix(sec, 0)
				candidate = opts.Format(sec) + ext
			}

			name := allocName(candidate, used)
			used[name] = struct{}{}

			moves = append(moves, Move{
				Src:  e.Path,
				Dst:  filepath.Join(dir, name),
				When: when,
			})
		}
	}

	return moves, nil
}

// remainingNames lists dir minus the names the batch is about to rename
// away.
func remainingNames(dir string, group []Entry) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	own := make(map[string]struct{}, len(group))
	for _, e := range group {
		own[filepath.Base(e.Path)] = struct{}{}
	}

	used := make(map[string]struct{}, len(entries))
	for _, de := range entries {
		if _, ok := own[de.Name()]; ok {
			continue
		}
		used[de.Name()] = struct{}{}
	}
	return used, nil
}

func allocName(name string, used map[string]struct{}) string {
	if _, ok := used[name]; !ok {
		return name
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for n := 1; ; n++ {
		cand := fmt.Sprintf("%s-%d%s", base, n, ext)
		if _, ok := used[cand]; !ok {
			return cand
		}
	}
}

// ParseSource validates a source name from flags or config.
func ParseSource(s string) (movie.Source, error) {
	switch movie.Source(s) {
	case movie.SourceFile, movie.SourceMoov, movie.SourceTrak, movie.SourceMdia:
		return movie.Source(s), nil
	default:
		return "", fmt.Errorf("unknown timestamp source %q", s)
	}
}
