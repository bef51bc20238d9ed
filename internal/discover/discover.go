// Package discover resolves command line operands into the list of movie
// files to process.
package discover

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Resolve expands operands into a sorted list of files carrying ext
// (case-insensitive, without the dot). Operands may be plain files,
// directories (listed non-recursively) or glob patterns. Missing operands
// are skipped silently, matching the tool's batch semantics. An empty
// operand list means the current directory.
func Resolve(operands []string, ext string) ([]string, error) {
	if len(operands) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		operands = []string{cwd}
	}

	var candidates []string
	for _, op := range operands {
		if strings.ContainsAny(op, "*?[") {
			matches, err := filepath.Glob(op)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, matches...)
			continue
		}
		candidates = append(candidates, op)
	}

	suffix := "." + strings.ToLower(ext)
	var files []string
	for _, c := range candidates {
		info, err := os.Stat(c)
		if err != nil {
			continue
		}

		if !info.IsDir() {
			if hasExt(c, suffix) {
				files = append(files, c)
			}
			continue
		}

		abs, err := filepath.Abs(c)
		if err != nil {
			return nil, err
		}
		entries, err := os.ReadDir(abs)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if hasExt(e.Name(), suffix) {
				files = append(files, filepath.Join(abs, e.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func hasExt(name, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(name), suffix)
}
