package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qtmov/movrename/internal/movie"
	"github.com/qtmov/movrename/internal/plan"
)

// timeChoice is one of the advanced-mode options.
type timeChoice struct {
	source movie.Source
	field  plan.Field
}

var choices = map[string]timeChoice{
	"1": {movie.SourceFile, plan.FieldModification},
	"2": {movie.SourceMoov, plan.FieldModification},
	"3": {movie.SourceMoov, plan.FieldCreation},
	"4": {movie.SourceTrak, plan.FieldModification},
	"5": {movie.SourceTrak, plan.FieldCreation},
}

// printAdvancedTable shows every collected timestamp so the user can pick
// the one that names the files. The "=" column marks files whose moov
// mtime disagrees with the filesystem mtime.
func printAdvancedTable(entries []plan.Entry, opts plan.Options) {
	fmt.Printf("%-24s%-18s%-3s%-18s%-18s%-18s%-18s\n",
		"Filename", "1.File mtime", "=", "2.moov mtime", "3.moov ctime", "4.trak mtime", "5.trak ctime")
	fmt.Println(strings.Repeat("-", 117))

	dir := ""
	for _, e := range entries {
		if d := filepath.Dir(e.Path); d != dir {
			dir = d
			fmt.Println("\n" + dir)
		}

		eq := "-"
		if opts.Format(e.Bundle.Moov.Modification) != opts.Format(e.Bundle.File.Modification) {
			eq = "x"
		}

		fmt.Printf("%-24s%-18s%-3s%-18s%-18s%-18s%-18s\n",
			filepath.Base(e.Path),
			opts.Format(e.Bundle.File.Modification),
			eq,
			opts.Format(e.Bundle.Moov.Modification),
			opts.Format(e.Bundle.Moov.Creation),
			opts.Format(e.Bundle.Trak.Modification),
			opts.Format(e.Bundle.Trak.Creation),
		)
	}
}

// promptChoice asks which timestamp to use until the answer is valid.
func promptChoice() (timeChoice, error) {
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("Which time to use? (1-5)")
		if !in.Scan() {
			return timeChoice{}, fmt.Errorf("stdin closed")
		}
		if c, ok := choices[strings.TrimSpace(in.Text())]; ok {
			return c, nil
		}
	}
}

// printPreview lists the planned renames grouped by directory.
func printPreview(entries []plan.Entry, moves []plan.Move, opts plan.Options, warn bool) {
	bundles := make(map[string]movie.Bundle, len(entries))
	for _, e := range entries {
		bundles[e.Path] = e.Bundle
	}

	fmt.Println("\nFiles to be renamed:")
	dir := ""
	for _, m := range moves {
		if d := filepath.Dir(m.Src); d != dir {
			dir = d
			fmt.Println("\n" + dir)
		}

		marker := ""
		if warn {
			marker = "  "
			b := bundles[m.Src]
			if opts.Format(b.Moov.Modification) != opts.Format(b.File.Modification) {
				marker = "x "
			}
		}

		suffix := ""
		if m.Dst == m.Src {
			suffix = " (unchanged)"
		}
		fmt.Printf("%-24s -> %s%s%s\n", filepath.Base(m.Src), marker, filepath.Base(m.Dst), suffix)
	}
}

// promptConfirm asks for a final yes/no. Anything starting with "y"
// counts as yes.
func promptConfirm() bool {
	fmt.Println("\nOK? yes/no")
	in := bufio.NewScanner(os.Stdin)
	if !in.Scan() {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(in.Text())), "y")
}
