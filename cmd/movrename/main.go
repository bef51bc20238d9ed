package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qtmov/movrename/internal/config"
	"github.com/qtmov/movrename/internal/discover"
	"github.com/qtmov/movrename/internal/fs"
	"github.com/qtmov/movrename/internal/logging"
	"github.com/qtmov/movrename/internal/mailbox"
	"github.com/qtmov/movrename/internal/movie"
	"github.com/qtmov/movrename/internal/plan"
	"github.com/qtmov/movrename/internal/watcher"
	"github.com/qtmov/movrename/internal/worker"
)

func main() {
	var (
		configPath = flag.String("c", "", "path to YAML config file")
		format     = flag.String("f", "", "time layout for new names (Go reference layout, e.g. 20060102-1504)")
		extension  = flag.String("e", "", "file extension to look for (default mov)")
		systemTime = flag.Bool("s", false, "use filesystem modification time instead of movie metadata")
		advanced   = flag.Bool("a", false, "advanced mode: show all timestamps and pick one")
		warn       = flag.Bool("w", false, "mark files whose moov mtime disagrees with filesystem mtime")
		skip       = flag.Bool("i", false, "skip files whose moov mtime disagrees with filesystem mtime")
		fixMTime   = flag.Bool("x", false, "after renaming, set filesystem mtime to the chosen movie time")
		assumeYes  = flag.Bool("y", false, "rename without asking for confirmation")
		watchMode  = flag.Bool("watch", false, "keep running and rename new files as they arrive")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Flags beat the config file.
	if *format != "" {
		cfg.Rename.Format = *format
	}
	if *extension != "" {
		cfg.Rename.Extension = *extension
	}
	if *systemTime {
		cfg.Rename.Source = string(movie.SourceFile)
	}
	if *fixMTime {
		cfg.Rename.FixMTime = true
	}
	if args := flag.Args(); *watchMode && len(args) > 0 {
		cfg.Watch.Path = args[0]
	}

	logg := logging.StdLogger{Min: logging.ParseLevel(cfg.Logging.Level)}

	if *watchMode {
		if cfg.Watch.Path == "" {
			log.Fatal("watch mode needs a directory (argument or watch.path in config)")
		}
		runWatch(cfg, *configPath, logg)
		return
	}

	opts := oneShotOptions{
		advanced:  *advanced,
		warn:      *warn,
		skip:      *skip,
		assumeYes: *assumeYes,
	}
	if err := runOnce(cfg, flag.Args(), opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type oneShotOptions struct {
	advanced  bool
	warn      bool
	skip      bool
	assumeYes bool
}

func runOnce(cfg *config.Config, operands []string, opts oneShotOptions) error {
	filesystem := fs.New()

	files, err := discover.Resolve(operands, cfg.Rename.Extension)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", cfg.Rename.Extension)
	}

	entries := make([]plan.Entry, 0, len(files))
	for _, path := range files {
		bundle, err := movie.Read(filesystem, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
			continue
		}
		entries = append(entries, plan.Entry{Path: path, Bundle: bundle})
	}
	if len(entries) == 0 {
		return fmt.Errorf("no readable %s files", cfg.Rename.Extension)
	}

	source, err := plan.ParseSource(cfg.Rename.Source)
	if err != nil {
		return err
	}
	planOpts := plan.Options{
		Source: source,
		Field:  plan.FieldModification,
		Layout: cfg.Rename.Format,
	}

	if opts.advanced {
		printAdvancedTable(entries, planOpts)
		choice, err := promptChoice()
		if err != nil {
			return err
		}
		planOpts.Source, planOpts.Field = choice.source, choice.field
	}

	if opts.skip {
		entries = dropInconsistent(entries, planOpts)
		if len(entries) == 0 {
			fmt.Println("Nothing to do.")
			return nil
		}
	}

	moves, err := plan.Build(entries, planOpts)
	if err != nil {
		return err
	}

	printPreview(entries, moves, planOpts, opts.warn)

	if !opts.assumeYes && !promptConfirm() {
		fmt.Println("Nothing to do.")
		return nil
	}

	ctx := context.Background()
	renamed := 0
	for _, m := range moves {
		if m.Dst != m.Src {
			if err := filesystem.Rename(ctx, m.Src, m.Dst); err != nil {
				fmt.Fprintf(os.Stderr, "rename %s: %v\n", m.Src, err)
				continue
			}
			renamed++
		}
		if cfg.Rename.FixMTime && !m.When.IsZero() {
			if err := filesystem.SetTimes(ctx, m.Dst, m.When); err != nil {
				fmt.Fprintf(os.Stderr, "set mtime %s: %v\n", m.Dst, err)
			}
		}
	}
	fmt.Printf("Done. %d file(s) renamed.\n", renamed)
	return nil
}

// dropInconsistent removes entries whose moov mtime and filesystem mtime
// format differently, i.e. the metadata and the filesystem disagree at
// the resolution the new names use.
func dropInconsistent(entries []plan.Entry, opts plan.Options) []plan.Entry {
	kept := entries[:0]
	for _, e := range entries {
		if opts.Format(e.Bundle.Moov.Modification) == opts.Format(e.Bundle.File.Modification) {
			kept = append(kept, e)
		}
	}
	return kept
}

func runWatch(cfg *config.Config, configPath string, logg logging.StdLogger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		cancel()
		// Unblock the worker if it is waiting on the mailbox.
	}()

	// Mailbox for sweep jobs
	mb := mailbox.New[worker.Job]()

	// Worker (rename executor)
	w := worker.New(cfg, logg, mb, nil)

	// Watcher (detects new files and requests sweeps)
	watch := watcher.New(cfg, logg, mb)

	// Start worker loop
	go w.Start(ctx)

	// Start watcher loop
	go func() {
		if err := watch.Start(ctx); err != nil {
			log.Fatalf("failed to start watcher: %v", err)
		}
	}()

	// Hot reload on SIGHUP
	if configPath != "" {
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGHUP)

			for range sigCh {
				newCfg, err := config.Load(configPath)
				if err != nil {
					logg.Error("config reload failed", "error", err)
					continue
				}

				w.UpdateConfig(newCfg)
				watch.UpdateConfig(newCfg)

				logg.Info("config reloaded")
			}
		}()
	}

	<-ctx.Done()
	// Nudge the worker out of Take so its goroutine can observe the
	// cancelled context before the process exits.
	mb.Put(worker.Job{Reason: "shutdown", Time: time.Now()})
	log.Println("exit complete")
}
