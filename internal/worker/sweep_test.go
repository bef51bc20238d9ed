package worker

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qtmov/movrename/internal/atom"
	"github.com/qtmov/movrename/internal/config"
	"github.com/qtmov/movrename/internal/logging"
	"github.com/qtmov/movrename/internal/mailbox"
)

// movieWithMoov builds a stream carrying a single moov/mvhd whose
// modification time is the given Unix epoch value.
func movieWithMoov(modUnix int64) []byte {
	raw := uint32(modUnix + atom.EpochOffset)

	var b []byte
	b = binary.BigEndian.AppendUint32(b, 116)
	b = append(b, "moov"...)
	b = binary.BigEndian.AppendUint32(b, 108)
	b = append(b, "mvhd"...)
	b = binary.BigEndian.AppendUint32(b, 0)
	b = binary.BigEndian.AppendUint32(b, raw) // creation
	b = binary.BigEndian.AppendUint32(b, raw) // modification
	return append(b, make([]byte, 88)...)
}

func testConfig(dir string) *config.Config {
	cfg := config.Default()
	cfg.Watch.Path = dir
	cfg.Watch.StabilityWindow = config.Duration(10 * time.Millisecond)
	return cfg
}

func testWorker(cfg *config.Config) *Worker {
	logg := logging.StdLogger{Min: logging.LevelError}
	return New(cfg, logg, mailbox.New[Job](), nil)
}

func TestSweepRenamesStableFiles(t *testing.T) {
	dir := t.TempDir()
	mod := time.Date(2016, 1, 20, 13, 5, 0, 0, time.UTC).Unix()
	src := filepath.Join(dir, "video.mov")
	if err := os.WriteFile(src, movieWithMoov(mod), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(dir)
	w := testWorker(cfg)

	if err := w.Sweep(context.Background(), Job{Reason: "test"}); err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(dir, time.Unix(mod, 0).Format(cfg.Rename.Format)+".mov")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("source still present after sweep")
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	mod := time.Date(2016, 1, 20, 13, 5, 0, 0, time.UTC).Unix()
	if err := os.WriteFile(filepath.Join(dir, "video.mov"), movieWithMoov(mod), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(dir)
	w := testWorker(cfg)

	ctx := context.Background()
	if err := w.Sweep(ctx, Job{Reason: "first"}); err != nil {
		t.Fatal(err)
	}
	if err := w.Sweep(ctx, Job{Reason: "second"}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one file, got %d", len(entries))
	}
	want := time.Unix(mod, 0).Format(cfg.Rename.Format) + ".mov"
	if entries[0].Name() != want {
		t.Errorf("name = %q, want %q", entries[0].Name(), want)
	}
}

func TestSweepAppliesMTimeFix(t *testing.T) {
	dir := t.TempDir()
	mod := time.Date(2016, 1, 20, 13, 5, 0, 0, time.UTC).Unix()
	if err := os.WriteFile(filepath.Join(dir, "video.mov"), movieWithMoov(mod), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(dir)
	cfg.Rename.FixMTime = true
	w := testWorker(cfg)

	if err := w.Sweep(context.Background(), Job{Reason: "test"}); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(dir, time.Unix(mod, 0).Format(cfg.Rename.Format)+".mov")
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.ModTime().Unix() != mod {
		t.Errorf("mtime = %d, want %d", info.ModTime().Unix(), mod)
	}
}

func TestSweepEmptyDirectory(t *testing.T) {
	w := testWorker(testConfig(t.TempDir()))
	if err := w.Sweep(context.Background(), Job{Reason: "test"}); err != nil {
		t.Fatalf("sweep of empty dir: %v", err)
	}
}

func TestSweepLeavesNonMovieContentAlone(t *testing.T) {
	dir := t.TempDir()
	// A file with the right extension but no moov keeps its name.
	if err := os.WriteFile(filepath.Join(dir, "broken.mov"), []byte("not a movie"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := testWorker(testConfig(dir))
	if err := w.Sweep(context.Background(), Job{Reason: "test"}); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "broken.mov")); err != nil {
		t.Errorf("file without metadata should keep its name: %v", err)
	}
}

func TestUpdateConfig(t *testing.T) {
	w := testWorker(testConfig(t.TempDir()))

	next := config.Default()
	next.Watch.Path = "/elsewhere"
	next.Rename.Extension = "mp4"
	w.UpdateConfig(next)

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.dir != "/elsewhere" {
		t.Errorf("dir = %q", w.dir)
	}
	if w.rename.Extension != "mp4" {
		t.Errorf("extension = %q", w.rename.Extension)
	}
}
