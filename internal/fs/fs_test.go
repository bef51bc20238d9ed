package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestChanged(t *testing.T) {
	base := FileInfo{Size: 100, MTime: time.Unix(1000, 0), Inode: 7}

	cases := []struct {
		name string
		now  FileInfo
		want bool
	}{
		{"identical", base, false},
		{"size grew", FileInfo{Size: 200, MTime: base.MTime, Inode: 7}, true},
		{"newer mtime", FileInfo{Size: 100, MTime: time.Unix(2000, 0), Inode: 7}, true},
		{"replaced inode", FileInfo{Size: 100, MTime: base.MTime, Inode: 8}, true},
		{"no inode info", FileInfo{Size: 100, MTime: base.MTime, Inode: 0}, false},
	}

	for _, tc := range cases {
		if got := Changed(base, tc.now); got != tc.want {
			t.Errorf("%s: Changed = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStatAndRename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mov")
	dst := filepath.Join(dir, "b.mov")
	if err := os.WriteFile(src, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := New()

	info, err := f.Stat(src)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size != 4 {
		t.Errorf("size = %d, want 4", info.Size)
	}

	if err := f.Rename(context.Background(), src, dst); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("dst missing after rename: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("src still present after rename")
	}
}

func TestSetTimes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mov")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	want := time.Date(2016, 1, 20, 13, 5, 0, 0, time.UTC)
	f := New()
	if err := f.SetTimes(context.Background(), path, want); err != nil {
		t.Fatal(err)
	}

	info, err := f.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.MTime.Equal(want) {
		t.Errorf("mtime = %v, want %v", info.MTime, want)
	}
}

func TestRenameMissingSourceFailsFast(t *testing.T) {
	dir := t.TempDir()
	err := New().Rename(context.Background(), filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
	if err == nil {
		t.Fatal("expected an error")
	}
}
