package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()

	files := []string{"a.png", "b.jpg", "readme.txt", "z.bmp"}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("fake"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	result, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	// Every regular file is a candidate, image or not.
	if len(result.Paths) != len(files) {
		t.Errorf("expected %d paths, got %d: %v", len(files), len(result.Paths), result.Paths)
	}
	if result.Dirs != 1 {
		t.Errorf("expected 1 directory (the root), got %d", result.Dirs)
	}
}

func TestScanRecursive(t *testing.T) {
	dir := t.TempDir()

	sub := filepath.Join(dir, "nested", "deep")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{
		filepath.Join(dir, "top.png"),
		filepath.Join(dir, "nested", "mid.jpg"),
		filepath.Join(sub, "bottom.gif"),
	} {
		if err := os.WriteFile(path, []byte("fake"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	result, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Paths) != 3 {
		t.Errorf("expected 3 paths, got %d: %v", len(result.Paths), result.Paths)
	}
	if result.Dirs != 3 {
		t.Errorf("expected 3 directories, got %d", result.Dirs)
	}
}

func TestScanOrderIsDeterministic(t *testing.T) {
	dir := t.TempDir()

	names := []string{"c.png", "a.png", "b.png"}
	for _, f := range names {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("fake"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	result, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if !sort.StringsAreSorted(result.Paths) {
		t.Errorf("expected lexical order, got %v", result.Paths)
	}

	again, err := Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	for i := range result.Paths {
		if result.Paths[i] != again.Paths[i] {
			t.Fatalf("order changed between scans: %v vs %v", result.Paths, again.Paths)
		}
	}
}

func TestScanEmptyDir(t *testing.T) {
	result, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("empty directory should scan cleanly: %v", err)
	}
	if len(result.Paths) != 0 {
		t.Errorf("expected empty pool, got %v", result.Paths)
	}
}

func TestScanNonexistentDir(t *testing.T) {
	_, err := Scan("/nonexistent/path/12345")
	if err == nil {
		t.Error("expected error for nonexistent directory")
	}
}

func TestScanNotADir(t *testing.T) {
	f, err := os.CreateTemp("", "testfile")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	f.Close()

	_, err = Scan(f.Name())
	if err == nil {
		t.Error("expected error for file (not directory)")
	}
}
