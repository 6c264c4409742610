package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestBundle(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i := 1; i <= 3; i++ {
		path := filepath.Join(dir, WorksheetName(i))
		if err := os.WriteFile(path, []byte("%PDF-fake"), 0o644); err != nil {
			t.Fatal(err)
		}
		files = append(files, path)
	}

	zipPath := filepath.Join(dir, "worksheets.zip")
	if err := Bundle(zipPath, files); err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()

	want := []string{"worksheet-01.pdf", "worksheet-02.pdf", "worksheet-03.pdf"}
	if len(zr.File) != len(want) {
		t.Fatalf("archive has %d entries, want %d", len(zr.File), len(want))
	}
	for i, f := range zr.File {
		if f.Name != want[i] {
			t.Errorf("entry %d = %q, want %q", i, f.Name, want[i])
		}
	}
}

func TestBundleMissingFile(t *testing.T) {
	dir := t.TempDir()
	err := Bundle(filepath.Join(dir, "out.zip"), []string{filepath.Join(dir, "absent.pdf")})
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestNames(t *testing.T) {
	if got := WorksheetName(7); got != "worksheet-07.pdf" {
		t.Errorf("WorksheetName(7) = %q", got)
	}
	if got := AnswerKeyName(12); got != "answer-key-12.pdf" {
		t.Errorf("AnswerKeyName(12) = %q", got)
	}
}
