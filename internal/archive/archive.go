// Package archive bundles a run's rendered PDFs into a single zip so a
// multi-worksheet run downloads and shares as one file.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WorksheetName returns the canonical name for the nth worksheet (1-based).
func WorksheetName(n int) string { return fmt.Sprintf("worksheet-%02d.pdf", n) }

// AnswerKeyName returns the canonical name for the nth answer key (1-based).
func AnswerKeyName(n int) string { return fmt.Sprintf("answer-key-%02d.pdf", n) }

// Bundle writes the given files into a zip at zipPath. Entries are stored
// under their base names in the order given; the zip is deterministic for a
// fixed input list apart from file timestamps, which are zeroed.
func Bundle(zipPath string, files []string) (err error) {
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("create archive %s: %w", zipPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	zw := zip.NewWriter(out)
	for _, file := range files {
		if err := addFile(zw, file); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive %s: %w", zipPath, err)
	}
	return nil
}

func addFile(zw *zip.Writer, file string) error {
	src, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("archive %s: %w", file, err)
	}
	defer src.Close()

	hdr := &zip.FileHeader{
		Name:   filepath.Base(file),
		Method: zip.Deflate,
	}
	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("archive %s: %w", file, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("archive %s: %w", file, err)
	}
	return nil
}
