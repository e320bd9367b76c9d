// ABOUTME: Zip packaging of built patch assets
// ABOUTME: Archives files under {patch_name}/{bank}/ with DEFLATE
package packaging

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// WriteArchive creates a zip at zipPath containing the given files under
// "{patchName}/{bank}/{basename}". Entries are written in sorted order so
// archives are reproducible.
func WriteArchive(zipPath, patchName, bank string, files []string) error {
	sorted := append([]string(nil), files...)
	sort.Slice(sorted, func(i, j int) bool {
		return filepath.Base(sorted[i]) < filepath.Base(sorted[j])
	})

	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, path := range sorted {
		if err := addFile(w, path, patchName+"/"+bank+"/"+filepath.Base(path)); err != nil {
			w.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

func addFile(w *zip.Writer, path, arcname string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer src.Close()

	dst, err := w.CreateHeader(&zip.FileHeader{Name: arcname, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", arcname, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", arcname, err)
	}
	return nil
}
