// ABOUTME: Removal of generated patch artifacts
// ABOUTME: Recursive pattern collection with dry-run support
package cleanup

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DefaultPatterns are the artifact globs a build leaves behind.
var DefaultPatterns = []string{"*.wav", "*.info", "*.zip"}

// Collect returns all files under base whose name matches any pattern,
// sorted by path.
func Collect(base string, patterns []string) ([]string, error) {
	var targets []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, pattern := range patterns {
			ok, err := filepath.Match(pattern, d.Name())
			if err != nil {
				return err
			}
			if ok {
				targets = append(targets, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(targets)
	return targets, nil
}

// Remove deletes each file unless dryRun is set. Already-missing files
// are skipped. Returns the paths considered.
func Remove(paths []string, dryRun bool) ([]string, error) {
	processed := make([]string, 0, len(paths))
	for _, path := range paths {
		processed = append(processed, path)
		if dryRun {
			continue
		}
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return processed, err
		}
	}
	return processed, nil
}
