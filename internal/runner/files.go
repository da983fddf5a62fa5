package runner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/donaldgifford/memberfmt/internal/config"
)

// sourceExt is the extension of files picked up when walking directories.
const sourceExt = ".cs"

// collectFiles expands paths into the list of files to process. Files
// named explicitly are always kept; files found by walking a directory
// must have the source extension and must not match an exclude pattern,
// which is matched against the path relative to the walked directory.
// Hidden directories are skipped.
func collectFiles(paths []string, cfg *config.Config) ([]string, []error) {
	var (
		files []string
		errs  []error
	)
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != sourceExt {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if cfg.Excluded(rel) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return files, errs
}
