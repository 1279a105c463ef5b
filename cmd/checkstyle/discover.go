package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/thanujayalath/checkstyle/internal/pipeline"
)

// skippedDirs are never descended into.
var skippedDirs = []string{"vendor", "testdata", "node_modules"}

// discover expands roots into the sorted list of source files below them.
// Excludes are doublestar globs matched against slash-separated paths
// relative to the root being walked; a file given directly is always kept.
func discover(roots, excludes []string) ([]string, error) {
	for _, pattern := range excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Newf("invalid --exclude pattern %q", pattern)
		}
	}

	var files []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", root)
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if path != root && (strings.HasPrefix(d.Name(), ".") || slices.Contains(skippedDirs, d.Name())) {
					return filepath.SkipDir
				}
				if rel != "." && excluded(rel, excludes) {
					return filepath.SkipDir
				}
				return nil
			}
			if lo.Contains(pipeline.Extensions, strings.ToLower(filepath.Ext(path))) && !excluded(rel, excludes) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walk %s", root)
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func excluded(rel string, excludes []string) bool {
	return lo.SomeBy(excludes, func(pattern string) bool {
		ok, _ := doublestar.Match(pattern, rel)
		return ok
	})
}
