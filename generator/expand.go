package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/lv2ttl/plugin"
)

// ErrNoSources is returned when patterns match no description file.
var ErrNoSources = errors.New("no description files matched")

// descriptionGlob matches description files below a directory.
const descriptionGlob = "**/*.{yaml,yml,toml}"

// Expand resolves files, directories and doublestar globs into a sorted,
// de-duplicated list of description files. Directories are searched
// recursively. Files named explicitly are kept even if they do not look like
// descriptions so that loading reports a proper error; glob and directory
// matches are filtered. exclude holds base-name patterns to skip.
func Expand(patterns []string, exclude []string) ([]string, error) {
	seen := make(map[string]struct{})
	var sources []string

	add := func(path string, explicit bool) {
		if !explicit && (!plugin.IsDescriptionFile(path) || excluded(path, exclude)) {
			return
		}
		path = filepath.Clean(path)
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		sources = append(sources, path)
	}

	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			info, err := os.Stat(pattern)
			if err != nil {
				return nil, fmt.Errorf("source %s: %w", pattern, err)
			}
			if !info.IsDir() {
				add(pattern, true)
				continue
			}
			pattern = filepath.Join(pattern, descriptionGlob)
		}

		// Use doublestar for ** support
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob error: %w", err)
		}
		for _, match := range matches {
			add(match, false)
		}
	}

	slices.Sort(sources)
	return sources, nil
}

func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func excluded(path string, exclude []string) bool {
	base := filepath.Base(path)
	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
