package dev

import (
	"path/filepath"

	"github.com/domkit-dev/domkit/internal/config"
)

// CollectWatchPaths returns the directories watched for the project: the
// configured watch list plus the config file, without duplicates.
func CollectWatchPaths(cfg *config.Config) []string {
	paths := cfg.WatchPaths()
	if cfg.Path() != "" {
		paths = append(paths, cfg.Path())
	}

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if path == "" {
			continue
		}
		clean := filepath.Clean(path)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}

	return unique
}

// isWithinDir reports whether path is dir or lies below it.
func isWithinDir(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !filepath.IsAbs(rel) && !startsWithParent(rel))
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
