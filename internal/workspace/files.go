package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var DefaultExcludeDirs = []string{
	".git",
	"node_modules",
	"vendor",
	".cache",
	".turbo",
	".next",
}

// ListEnvFiles walks root and returns every .env file below it, sorted.
// Directories in DefaultExcludeDirs are not entered, and paths matched by
// root/.envdiffignore are skipped.
func ListEnvFiles(root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("get absolute path: %w", err)
	}

	excludeSet := make(map[string]bool)
	for _, d := range DefaultExcludeDirs {
		excludeSet[d] = true
	}

	ignore, err := LoadIgnore(root)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == root {
			return nil
		}
		rel, _ := filepath.Rel(root, path)

		if d.IsDir() {
			if excludeSet[d.Name()] || ignore.Match(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if ignore.Match(rel, false) {
			return nil
		}

		if d.Type().IsRegular() && IsEnvFilename(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// IsEnvFilename reports whether name is ".env" or ".env.<suffix>". Templates
// such as .env.example are included since they are usually what the other
// files are compared against.
func IsEnvFilename(name string) bool {
	if name == ".env" {
		return true
	}
	return strings.HasPrefix(name, ".env.") && len(name) > len(".env.")
}
