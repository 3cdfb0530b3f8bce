package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DirPattern selects the files compared when a directory is given.
const DirPattern = ".env*"

var ErrPathNotFound = errors.New("file not found")

type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPathNotFound, e.Path)
}

func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// ExpandPaths resolves command line arguments into a list of files.
// Directories contribute their .env* entries (not recursive), arguments
// containing glob characters are expanded, and anything else must exist.
func ExpandPaths(args []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(paths ...string) {
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			files, err := envFilesInDir(arg)
			if err != nil {
				return nil, err
			}
			add(files...)
		case err == nil:
			add(arg)
		case isGlob(arg):
			files, err := globFiles(arg)
			if err != nil {
				return nil, err
			}
			add(files...)
		case errors.Is(err, fs.ErrNotExist):
			return nil, &PathNotFoundError{Path: arg}
		default:
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
	}

	return out, nil
}

func isGlob(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

func envFilesInDir(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), DirPattern)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var files []string
	for _, m := range matches {
		p := filepath.Join(dir, filepath.FromSlash(m))
		if isRegularFile(p) {
			files = append(files, p)
		}
	}
	sort.Strings(files)
	return files, nil
}

func globFiles(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", pattern, err)
	}

	var files []string
	for _, m := range matches {
		if isRegularFile(m) {
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
