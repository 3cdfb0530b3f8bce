package workspace

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreFile lists, gitignore style, the paths that discovery skips.
const IgnoreFile = ".envdiffignore"

type ignoreRule struct {
	pattern string // doublestar, forward slashes
	dirOnly bool   // trailing slash
	anchor  bool   // leading slash: relative to the root only
}

// IgnoreMatcher holds the rules of an ignore file. A nil matcher ignores
// nothing.
type IgnoreMatcher struct {
	rules []ignoreRule
}

// LoadIgnore reads root/.envdiffignore. It returns a nil matcher when the
// file is absent or holds no rules.
func LoadIgnore(root string) (*IgnoreMatcher, error) {
	path := filepath.Join(root, IgnoreFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var rules []ignoreRule
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var r ignoreRule
		line, r.dirOnly = strings.CutSuffix(line, "/")
		line, r.anchor = strings.CutPrefix(line, "/")
		if line == "" {
			continue
		}
		if !doublestar.ValidatePattern(line) {
			return nil, fmt.Errorf("%s: invalid pattern %q", path, line)
		}
		r.pattern = filepath.ToSlash(line)
		rules = append(rules, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(rules) == 0 {
		return nil, nil
	}
	return &IgnoreMatcher{rules: rules}, nil
}

// Match reports whether relPath, relative to the directory holding the
// ignore file, is excluded.
func (m *IgnoreMatcher) Match(relPath string, isDir bool) bool {
	if m == nil {
		return false
	}
	relPath = strings.TrimPrefix(filepath.ToSlash(relPath), "/")

	for _, r := range m.rules {
		if r.dirOnly && !isDir {
			continue
		}
		if r.anchor {
			if ok, _ := doublestar.Match(r.pattern, relPath); ok {
				return true
			}
			continue
		}
		// Unanchored patterns match at any depth.
		if ok, _ := doublestar.Match("**/"+r.pattern, relPath); ok {
			return true
		}
	}
	return false
}
