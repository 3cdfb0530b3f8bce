package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProjectConfigFile marks a project root on its own and holds project
// settings.
const ProjectConfigFile = ".envdiff.yaml"

// markers are checked in order in every directory; the first present one
// names the root.
var markers = []struct {
	name  string
	label string
}{
	{ProjectConfigFile, "envdiff project"},
	{"pnpm-workspace.yaml", "pnpm workspace"},
	{"turbo.json", "turborepo"},
	{"lerna.json", "lerna"},
	{"go.work", "go workspace"},
	{"settings.gradle", "gradle build"},
	{"settings.gradle.kts", "gradle build"},
	{".git", "git repository"},
}

// Root is the directory the settings file and discovery are anchored to.
type Root struct {
	Dir string
	// Marker is the file that identified Dir, empty when no marker was
	// found and Dir is the starting directory.
	Marker string
}

func (r Root) Found() bool {
	return r.Marker != ""
}

// Describe names the kind of project, e.g. "git repository".
func (r Root) Describe() string {
	for _, m := range markers {
		if m.name == r.Marker {
			return m.label
		}
	}
	return "directory"
}

// FindRoot walks up from dir to the first directory holding a marker.
func FindRoot(dir string) (Root, error) {
	start, err := filepath.Abs(dir)
	if err != nil {
		return Root{}, fmt.Errorf("resolve absolute path: %w", err)
	}

	for dir := start; ; {
		if m := markerIn(dir); m != "" {
			return Root{Dir: dir, Marker: m}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Root{Dir: start}, nil
		}
		dir = parent
	}
}

func markerIn(dir string) string {
	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(dir, m.name)); err == nil {
			return m.name
		}
	}
	return ""
}
