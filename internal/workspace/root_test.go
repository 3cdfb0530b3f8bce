package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func mkdirs(t *testing.T, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatal(err)
		}
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFindRoot(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T, tmp string) (start string)
		wantDir    func(tmp string) string
		wantMarker string
	}{
		{
			name: "pnpm workspace",
			setup: func(t *testing.T, tmp string) string {
				mkdirs(t, filepath.Join(tmp, "apps", "web"))
				touch(t, filepath.Join(tmp, "pnpm-workspace.yaml"))
				return filepath.Join(tmp, "apps", "web")
			},
			wantDir:    func(tmp string) string { return tmp },
			wantMarker: "pnpm-workspace.yaml",
		},
		{
			name: "git repository",
			setup: func(t *testing.T, tmp string) string {
				mkdirs(t, filepath.Join(tmp, "src"), filepath.Join(tmp, ".git"))
				return filepath.Join(tmp, "src")
			},
			wantDir:    func(tmp string) string { return tmp },
			wantMarker: ".git",
		},
		{
			name: "nearest marker wins",
			setup: func(t *testing.T, tmp string) string {
				nested := filepath.Join(tmp, "packages", "lib")
				mkdirs(t, filepath.Join(nested, "src"), filepath.Join(tmp, ".git"))
				touch(t, filepath.Join(nested, "go.work"))
				return filepath.Join(nested, "src")
			},
			wantDir:    func(tmp string) string { return filepath.Join(tmp, "packages", "lib") },
			wantMarker: "go.work",
		},
		{
			name: "project config stops the walk",
			setup: func(t *testing.T, tmp string) string {
				project := filepath.Join(tmp, "services", "api")
				mkdirs(t, filepath.Join(project, "config"), filepath.Join(tmp, ".git"))
				touch(t, filepath.Join(project, ProjectConfigFile))
				return filepath.Join(project, "config")
			},
			wantDir:    func(tmp string) string { return filepath.Join(tmp, "services", "api") },
			wantMarker: ProjectConfigFile,
		},
		{
			name: "config beats git in the same directory",
			setup: func(t *testing.T, tmp string) string {
				mkdirs(t, filepath.Join(tmp, ".git"))
				touch(t, filepath.Join(tmp, ProjectConfigFile))
				return tmp
			},
			wantDir:    func(tmp string) string { return tmp },
			wantMarker: ProjectConfigFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := t.TempDir()
			start := tt.setup(t, tmp)

			root, err := FindRoot(start)
			if err != nil {
				t.Fatalf("FindRoot: %v", err)
			}
			if root.Dir != tt.wantDir(tmp) {
				t.Errorf("Dir = %q, want %q", root.Dir, tt.wantDir(tmp))
			}
			if root.Marker != tt.wantMarker {
				t.Errorf("Marker = %q, want %q", root.Marker, tt.wantMarker)
			}
			if !root.Found() {
				t.Error("Found() = false")
			}
		})
	}
}

func TestFindRootWithoutMarker(t *testing.T) {
	tmp := t.TempDir()

	root, err := FindRoot(tmp)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if root.Found() {
		// A marker above the temp dir (e.g. a repository checkout) is possible
		// on some machines; only the no-marker case is checked here.
		t.Skipf("marker %s found above %s", root.Marker, tmp)
	}
	if root.Dir != tmp {
		t.Errorf("Dir = %q, want %q", root.Dir, tmp)
	}
	if root.Describe() != "directory" {
		t.Errorf("Describe() = %q", root.Describe())
	}
}

func TestRootDescribe(t *testing.T) {
	for _, tt := range []struct {
		marker string
		want   string
	}{
		{"", "directory"},
		{".git", "git repository"},
		{"go.work", "go workspace"},
		{ProjectConfigFile, "envdiff project"},
	} {
		if got := (Root{Marker: tt.marker}).Describe(); got != tt.want {
			t.Errorf("Describe(%q) = %q, want %q", tt.marker, got, tt.want)
		}
	}
}
