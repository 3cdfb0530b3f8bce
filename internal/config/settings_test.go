package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xmazu/envdiff/internal/workspace"
)

func writeYAML(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults without any file", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, t.TempDir())

		s, loaded, err := Load(LoadOptions{ProjectRoot: t.TempDir()})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(loaded) != 0 {
			t.Errorf("loaded = %v, want none", loaded)
		}
		if s.Output != OutputText || s.Reveal || len(s.IgnoreKeys) != 0 {
			t.Errorf("unexpected defaults: %+v", s)
		}
	})

	t.Run("project file overrides global", func(t *testing.T) {
		globalDir := t.TempDir()
		t.Setenv(ConfigDirEnv, globalDir)
		writeYAML(t, filepath.Join(globalDir, ConfigFileName), "mask_char: \"#\"\noutput: json\n")

		project := t.TempDir()
		writeYAML(t, filepath.Join(project, workspace.ProjectConfigFile), "output: text\nignore_keys: [\"*_TOKEN\"]\n")

		s, loaded, err := Load(LoadOptions{ProjectRoot: project})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(loaded) != 2 {
			t.Errorf("loaded = %v, want both files", loaded)
		}
		if s.Output != OutputText {
			t.Errorf("Output = %q, want project value", s.Output)
		}
		if s.MaskChar != "#" {
			t.Errorf("MaskChar = %q, want global value kept", s.MaskChar)
		}
		if len(s.IgnoreKeys) != 1 {
			t.Errorf("IgnoreKeys = %v", s.IgnoreKeys)
		}
	})

	t.Run("explicit file replaces project file", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, t.TempDir())

		project := t.TempDir()
		writeYAML(t, filepath.Join(project, workspace.ProjectConfigFile), "reveal: true\n")
		explicit := filepath.Join(t.TempDir(), "ci.yaml")
		writeYAML(t, explicit, "output: json\n")

		s, loaded, err := Load(LoadOptions{ProjectRoot: project, File: explicit})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if s.Reveal {
			t.Error("project file should not be read when File is set")
		}
		if s.Output != OutputJSON {
			t.Errorf("Output = %q, want json", s.Output)
		}
		if len(loaded) != 1 || loaded[0] != explicit {
			t.Errorf("loaded = %v, want [%s]", loaded, explicit)
		}
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, t.TempDir())

		_, _, err := Load(LoadOptions{File: filepath.Join(t.TempDir(), "nope.yaml")})
		if err == nil {
			t.Error("Load() should fail for missing explicit file")
		}
	})

	t.Run("invalid settings fail", func(t *testing.T) {
		for name, content := range map[string]string{
			"output":    "output: xml\n",
			"mask char": "mask_char: \"ab\"\n",
			"pattern":   "ignore_keys: [\"[\"]\n",
			"unknown":   "colour: red\n",
		} {
			t.Run(name, func(t *testing.T) {
				t.Setenv(ConfigDirEnv, t.TempDir())
				project := t.TempDir()
				writeYAML(t, filepath.Join(project, workspace.ProjectConfigFile), content)

				if _, _, err := Load(LoadOptions{ProjectRoot: project}); err == nil {
					t.Errorf("Load() should reject %q", content)
				}
			})
		}
	})
}

func TestSettingsKeepKey(t *testing.T) {
	s := &Settings{IgnoreKeys: []string{"*_TOKEN", "DEBUG"}}

	for _, tt := range []struct {
		key  string
		want bool
	}{
		{"API_TOKEN", false},
		{"DEBUG", false},
		{"DEBUG_LEVEL", true},
		{"DATABASE_URL", true},
	} {
		if got := s.KeepKey(tt.key); got != tt.want {
			t.Errorf("KeepKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestSettingsMasker(t *testing.T) {
	t.Run("default character", func(t *testing.T) {
		m := (&Settings{}).Masker(false)
		if got := m.Mask("secret"); got != "********" {
			t.Errorf("Mask() = %q", got)
		}
	})

	t.Run("configured character", func(t *testing.T) {
		m := (&Settings{MaskChar: "•"}).Masker(false)
		if got := m.Mask("secret"); got != "••••••••" {
			t.Errorf("Mask() = %q", got)
		}
	})

	t.Run("reveal", func(t *testing.T) {
		m := (&Settings{MaskChar: "#"}).Masker(true)
		if got := m.Mask("secret"); got != "secret" {
			t.Errorf("Mask() = %q, want value unchanged", got)
		}
	})
}
