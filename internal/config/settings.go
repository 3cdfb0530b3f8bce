package config

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/xmazu/envdiff/internal/diff"
	"github.com/xmazu/envdiff/internal/storage"
	"github.com/xmazu/envdiff/internal/workspace"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Settings struct {
	Reveal     bool     `yaml:"reveal"`
	MaskChar   string   `yaml:"mask_char"`
	IgnoreKeys []string `yaml:"ignore_keys"`
	Output     string   `yaml:"output"`
}

type LoadOptions struct {
	// ProjectRoot is searched for .envdiff.yaml. Ignored when File is set.
	ProjectRoot string
	// File replaces the project settings file.
	File string
}

// Load reads the global settings and then the project settings on top of
// them; fields present in the later file win. It returns the files that were
// actually read.
func Load(opts LoadOptions) (*Settings, []string, error) {
	s := &Settings{Output: OutputText}
	var loaded []string

	found, err := storage.NewYAMLFile(GlobalPath()).LoadIfExists(s)
	if err != nil {
		return nil, nil, fmt.Errorf("load global config: %w", err)
	}
	if found {
		loaded = append(loaded, GlobalPath())
	}

	switch {
	case opts.File != "":
		if err := storage.NewYAMLFile(opts.File).Load(s); err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		loaded = append(loaded, opts.File)
	case opts.ProjectRoot != "":
		path := filepath.Join(opts.ProjectRoot, workspace.ProjectConfigFile)
		found, err := storage.NewYAMLFile(path).LoadIfExists(s)
		if err != nil {
			return nil, nil, fmt.Errorf("load project config: %w", err)
		}
		if found {
			loaded = append(loaded, path)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	return s, loaded, nil
}

func (s *Settings) Validate() error {
	switch s.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid output %q: must be %s or %s", s.Output, OutputText, OutputJSON)
	}
	if utf8.RuneCountInString(s.MaskChar) > 1 {
		return fmt.Errorf("invalid mask_char %q: must be a single character", s.MaskChar)
	}
	for _, p := range s.IgnoreKeys {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid ignore_keys pattern %q", p)
		}
	}
	return nil
}

func (s *Settings) Masker(reveal bool) diff.Masker {
	m := diff.Masker{Reveal: reveal}
	if r, _ := utf8.DecodeRuneInString(s.MaskChar); r != utf8.RuneError {
		m.Char = r
	}
	return m
}

// KeepKey reports whether key survives the ignore_keys patterns.
func (s *Settings) KeepKey(key string) bool {
	for _, p := range s.IgnoreKeys {
		if ok, _ := doublestar.Match(p, key); ok {
			return false
		}
	}
	return true
}
