// Package loader runs the read-only pipeline shared by the CLI and the MCP
// server: resolve paths, read files, compare, filter and lay out the matrix.
package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/xmazu/envdiff/internal/diff"
	"github.com/xmazu/envdiff/internal/envfile"
	"github.com/xmazu/envdiff/internal/workspace"
)

var ErrNoInputFiles = errors.New("no .env files found in the provided paths")

type Request struct {
	// Args are files, directories or glob patterns.
	Args []string
	// KeepKey filters keys after comparison. Nil keeps everything.
	KeepKey func(key string) bool
	Logger  *log.Logger
}

type Result struct {
	// Paths lists every file that was read, including files without keys.
	Paths  []string
	Matrix diff.Matrix
}

func Load(ctx context.Context, req Request) (*Result, error) {
	logger := req.Logger
	if logger == nil {
		logger = log.Default()
	}

	paths, err := workspace.ExpandPaths(req.Args)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrNoInputFiles
	}
	logger.Debug("resolved input files", "count", len(paths), "paths", paths)

	return LoadFiles(ctx, paths, req.KeepKey, logger)
}

// LoadFiles is Load for paths that are already resolved.
func LoadFiles(ctx context.Context, paths []string, keep func(string) bool, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.Default()
	}

	sources, err := envfile.ReadSources(ctx, paths)
	if err != nil {
		return nil, err
	}

	vm, err := diff.Compare(sources)
	if err != nil {
		return nil, err
	}
	logger.Debug("compared files", "keys", vm.Len(), "files", len(vm.Files()))

	if keep != nil {
		before := vm.Len()
		vm = vm.Filter(keep)
		logger.Debug("applied ignore_keys", "dropped", before-vm.Len())
		if vm.Len() == 0 {
			return nil, fmt.Errorf("all keys ignored: %w", diff.ErrNoVariablesFound)
		}
	}

	return &Result{Paths: paths, Matrix: diff.BuildMatrix(vm)}, nil
}
