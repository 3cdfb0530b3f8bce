package envfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Source is the raw content of one .env file, identified by Name (usually
// the path it was read from).
type Source struct {
	Name    string
	Content string
}

// Lines returns the assignments of the source in file order. Lines have no
// length limit.
func (s Source) Lines() []Line {
	return parseContent(s.Content)
}

// Parse reads all of r and returns every assignment found. Lines that are
// not assignments are dropped.
func Parse(r io.Reader) ([]Line, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return parseContent(string(data)), nil
}

func parseContent(content string) []Line {
	var lines []Line
	for raw := range strings.Lines(content) {
		if line, ok := ParseLine(raw); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// ReadSources loads every path concurrently. The result has the same order
// as paths.
func ReadSources(ctx context.Context, paths []string) ([]Source, error) {
	sources := make([]Source, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(runtime.NumCPU(), 2))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			sources[i] = Source{Name: path, Content: string(data)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sources, nil
}
