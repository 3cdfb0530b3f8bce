package mcpserver

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/xmazu/envdiff/internal/config"
	"github.com/xmazu/envdiff/internal/loader"
	"github.com/xmazu/envdiff/internal/report"
)

type Options struct {
	Version  string
	Settings *config.Settings
	// AllowReveal lets callers ask for unmasked values.
	AllowReveal bool
	Logger      *log.Logger
}

type diffArgs struct {
	Paths  []string `json:"paths" jsonschema:".env files, directories or glob patterns to compare"`
	Reveal bool     `json:"reveal,omitempty" jsonschema:"return real values instead of masks (only honoured when the server was started with --reveal)"`
}

func NewServer(opts Options) *mcpsdk.Server {
	if opts.Settings == nil {
		opts.Settings = &config.Settings{Output: config.OutputJSON}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "envdiff",
		Version: opts.Version,
	}, nil)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "env_diff_summary",
		Description: "Compare .env files and report counts plus the keys that are missing from some files (incomplete) or have different values (diverging). Values are masked unless reveal is requested and allowed. Read-only.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, args diffArgs) (*mcpsdk.CallToolResult, any, error) {
		res, errRes := load(ctx, opts, args)
		if errRes != nil {
			return errRes, nil, nil
		}
		masker := opts.Settings.Masker(args.Reveal && opts.AllowReveal)
		return successResult(report.BuildSummary(res.Matrix, masker)), nil, nil
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "env_diff_matrix",
		Description: "Compare .env files and return the full key by file matrix with per-key missing files and a diverging flag. Values are masked unless reveal is requested and allowed. Read-only.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, args diffArgs) (*mcpsdk.CallToolResult, any, error) {
		res, errRes := load(ctx, opts, args)
		if errRes != nil {
			return errRes, nil, nil
		}
		masker := opts.Settings.Masker(args.Reveal && opts.AllowReveal)
		return successResult(report.BuildMatrix(res.Matrix, masker)), nil, nil
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "env_presence",
		Description: "Compare .env files and return, per key, the files that define it and the files that lack it. Never returns values.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, args diffArgs) (*mcpsdk.CallToolResult, any, error) {
		res, errRes := load(ctx, opts, args)
		if errRes != nil {
			return errRes, nil, nil
		}
		return successResult(report.BuildPresence(res.Matrix)), nil, nil
	})

	return server
}

func load(ctx context.Context, opts Options, args diffArgs) (*loader.Result, *mcpsdk.CallToolResult) {
	if len(args.Paths) == 0 {
		return nil, errorResult("paths is required")
	}
	res, err := loader.Load(ctx, loader.Request{
		Args:    args.Paths,
		KeepKey: opts.Settings.KeepKey,
		Logger:  opts.Logger,
	})
	if err != nil {
		return nil, errorResult(err.Error())
	}
	return res, nil
}

// Run serves the tools on stdio until ctx is cancelled or the client leaves.
func Run(ctx context.Context, opts Options) error {
	err := NewServer(opts).Run(ctx, &mcpsdk.StdioTransport{})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
