package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/stdcell"
	"github.com/gogpu/stdcell/drt"
	"github.com/gogpu/stdcell/export"
	"github.com/gogpu/stdcell/export/gds"
	_ "github.com/gogpu/stdcell/export/png"
	_ "github.com/gogpu/stdcell/export/svg"
	"github.com/gogpu/stdcell/layout"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	process   string
	rulesPath string
	format    string
	output    string
	logLevel  string

	logger *slog.Logger
}

func (g *globals) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	switch strings.ToLower(g.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "":
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", g.logLevel)
	}
	g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	stdcell.SetLogger(g.logger)
	return nil
}

// rules resolves --process and --rules into a rule table.
func (g *globals) rules() (*drt.Rules, error) {
	if g.rulesPath == "" {
		name := g.process
		if name == "" {
			name = drt.Default
		}
		return drt.Lookup(name)
	}

	f, err := os.Open(g.rulesPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := drt.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.rulesPath, err)
	}
	if g.process != "" {
		r.Process = g.process
	}
	return r, nil
}

func (g *globals) builder() (*stdcell.Builder, *drt.Rules, error) {
	r, err := g.rules()
	if err != nil {
		return nil, nil, err
	}
	b, err := stdcell.NewBuilder(stdcell.WithRules(r))
	if err != nil {
		return nil, nil, err
	}
	return b, r, nil
}

// exporter picks the format from --format or the output extension.
func (g *globals) exporter(r *drt.Rules) (export.Exporter, error) {
	name := g.format
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(g.output), ".")
		if !export.IsRegistered(name) {
			name = "gds"
		}
	}
	if name == "gds" {
		return gdsExporter(r), nil
	}
	return export.New(name)
}

// write exports c to --output.
func (g *globals) write(cmd *cobra.Command, r *drt.Rules, c *layout.Cell) error {
	e, err := g.exporter(r)
	if err != nil {
		return err
	}
	if err := writeTo(cmd.OutOrStdout(), g.output, func(w io.Writer) error {
		return e.Write(w, c)
	}); err != nil {
		return err
	}
	g.logger.Info("cell written", "cell", c.Name(), "output", g.output, "bbox", c.BBox().String())
	return nil
}

// writeTo runs fn on stdout for "-" or on a newly created file.
func writeTo(stdout io.Writer, path string, fn func(io.Writer) error) error {
	if path == "-" || path == "" {
		return fn(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func gdsExporter(r *drt.Rules) export.Exporter {
	return gds.New(gds.WithRules(r))
}
