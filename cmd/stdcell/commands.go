package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/stdcell"
	"github.com/gogpu/stdcell/drt"
	"github.com/gogpu/stdcell/pattern"
)

func transistorCmd(g *globals) *cobra.Command {
	var (
		typ     string
		width   float64
		folding int
	)
	cmd := &cobra.Command{
		Use:   "transistor",
		Short: "Build one transistor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := stdcell.ParseDeviceType(typ)
			if err != nil {
				return err
			}
			b, r, err := g.builder()
			if err != nil {
				return err
			}
			c, err := b.Transistor(stdcell.Transistor{Type: dt, GateWidth: width, Folding: folding})
			if err != nil {
				return err
			}
			return g.write(cmd, r, c)
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "nmos", "device type: nmos or pmos")
	cmd.Flags().Float64VarP(&width, "width", "w", 1, "total gate width in microns")
	cmd.Flags().IntVarP(&folding, "folding", "n", 1, "number of fingers")
	return cmd
}

func inverterCmd(g *globals) *cobra.Command {
	var (
		wn, wp float64
		fn, fp int
	)
	cmd := &cobra.Command{
		Use:   "inverter",
		Short: "Build a CMOS inverter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, r, err := g.builder()
			if err != nil {
				return err
			}
			c, err := b.Inverter(
				stdcell.Transistor{Type: stdcell.NMOS, GateWidth: wn, Folding: fn},
				stdcell.Transistor{Type: stdcell.PMOS, GateWidth: wp, Folding: fp},
			)
			if err != nil {
				return err
			}
			return g.write(cmd, r, c)
		},
	}
	cmd.Flags().Float64Var(&wn, "wn", 1, "pull-down gate width in microns")
	cmd.Flags().IntVar(&fn, "fn", 1, "pull-down fingers")
	cmd.Flags().Float64Var(&wp, "wp", 2, "pull-up gate width in microns")
	cmd.Flags().IntVar(&fp, "fp", 1, "pull-up fingers")
	return cmd
}

func batchCmd(g *globals) *cobra.Command {
	var (
		workers int
		cdlPath string
	)
	cmd := &cobra.Command{
		Use:   "batch PATTERN_FILE",
		Short: "Build every cell of a pattern file onto one grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			set, err := pattern.Load(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			b, r, err := g.builder()
			if err != nil {
				return err
			}
			top, err := pattern.Generate(cmd.Context(), b, set, pattern.WithWorkers(workers))
			if err != nil {
				return err
			}
			if err := g.write(cmd, r, top); err != nil {
				return err
			}
			if cdlPath == "" {
				return nil
			}
			return writeTo(cmd.OutOrStdout(), cdlPath, func(w io.Writer) error {
				return pattern.WriteCDL(w, r, set)
			})
		},
	}
	cmd.Flags().IntVarP(&workers, "jobs", "j", 0, "cells built in parallel (default GOMAXPROCS)")
	cmd.Flags().StringVar(&cdlPath, "cdl", "", "also write a CDL netlist to this file")
	return cmd
}

func processesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "processes",
		Short: "List registered process rule tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PROCESS\tGATE LENGTH\tDESCRIPTION")
			for _, name := range drt.Processes() {
				r, err := drt.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%gµm\t%s\n", r.Process, r.GateLength, r.Description)
			}
			return tw.Flush()
		},
	}
}
