// Command stdcell generates standard-cell layouts.
//
//	stdcell transistor --type nmos --width 2 --folding 2 -o nmos.gds
//	stdcell inverter --wn 2 --wp 4 --fp 2 -f svg -o inv.svg
//	stdcell batch regress.yaml -o regress.gds --cdl regress.cdl
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "stdcell"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Standard-cell layout generator",
		Long: `stdcell builds the mask layout of MOS transistors and CMOS inverters
from electrical parameters and a process design rule table, and writes
them as GDSII, SVG or PNG.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&g.process, "process", "p", "", "registered process rule table (default gf180mcu)")
	f.StringVar(&g.rulesPath, "rules", "", "YAML rule table overriding the process defaults")
	f.StringVarP(&g.format, "format", "f", "", "output format: gds, svg, png (default from --output extension, else gds)")
	f.StringVarP(&g.output, "output", "o", "-", "output file, - for stdout")
	f.StringVar(&g.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		transistorCmd(g),
		inverterCmd(g),
		batchCmd(g),
		processesCmd(),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}
