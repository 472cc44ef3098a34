package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/rubyunworks/tokere/core"
	"github.com/rubyunworks/tokere/markup"
	"github.com/rubyunworks/tokere/scan"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tokere",
		Short: "Scan text with the demo markup token set",
	}

	var traceLevel string
	var showTree bool
	parseCmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Scan a file (or stdin) and print the event trace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupTracing(traceLevel); err != nil {
				return err
			}
			input, err := readInput(args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			printer := markup.NewPrinter(os.Stdout)
			reg, err := scan.NewRegistry(printer.Attach(markup.AnyTag(), markup.Entity())...)
			if err != nil {
				core.UserError(err)
				return err
			}
			tree, err := scan.NewParser(reg, printer).Parse(string(input))
			if err != nil {
				core.UserError(err)
				return err
			}
			if showTree {
				fmt.Println("---")
				tree.Outline(os.Stdout)
			}
			return nil
		},
	}
	parseCmd.Flags().StringVar(&traceLevel, "trace", "Error", "trace level [Debug|Info|Error]")
	parseCmd.Flags().BoolVar(&showTree, "tree", false, "dump the resulting tree")
	rootCmd.AddCommand(parseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.tokere.scan":   level,
		"trace.tokere.markup": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
