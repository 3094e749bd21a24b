package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"recovery-dashboard/internal/features/orders/adapters"
	"recovery-dashboard/internal/features/orders/domain"
	"recovery-dashboard/internal/features/orders/ports"
	"recovery-dashboard/internal/features/orders/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type processOptions struct {
	file      string
	today     string
	year      int
	top       int
	workers   int
	format    string
	delimiter string
	summary   bool
}

func newProcessCmd() *cobra.Command {
	opts := &processOptions{}

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Process an order export",
		Long: `Parses an order export, classifies every row and prints the resulting
snapshot. Use --file - to read from standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Export file to process, - for stdin (required)")
	cmd.Flags().StringVar(&opts.today, "today", "", "Reference date YYYY-MM-DD (default: current date)")
	cmd.Flags().IntVar(&opts.year, "year", domain.DefaultAssumedYear, "Year assumed for ETA tokens")
	cmd.Flags().IntVar(&opts.top, "top", domain.DefaultTopCustomers, "Number of top customers")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "Normalization workers")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "json", "Output format (json, yaml)")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", "auto", "Field delimiter (comma, tab, auto)")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print only the aggregates")

	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runProcess(cmd *cobra.Command, opts *processOptions) error {
	if opts.format != "json" && opts.format != "yaml" {
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	delim, err := adapters.DelimiterFromName(opts.delimiter)
	if err != nil {
		return err
	}

	clock := time.Now
	if opts.today != "" {
		day, err := time.ParseInLocation(time.DateOnly, opts.today, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --today %q: %w", opts.today, err)
		}
		clock = func() time.Time { return day }
	}

	var in io.Reader = cmd.InOrStdin()
	if opts.file != "-" {
		f, err := os.Open(opts.file)
		if err != nil {
			return fmt.Errorf("failed to open export: %w", err)
		}
		defer f.Close()
		in = f
	}

	pipeline := service.NewPipeline(adapters.NewDelimitedParser(), service.PipelineConfig{
		AssumedYear:  opts.year,
		TopCustomers: opts.top,
		Workers:      opts.workers,
	}).WithClock(clock)

	snapshot, err := pipeline.Process(cmd.Context(), in, opts.file, ports.ParseOptions{Delimiter: delim})
	if err != nil {
		return err
	}

	var out any = snapshot
	if opts.summary {
		out = snapshot.Aggregates
	}
	return render(cmd.OutOrStdout(), opts.format, out)
}

func render(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
