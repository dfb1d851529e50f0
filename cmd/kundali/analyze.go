package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aristath/kundali/internal/config"
	"github.com/aristath/kundali/internal/evaluation/workers"
	"github.com/aristath/kundali/internal/modules/analysis"
	"github.com/aristath/kundali/internal/modules/chart"
	"github.com/aristath/kundali/internal/modules/strength"
	"github.com/aristath/kundali/internal/modules/tables"
	"github.com/aristath/kundali/internal/modules/yogas"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		inputPath  string
		outputPath string
		format     string
		ranked     bool
		lahiri     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build a chart from a JSON input and report its yogas",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.OutputFormat
			}
			switch format {
			case config.FormatJSON, config.FormatMsgpack:
			default:
				return fmt.Errorf("unsupported format: %q", format)
			}

			in, err := readInput(inputPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if lahiri {
				in.Ayanamsa = chart.LahiriAyanamsa(in.Birth)
			}

			svc, err := newService(a)
			if err != nil {
				return err
			}
			report, err := svc.Analyze(cmd.Context(), in)
			if err != nil {
				return err
			}
			if ranked {
				report.Findings = report.Ranked()
			}

			if outputPath != "" && outputPath != "-" {
				return writeReportFile(outputPath, report, format)
			}
			return writeReport(cmd.OutOrStdout(), report, format)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "chart input JSON file, - for stdin")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "report destination, - for stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "", "report format: json or msgpack (default KUNDALI_OUTPUT_FORMAT)")
	cmd.Flags().BoolVar(&ranked, "ranked", false, "order findings by strength score instead of evaluation order")
	cmd.Flags().BoolVar(&lahiri, "lahiri", false, "replace the input ayanamsa with the Lahiri value for the birth instant")
	return cmd
}

// newService wires the pipeline from configuration.
func newService(a *app) (*analysis.Service, error) {
	ref, err := tables.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load reference tables: %w", err)
	}

	registry := yogas.NewPopulatedRegistry(a.log)
	if a.cfg.Parallel {
		registry.SetPool(workers.NewWorkerPool(a.cfg.Workers))
	}

	return analysis.NewService(
		ref,
		chart.NewBuilder(ref, a.log, chart.WithDashaPeriods(a.cfg.MinDashaPeriods)),
		registry,
		strength.NewEngine(a.log, strength.WithSuppliedScale(a.cfg.StrengthScale)),
		a.log,
	), nil
}

func readInput(path string, stdin io.Reader) (chart.Input, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return chart.Input{}, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var in chart.Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return chart.Input{}, fmt.Errorf("failed to decode input: %w", err)
	}
	return in, nil
}

// writeReportFile writes the report to path. Flush and close failures are
// returned so a truncated report never passes as written.
func writeReportFile(path string, report *analysis.Report, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := writeReport(w, report, format); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return nil
}

func writeReport(w io.Writer, report *analysis.Report, format string) error {
	if format == config.FormatMsgpack {
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
