// Command timecard processes scanned timesheets from the command line: it
// runs the local Tesseract analyzer over an image (or replays a saved block
// list) and writes the interpreted summary as JSON or as an .xlsx workbook.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/delamyth/timecard/analyze"
	"github.com/delamyth/timecard/analyze/tesseract"
	"github.com/delamyth/timecard/export"
	"github.com/delamyth/timecard/imaging"
	"github.com/delamyth/timecard/observability"
	"github.com/delamyth/timecard/observability/zaplog"
	"github.com/delamyth/timecard/timesheet"
)

var (
	outputPath string
	pretty     bool
	verbose    bool
	languages  []string

	logger observability.Logger = observability.NopLogger{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "timecard",
		Short: "Interpret scanned paper timesheets",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			zl, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = zaplog.New(zl)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout; .xlsx writes a workbook)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	processCmd := &cobra.Command{
		Use:   "process [image]",
		Short: "Run OCR and interpretation over a scanned timesheet image",
		Args:  cobra.ExactArgs(1),
		RunE:  runProcess,
	}
	processCmd.Flags().StringSliceVar(&languages, "lang", []string{"eng"}, "OCR language hints")

	interpretCmd := &cobra.Command{
		Use:   "interpret [blocks.json]",
		Short: "Interpret a saved document-analysis block list",
		Args:  cobra.ExactArgs(1),
		RunE:  runInterpret,
	}

	rootCmd.AddCommand(processCmd, interpretCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runProcess(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	normalized, err := imaging.Normalize(data)
	if err != nil {
		return fmt.Errorf("normalize image: %w", err)
	}

	input := imaging.ToInput(args[0], normalized, analyze.WithLanguages(languages...))
	analysis, err := tesseract.NewAnalyzer().Analyze(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("analyze document: %w", err)
	}
	return interpretAndWrite(cmd.Context(), analysis)
}

func runInterpret(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read blocks: %w", err)
	}
	var analysis analyze.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return fmt.Errorf("decode blocks: %w", err)
	}
	return interpretAndWrite(cmd.Context(), analysis)
}

func interpretAndWrite(ctx context.Context, analysis analyze.Analysis) error {
	summary := timesheet.New(timesheet.WithLogger(logger)).Interpret(ctx, analysis)

	if strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		return export.WriteXLSX(f, summary)
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(summary, "", "  ")
	} else {
		data, err = json.Marshal(summary)
	}
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	data = append(data, '\n')

	if outputPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
