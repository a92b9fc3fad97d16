package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume record to HTML, LaTeX or PDF",
	Long:  "Validates a ResumeData JSON file against the resume schema and renders it in the requested format.",
	RunE:  runRender,
}

var (
	renderInput      string
	renderFormat     string
	renderOutput     string
	renderTemplate   string
	renderConfigFile string
	renderVerbose    bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to ResumeData JSON file (required)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "Output format: html, tex or pdf")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output file (required)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Custom LaTeX template (tex only)")
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to JSON config file (pdf only, optional)")

	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print a summary of the record and the export")

	_ = renderCmd.MarkFlagRequired("in")
	_ = renderCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	data, err := schemas.LoadResumeFile(renderInput)
	if err != nil {
		return err
	}

	var out []byte
	switch renderFormat {
	case "html":
		doc, err := export.New(nil).HTML(data)
		if err != nil {
			return fmt.Errorf("failed to render HTML: %w", err)
		}
		out = []byte(doc)
	case "tex":
		tex, err := export.New(nil).LaTeX(data, renderTemplate)
		if err != nil {
			return fmt.Errorf("failed to render LaTeX: %w", err)
		}
		out = []byte(tex)
	case "pdf":
		cfg, err := config.Load(renderConfigFile)
		if err != nil {
			return err
		}
		pdf, err := export.New(newRenderer(cfg)).PDF(context.Background(), renderInput, data)
		if err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
		out = pdf
	default:
		return fmt.Errorf("unknown format %q (want html, tex or pdf)", renderFormat)
	}

	outputDir := filepath.Dir(renderOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(renderOutput, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if renderVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintResume(data)
		printer.PrintExport(renderFormat, renderOutput, len(out))
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully rendered %s resume\n", renderFormat)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", renderOutput)
	return nil
}
