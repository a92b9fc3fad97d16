package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume record against the resume schema",
	Long:  "Checks that a ResumeData JSON file has the expected shape, list entries carry ids and enums hold known values.",
	RunE:  runValidate,
}

var (
	validateInput       string
	validatePrintSchema bool
	validateVerbose     bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "json", "j", "", "Path to ResumeData JSON file")
	validateCmd.Flags().BoolVar(&validatePrintSchema, "print-schema", false, "Print the embedded JSON schema and exit")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a summary of the record when it is valid")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if validatePrintSchema {
		_, _ = fmt.Fprintln(out, schemas.ResumeDataSchema())
		return nil
	}
	if validateInput == "" {
		return fmt.Errorf("--json is required")
	}

	content, err := os.ReadFile(validateInput)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", validateInput, err)
	}

	data, err := schemas.DecodeResume(content)
	if err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			_, _ = fmt.Fprintln(out, "Validation failed:")
			for _, fe := range ve.Errors {
				_, _ = fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
			}
		}
		return err
	}

	if validateVerbose {
		observability.NewPrinter(out).PrintResume(data)
	}
	_, _ = fmt.Fprintf(out, "Validation passed: %s\n", validateInput)
	return nil
}
