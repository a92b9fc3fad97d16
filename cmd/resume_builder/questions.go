package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/guidance"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the guided questions and tips for a resume type",
	RunE:  runQuestions,
}

var questionsType string

func init() {
	questionsCmd.Flags().StringVar(&questionsType, "type", string(types.DefaultResumeType), "Resume type: job, internship or hackathon")
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	t := types.ResumeType(questionsType)
	if !t.IsValid() {
		return fmt.Errorf("unknown resume type %q", questionsType)
	}

	out := cmd.OutOrStdout()
	qs := guidance.QuestionsFor(t)
	for _, sec := range guidance.Sections() {
		_, _ = fmt.Fprintf(out, "%s\n", sec.Title)
		for _, q := range qs[sec.Key] {
			_, _ = fmt.Fprintf(out, "  - %s\n", q)
		}
		_, _ = fmt.Fprintln(out)
	}
	_, _ = fmt.Fprintf(out, "Projects tip: %s\n", guidance.ProjectsTip(t))
	_, _ = fmt.Fprintf(out, "Achievements tip: %s\n", guidance.AchievementsTip(t))
	return nil
}
