package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var adviseCmd = &cobra.Command{
	Use:   "advise <question>",
	Short: "Ask a free-form career question",
	Long: "Answer a career question with the model when a GEMINI_API_KEY is\n" +
		"set, or with general guidance otherwise.",
	Args: cobra.MinimumNArgs(1),
	RunE: runAdvise,
}

func init() {
	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("question is empty")
	}

	ctx := cmd.Context()
	generator := newGenerator(ctx)
	if generator.Client != nil {
		defer generator.Client.Close()
	}

	fmt.Println(generator.CareerAdvice(ctx, question))
	return nil
}
