package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kindkeeper/kindkeeper/internal/intent"
	"github.com/kindkeeper/kindkeeper/speech/classify"
)

var classifyCmd = &cobra.Command{
	Use:     "classify TEXT",
	Short:   "Show how a response would be classified",
	Long:    paragraph(fmt.Sprintf("\n%s a response the way the speech pipeline would: its kind, the emotion it will be voiced with, and whether its audio is worth caching.", keyword("Classify"))),
	Example: paragraph("kindkeeper classify \"You paid 500 rupees to the maid.\""),
	Args:    cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		result := classify.Classify(strings.Join(args, " "))
		fmt.Printf("kind:      %s\n", result.Kind)
		fmt.Printf("emotion:   %s\n", result.Emotion)
		fmt.Printf("cacheable: %v\n", result.Cacheable)
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:     "parse TEXT",
	Short:   "Extract intent, amount and category from an utterance",
	Long:    paragraph(fmt.Sprintf("\n%s a transcribed utterance: whether it records a transaction, sets a reminder or asks a question, plus any amount and expense category it mentions.", keyword("Parse"))),
	Example: paragraph("kindkeeper parse \"I gave the maid two thousand yesterday\""),
	Args:    cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		result := intent.Parse(strings.Join(args, " "))
		fmt.Printf("intent:   %s\n", result.Kind)
		if result.HasAmount {
			fmt.Printf("amount:   ₹%s\n", result.Amount)
		}
		if result.Category != "" {
			fmt.Printf("category: %s\n", result.Category)
		}
		return nil
	},
}
