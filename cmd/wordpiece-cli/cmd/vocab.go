package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prabhuomkar/libtokenizers/tokenizers/hftokenizer"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print the tokenizer's vocabulary size and added tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := hftokenizer.NewFromFile(tokenizerPath)
		if err != nil {
			logger.Error("failed to load tokenizer", zap.String("path", tokenizerPath), zap.Error(err))
			return err
		}

		fmt.Printf("vocab size: %d\n", tok.VocabSize())

		added := tok.AddedTokensList()
		if len(added) == 0 {
			return nil
		}
		sort.Slice(added, func(i, j int) bool { return added[i].ID < added[j].ID })
		fmt.Println("added tokens:")
		for _, t := range added {
			fmt.Printf("  %5d  %-20s special=%v single_word=%v lstrip=%v rstrip=%v\n",
				t.ID, t.Content, t.Special, t.SingleWord, t.LStrip, t.RStrip)
		}
		return nil
	},
}
