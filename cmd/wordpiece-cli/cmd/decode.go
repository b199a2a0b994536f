package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prabhuomkar/libtokenizers/tokenizers/hftokenizer"
)

var decodeSkipSpecial bool

var decodeCmd = &cobra.Command{
	Use:   "decode [ids]",
	Short: "Decode a comma-separated list of token ids back into text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args[0])
		if err != nil {
			return err
		}

		tok, err := hftokenizer.NewFromFile(tokenizerPath)
		if err != nil {
			logger.Error("failed to load tokenizer", zap.String("path", tokenizerPath), zap.Error(err))
			return err
		}

		fmt.Println(tok.Decode(ids, decodeSkipSpecial))
		return nil
	},
}

func parseIDs(raw string) ([]int, error) {
	fields := strings.Split(raw, ",")
	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid token id %q: %w", f, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeSkipSpecial, "skip-special-tokens", false, "drop special tokens recognized by the added vocabulary")
}
