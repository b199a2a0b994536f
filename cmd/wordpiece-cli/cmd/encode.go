package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prabhuomkar/libtokenizers/tokenizers/hftokenizer"
)

var (
	encodePairText       string
	encodeAddSpecial     bool
	encodeTruncateLength int
	encodePadLength      int
)

// encodingView is the JSON shape printed by `encode`: a flattened mirror of
// hftokenizer.Encoding with word ids rendered as *int so "no word" prints as
// null instead of 0.
type encodingView struct {
	IDs               []int          `json:"ids"`
	TypeIDs           []int          `json:"type_ids"`
	Tokens            []string       `json:"tokens"`
	Offsets           [][2]int       `json:"offsets"`
	WordIDs           []*int         `json:"word_ids"`
	SpecialTokensMask []int          `json:"special_tokens_mask"`
	AttentionMask     []int          `json:"attention_mask"`
	Overflowing       []encodingView `json:"overflowing,omitempty"`
}

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text into a token Encoding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := hftokenizer.NewFromFile(tokenizerPath)
		if err != nil {
			logger.Error("failed to load tokenizer", zap.String("path", tokenizerPath), zap.Error(err))
			return err
		}

		if encodeTruncateLength > 0 {
			tok.Truncation = &hftokenizer.Truncation{
				Direction: hftokenizer.TruncateRight,
				Strategy:  hftokenizer.LongestFirst,
				MaxLength: encodeTruncateLength,
			}
		}
		if encodePadLength > 0 {
			tok.Padding = &hftokenizer.Padding{
				Strategy:     hftokenizer.FixedLength,
				StrategySize: encodePadLength,
			}
		}

		var e hftokenizer.Encoding
		if encodePairText != "" {
			e = tok.EncodePair(args[0], encodePairText, encodeAddSpecial)
		} else {
			e = tok.Encode(args[0], encodeAddSpecial)
		}

		out, err := json.MarshalIndent(toEncodingView(e), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func toEncodingView(e hftokenizer.Encoding) encodingView {
	offsets := make([][2]int, len(e.Offsets))
	for i, o := range e.Offsets {
		offsets[i] = [2]int{o.Start, o.End}
	}
	overflow := make([]encodingView, len(e.Overflowing))
	for i, ov := range e.Overflowing {
		overflow[i] = toEncodingView(ov)
	}
	return encodingView{
		IDs:               e.IDs,
		TypeIDs:           e.TypeIDs,
		Tokens:            e.Tokens,
		Offsets:           offsets,
		WordIDs:           e.WordIDs,
		SpecialTokensMask: e.SpecialTokensMask,
		AttentionMask:     e.AttentionMask,
		Overflowing:       overflow,
	}
}

func init() {
	encodeCmd.Flags().StringVar(&encodePairText, "pair", "", "second sequence, for pair encoding")
	encodeCmd.Flags().BoolVar(&encodeAddSpecial, "add-special-tokens", true, "insert special tokens via the configured post-processor")
	encodeCmd.Flags().IntVar(&encodeTruncateLength, "truncate", 0, "truncate to this many tokens (0 disables)")
	encodeCmd.Flags().IntVar(&encodePadLength, "pad", 0, "pad to this many tokens (0 disables)")
}
