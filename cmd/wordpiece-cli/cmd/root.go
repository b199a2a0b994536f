// Package cmd provides the CLI commands for wordpiece-cli.
package cmd

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

var (
	// tokenizerPath is the shared --tokenizer flag: path to a tokenizer.json
	// config file.
	tokenizerPath string

	// logger reports startup/construction failures; CLI user-facing output
	// (encodings, decoded text) always goes to stdout, never through it.
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "wordpiece-cli",
	Short: "Encode and decode text with a WordPiece tokenizer",
	Long: `wordpiece-cli is a command-line tool around the hftokenizer library.

It loads a tokenizer.json configuration (the five-stage added-vocabulary /
normalizer / pre-tokenizer / model / post-processor pipeline) and exposes:

  - encode: turn text into token ids, types, offsets, and masks
  - decode: turn token ids back into text
  - vocab:  inspect the configured vocabulary`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = zap.NewDevelopment()
		return err
	},
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&tokenizerPath, "tokenizer", "t", "tokenizer.json", "path to a tokenizer.json config file")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(versionCmd)
}
