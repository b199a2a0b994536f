package hftokenizer

import "strings"

// cleanupReplacements are applied, in order, to each decoded token
// individually when Cleanup is enabled.
var cleanupReplacements = []struct{ from, to string }{
	{" .", "."},
	{" ?", "?"},
	{" !", "!"},
	{" ,", ","},
	{" ' ", "'"},
	{" n't", "n't"},
	{" 'm", "'m"},
	{" do not", "don't"},
	{" 's", "'s"},
	{" 've", "'ve"},
	{" 're", "'re"},
}

// WordPieceDecoder reverses a WordPiece token sequence back into readable
// text: continuing-subword tokens have their prefix stripped and are glued
// to the previous token, ordinary tokens get a leading space, and a fixed
// set of punctuation/contraction substitutions tidies the result.
type WordPieceDecoder struct {
	Prefix  string
	Cleanup bool
}

// newWordPieceDecoder applies the documented default prefix when the
// config leaves it unset.
func newWordPieceDecoder(prefix string, cleanup bool) *WordPieceDecoder {
	if prefix == "" {
		prefix = "##"
	}
	return &WordPieceDecoder{Prefix: prefix, Cleanup: cleanup}
}

// DecodeChain rewrites tokens into their final printable forms, in place
// conceptually: the caller concatenates the result without separators.
func (d *WordPieceDecoder) DecodeChain(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if i > 0 {
			if strings.HasPrefix(tok, d.Prefix) && d.Prefix != "" {
				tok = strings.TrimPrefix(tok, d.Prefix)
			} else {
				tok = " " + tok
			}
		}
		if d.Cleanup {
			for _, rep := range cleanupReplacements {
				tok = strings.ReplaceAll(tok, rep.from, rep.to)
			}
		}
		out[i] = tok
	}
	return out
}
