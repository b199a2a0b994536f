// Package api defines small shared types used by hftokenizer's public
// surface, kept in their own package so neither it nor its consumers (the
// CLI) need to import hftokenizer's internal pipeline types.
package api

// TokenOffset represents the byte span of a token in the original text.
// This is useful for token classification tasks (NER, chunking) where you
// need to map token predictions back to byte positions in the original
// text.
type TokenOffset struct {
	Start int // start byte position (inclusive)
	End   int // end byte position (exclusive)
}

// EncodingResult contains tokens with their offsets, a reduced view of a
// full hftokenizer.Encoding for callers that only need ids and spans.
type EncodingResult struct {
	IDs     []int         // token IDs
	Offsets []TokenOffset // byte offsets for each token
}

// SpecialToken is an enum of commonly used special tokens, used to resolve
// a tokenizer's configured id for a well-known role without hard-coding
// the underlying vocabulary string (e.g. "[PAD]" vs "<pad>").
type SpecialToken int

const (
	TokUnknown SpecialToken = iota
	TokPad
	TokClassification
	TokSeparator
	TokMask
)

// String returns the conventional BERT-style surface form for tok.
func (tok SpecialToken) String() string {
	switch tok {
	case TokUnknown:
		return "[UNK]"
	case TokPad:
		return "[PAD]"
	case TokClassification:
		return "[CLS]"
	case TokSeparator:
		return "[SEP]"
	case TokMask:
		return "[MASK]"
	default:
		return ""
	}
}
