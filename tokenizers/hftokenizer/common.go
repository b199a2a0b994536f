// Package hftokenizer implements a WordPiece tokenizer compatible with
// HuggingFace's tokenizer.json format: added-vocabulary splitting,
// normalization, pre-tokenization, subword modeling, post-processing, plus
// the decoder and truncation/padding utilities that shape a final Encoding.
package hftokenizer

import "unicode/utf8"

// CodePointOffset is a byte-position range into the ORIGINAL user input,
// always aligned to Unicode code point boundaries. The zero value (0,0) is
// reserved for synthetic tokens such as special tokens and padding.
type CodePointOffset struct {
	Start int
	End   int
}

// NormalizedString carries a transformed Unicode string alongside a
// parallel per-code-point mapping back to the original input. Offsets[i] is
// the byte range in the original input that the i-th code point of
// Normalized originated from; len(Offsets) always equals the number of code
// points in Normalized.
//
// PreNormalized segments come from AddedVocabulary matching a literal
// token's content and must not be touched by the Normalizer.
type NormalizedString struct {
	Normalized    string
	Offsets       []CodePointOffset
	PreNormalized bool
	IsSpecial     bool
}

// newIdentityNormalizedString builds a NormalizedString for raw input text
// with a one-to-one offset mapping (every code point maps to its own byte
// span in the same string).
func newIdentityNormalizedString(text string) NormalizedString {
	offsets := make([]CodePointOffset, 0, len(text))
	for i, r := range text {
		n := utf8.RuneLen(r)
		offsets = append(offsets, CodePointOffset{Start: i, End: i + n})
	}
	return NormalizedString{Normalized: text, Offsets: offsets}
}

// codePoints returns the NormalizedString's text as a rune slice, matching
// the length of Offsets one-for-one.
func (ns NormalizedString) codePoints() []rune {
	return []rune(ns.Normalized)
}

// piece is one element of a PreTokenized sequence: a substring of a
// normalized input, its per-code-point offsets (inherited unchanged from
// the NormalizedString it was cut from), and the resulting byte span in the
// original input.
type piece struct {
	text        string
	charOffsets []CodePointOffset
	byteOffset  CodePointOffset
}

// PreTokenized is the ordered sequence of coarse word-like pieces produced
// by a PreTokenizer, ready for per-piece subword modeling.
type PreTokenized struct {
	pieces []piece
}

// newPieceFromRunes builds a piece from a run of code points plus their
// parallel offsets, computing the piece's overall byte span from the first
// and last code point's offsets.
func newPieceFromRunes(runes []rune, offsets []CodePointOffset) piece {
	text := string(runes)
	if len(offsets) == 0 {
		return piece{text: text}
	}
	return piece{
		text:        text,
		charOffsets: offsets,
		byteOffset:  CodePointOffset{Start: offsets[0].Start, End: offsets[len(offsets)-1].End},
	}
}

// Token is a single emitted subword: its surface form, vocabulary id, byte
// offsets into the original input, and whether it is a continuation
// subword (rendered with the continuing-subword prefix, e.g. "##").
type Token struct {
	Value               string
	ID                  int
	Offsets             CodePointOffset
	IsContinuingSubword bool
}

// Encoding is the full aligned output of tokenizing one or two input
// sequences: seven parallel arrays of identical length plus any
// Overflowing fragments produced by truncation.
type Encoding struct {
	IDs               []int
	TypeIDs           []int
	Tokens            []string
	Offsets           []CodePointOffset
	WordIDs           []*int
	SpecialTokensMask []int
	AttentionMask     []int
	Overflowing       []Encoding
}

// Len returns the number of tokens in the encoding (the shared length of
// its seven parallel arrays).
func (e *Encoding) Len() int {
	return len(e.IDs)
}

// newEncodingFromTokens builds an Encoding from a token slice, assigning
// WordIDs so that every token within the same pre-tokenized piece index
// shares one word id, and marking all tokens as ordinary (non-special,
// fully attended).
func newEncodingFromTokens(tokens []Token, wordIndex []int, typeID int) Encoding {
	n := len(tokens)
	e := Encoding{
		IDs:               make([]int, n),
		TypeIDs:           make([]int, n),
		Tokens:            make([]string, n),
		Offsets:           make([]CodePointOffset, n),
		WordIDs:           make([]*int, n),
		SpecialTokensMask: make([]int, n),
		AttentionMask:     make([]int, n),
	}
	for i, tok := range tokens {
		e.IDs[i] = tok.ID
		e.TypeIDs[i] = typeID
		e.Tokens[i] = tok.Value
		e.Offsets[i] = tok.Offsets
		wi := wordIndex[i]
		e.WordIDs[i] = &wi
		e.SpecialTokensMask[i] = 0
		e.AttentionMask[i] = 1
	}
	return e
}

// newSpecialTokenEncoding builds the one-element synthetic Encoding emitted
// for a SpecialToken post-processing directive.
func newSpecialTokenEncoding(id int, tokenStr string, typeID int) Encoding {
	return Encoding{
		IDs:               []int{id},
		TypeIDs:           []int{typeID},
		Tokens:            []string{tokenStr},
		Offsets:           []CodePointOffset{{}},
		WordIDs:           []*int{nil},
		SpecialTokensMask: []int{1},
		AttentionMask:     []int{1},
	}
}

// concatEncodings flattens a list of encodings into one by concatenating
// all seven primary arrays in order. Overflowing fragments on the inputs
// are not propagated.
func concatEncodings(parts []Encoding) Encoding {
	var out Encoding
	for _, p := range parts {
		out.IDs = append(out.IDs, p.IDs...)
		out.TypeIDs = append(out.TypeIDs, p.TypeIDs...)
		out.Tokens = append(out.Tokens, p.Tokens...)
		out.Offsets = append(out.Offsets, p.Offsets...)
		out.WordIDs = append(out.WordIDs, p.WordIDs...)
		out.SpecialTokensMask = append(out.SpecialTokensMask, p.SpecialTokensMask...)
		out.AttentionMask = append(out.AttentionMask, p.AttentionMask...)
	}
	return out
}

// AddedToken describes one entry in the added vocabulary: a literal string
// that is recognized before normalization. A matched span skips the
// Normalizer but still passes through the PreTokenizer and Model, so its
// encoded id is the model vocabulary's id for that text, not ID.
type AddedToken struct {
	ID         int
	Content    string
	SingleWord bool
	LStrip     bool
	RStrip     bool
	Normalized bool
	Special    bool
}
