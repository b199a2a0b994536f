package hftokenizer

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/prabhuomkar/libtokenizers/tokenizers/api"
)

// normalizerStage is implemented by configured Normalizer variants. A nil
// value means the stage is a no-op.
type normalizerStage interface {
	Normalize(NormalizedString) NormalizedString
}

// preTokenizerStage is implemented by configured PreTokenizer variants. A
// nil value means the stage is a no-op (the normalized splits are fed to
// the model as single pieces).
type preTokenizerStage interface {
	PreTokenize(PreTokenized) PreTokenized
}

// postProcessorStage is implemented by configured PostProcessor variants.
// A nil value means special tokens are never inserted.
type postProcessorStage interface {
	ProcessEncodings([]Encoding) []Encoding
}

// decoderStage is implemented by configured Decoder variants. A nil value
// means tokens are concatenated with no transformation.
type decoderStage interface {
	DecodeChain(tokens []string) []string
}

// Tokenizer orchestrates the full pipeline: AddedVocabulary splitting,
// Normalizer, PreTokenizer, Model, PostProcessor, Decoder, plus the
// independently configurable Truncation and Padding utilities. Every field
// is treated as immutable after construction; a *Tokenizer may be shared
// across goroutines calling Encode/Decode concurrently.
type Tokenizer struct {
	Model           *WordPiece
	AddedVocabulary *AddedVocabulary
	Normalizer      normalizerStage
	PreTokenizer    preTokenizerStage
	PostProcessor   postProcessorStage
	Decoder         decoderStage

	// Truncation and Padding are not part of the tokenizer.json schema in
	// this library; they are ordinary exported fields left nil by
	// NewFromContent/NewFromFile and set explicitly by the caller.
	Truncation *Truncation
	Padding    *Padding
}

// Encode tokenizes a single input sequence into one Encoding, optionally
// truncating, inserting special tokens via the configured PostProcessor,
// and padding.
func (t *Tokenizer) Encode(text string, addSpecialTokens bool) Encoding {
	e := t.encodeSingleSequence(text)
	return t.finish([]Encoding{e}, addSpecialTokens)
}

// EncodePair tokenizes two input sequences into type-id 0 and type-id 1
// encodings before optional truncation, post-processing, and padding.
func (t *Tokenizer) EncodePair(first, second string, addSpecialTokens bool) Encoding {
	e1 := t.encodeSingleSequence(first)
	e2 := t.encodeSingleSequence(second)
	for i := range e2.TypeIDs {
		e2.TypeIDs[i] = 1
	}
	return t.finish([]Encoding{e1, e2}, addSpecialTokens)
}

// finish applies the shared tail of the pipeline (truncation, optional
// post-processing, padding, flatten) to one or two freshly tokenized
// encodings.
func (t *Tokenizer) finish(encodings []Encoding, addSpecialTokens bool) Encoding {
	if t.Truncation != nil {
		encodings = t.Truncation.TruncateEncodings(encodings)
	}
	if addSpecialTokens && t.PostProcessor != nil {
		encodings = t.PostProcessor.ProcessEncodings(encodings)
	}
	if t.Padding != nil {
		encodings = t.Padding.PadEncodings(encodings)
	}
	return concatEncodings(encodings)
}

// encodeSingleSequence runs one raw input string through
// AddedVocabulary.FindSplits, Normalizer, PreTokenizer, and Model,
// assembling the resulting tokens into a type-id-0 Encoding.
func (t *Tokenizer) encodeSingleSequence(text string) Encoding {
	ns := newIdentityNormalizedString(text)

	var splits []NormalizedString
	if t.AddedVocabulary != nil {
		splits = t.AddedVocabulary.FindSplits(ns)
	} else {
		splits = []NormalizedString{ns}
	}

	pieces := make([]piece, 0, len(splits))
	for _, split := range splits {
		if !split.PreNormalized && t.Normalizer != nil {
			split = t.Normalizer.Normalize(split)
		}
		if split.Normalized == "" {
			continue
		}
		pieces = append(pieces, pieceFromNormalizedString(split))
	}
	pt := PreTokenized{pieces: pieces}

	if t.PreTokenizer != nil {
		pt = t.PreTokenizer.PreTokenize(pt)
	}

	var tokens []Token
	var wordIndex []int
	wordCounter := -1
	for _, p := range pt.pieces {
		pieceTokens := t.Model.Tokenize(p)
		if len(pieceTokens) == 0 {
			continue
		}
		wordCounter++
		for range pieceTokens {
			wordIndex = append(wordIndex, wordCounter)
		}
		tokens = append(tokens, pieceTokens...)
	}

	return newEncodingFromTokens(tokens, wordIndex, 0)
}

// pieceFromNormalizedString turns a whole NormalizedString into one
// PreTokenized piece, the starting point before pre-tokenization splits it
// further.
func pieceFromNormalizedString(ns NormalizedString) piece {
	runes := ns.codePoints()
	return newPieceFromRunes(runes, ns.Offsets)
}

// Decode reverses an id sequence back to text: unknown ids are dropped
// silently, special tokens are optionally dropped, and the remaining
// tokens pass through the configured Decoder before concatenation.
func (t *Tokenizer) Decode(ids []int, skipSpecialTokens bool) string {
	tokens := make([]string, 0, len(ids))
	for _, id := range ids {
		tok, ok := t.Model.IDToToken(id)
		if !ok {
			continue
		}
		if skipSpecialTokens && t.AddedVocabulary != nil && t.AddedVocabulary.IsSpecialToken(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	if t.Decoder != nil {
		tokens = t.Decoder.DecodeChain(tokens)
	}
	out := ""
	for _, tok := range tokens {
		out += tok
	}
	return out
}

// VocabSize returns the combined size of the model vocabulary and the
// added vocabulary.
func (t *Tokenizer) VocabSize() int {
	return len(t.Model.Vocab) + len(t.AddedVocabulary.tokens)
}

// GetVocab returns a merged view of the model vocabulary and the added
// vocabulary (an added token's id takes precedence when its content is also
// a model vocabulary entry).
func (t *Tokenizer) GetVocab() map[string]int {
	vocab := make(map[string]int, t.VocabSize())
	for tok, id := range t.Model.Vocab {
		vocab[tok] = id
	}
	for _, at := range t.AddedVocabulary.tokens {
		vocab[at.Content] = at.ID
	}
	return vocab
}

// AddedTokensList returns the configured added tokens sorted by id.
func (t *Tokenizer) AddedTokensList() []AddedToken {
	out := append([]AddedToken(nil), t.AddedVocabulary.tokens...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TokenToID looks up a token's vocabulary id.
func (t *Tokenizer) TokenToID(s string) (int, bool) {
	if at, ok := t.AddedVocabulary.byContent[s]; ok {
		return at.ID, true
	}
	return t.Model.TokenToID(s)
}

// IDToToken looks up a vocabulary id's token string.
func (t *Tokenizer) IDToToken(id int) (string, bool) {
	for _, at := range t.AddedVocabulary.tokens {
		if at.ID == id {
			return at.Content, true
		}
	}
	return t.Model.IDToToken(id)
}

// SpecialTokenID resolves the configured id for a well-known special-token
// role, looking it up by its conventional BERT surface form (e.g. "[PAD]").
func (t *Tokenizer) SpecialTokenID(token api.SpecialToken) (int, error) {
	id, ok := t.TokenToID(token.String())
	if !ok {
		return 0, errors.Errorf("special token %s is not registered in this tokenizer's vocabulary", token.String())
	}
	return id, nil
}

// EncodeWithOffsets is a reduced view of Encode for callers that only need
// ids and byte offsets, not the full Encoding.
func (t *Tokenizer) EncodeWithOffsets(text string) api.EncodingResult {
	e := t.Encode(text, false)
	offsets := make([]api.TokenOffset, len(e.Offsets))
	for i, o := range e.Offsets {
		offsets[i] = api.TokenOffset{Start: o.Start, End: o.End}
	}
	return api.EncodingResult{IDs: e.IDs, Offsets: offsets}
}
