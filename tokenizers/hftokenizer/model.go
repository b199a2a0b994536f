package hftokenizer

import "strings"

// WordPiece implements the greedy longest-prefix-match subword model: each
// pre-tokenized piece is split into the longest known vocabulary prefixes,
// subsequent pieces prefixed with ContinuingSubwordPrefix, falling back to
// a single UnkToken when no valid split exists.
type WordPiece struct {
	Vocab                   map[string]int
	reverseVocab            map[int]string
	UnkToken                string
	ContinuingSubwordPrefix string
	MaxInputCharsPerWord    int
}

// newWordPiece builds the reverse id->token lookup once, applying the
// documented defaults for fields left unset by the config.
func newWordPiece(vocab map[string]int, unkToken, prefix string, maxChars int) *WordPiece {
	if prefix == "" {
		prefix = "##"
	}
	if maxChars == 0 {
		maxChars = 100
	}
	reverse := make(map[int]string, len(vocab))
	for tok, id := range vocab {
		reverse[id] = tok
	}
	return &WordPiece{
		Vocab:                   vocab,
		reverseVocab:            reverse,
		UnkToken:                unkToken,
		ContinuingSubwordPrefix: prefix,
		MaxInputCharsPerWord:    maxChars,
	}
}

// Tokenize applies the greedy longest-prefix match to one pre-tokenized
// piece, emitting tokens with offsets computed from the piece's
// per-code-point offset array so multi-byte code points stay byte-accurate.
func (w *WordPiece) Tokenize(p piece) []Token {
	runes := []rune(p.text)
	n := len(runes)
	if n == 0 {
		return nil
	}
	if n > w.MaxInputCharsPerWord {
		return []Token{w.unkToken(p.byteOffset)}
	}

	var tokens []Token
	start := 0
	bad := false
	for start < n {
		end := n
		var matched string
		matchedEnd := -1
		for end > start {
			candidate := string(runes[start:end])
			if start > 0 {
				candidate = w.ContinuingSubwordPrefix + candidate
			}
			if _, ok := w.Vocab[candidate]; ok {
				matched = candidate
				matchedEnd = end
				break
			}
			end--
		}
		if matchedEnd == -1 {
			bad = true
			break
		}
		tokens = append(tokens, Token{
			Value:               matched,
			ID:                  w.Vocab[matched],
			Offsets:             CodePointOffset{Start: p.charOffsets[start].Start, End: p.charOffsets[matchedEnd-1].End},
			IsContinuingSubword: start > 0,
		})
		start = matchedEnd
	}

	if bad {
		return []Token{w.unkToken(CodePointOffset{Start: p.charOffsets[start].Start, End: p.byteOffset.End})}
	}
	return tokens
}

// unkToken builds the synthetic unknown token covering the given byte span.
func (w *WordPiece) unkToken(offset CodePointOffset) Token {
	id := w.Vocab[w.UnkToken]
	return Token{Value: w.UnkToken, ID: id, Offsets: offset}
}

// IDToToken returns the vocabulary string for id, or ("", false) if id is
// not present (callers skip such ids silently on decode).
func (w *WordPiece) IDToToken(id int) (string, bool) {
	tok, ok := w.reverseVocab[id]
	return tok, ok
}

// TokenToID returns the vocabulary id for s, or (0, false) if s is not a
// known token.
func (w *WordPiece) TokenToID(s string) (int, bool) {
	id, ok := w.Vocab[s]
	return id, ok
}

// isContinuingSubwordToken reports whether tok starts with the
// continuing-subword prefix.
func (w *WordPiece) isContinuingSubwordToken(tok string) bool {
	return strings.HasPrefix(tok, w.ContinuingSubwordPrefix) && w.ContinuingSubwordPrefix != ""
}
