package hftokenizer

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// BertNormalizer implements the BERT-style normalization pipeline: cleaning
// control characters and whitespace, isolating CJK ideographs, stripping
// accents, and lowercasing, each stage updating the normalized text and its
// offset mapping atomically.
type BertNormalizer struct {
	CleanText          bool
	HandleChineseChars bool
	StripAccents       bool
	Lowercase          bool
}

// Normalize runs the configured stages over ns in order, returning a new
// NormalizedString whose Offsets always has one entry per code point of
// Normalized.
func (n *BertNormalizer) Normalize(ns NormalizedString) NormalizedString {
	if ns.PreNormalized {
		return ns
	}
	out := ns
	if n.CleanText {
		out = cleanText(out)
	}
	if n.HandleChineseChars {
		out = handleChineseChars(out)
	}
	if n.StripAccents {
		out = stripAccents(out)
	}
	if n.Lowercase {
		out = lowercaseNormalized(out)
	}
	return out
}

// cleanText drops U+0000, U+FFFD, and Unicode control characters (Cc, Cf,
// Cn, Co, excepting Tab/LF/CR), and replaces every other Unicode whitespace
// code point with an ASCII space. Deletions remove the offset entry;
// substitutions keep it.
func cleanText(ns NormalizedString) NormalizedString {
	runes := ns.codePoints()
	newRunes := make([]rune, 0, len(runes))
	newOffsets := make([]CodePointOffset, 0, len(runes))
	for i, r := range runes {
		if r == 0 || r == 0xFFFD || isControlRune(r) {
			continue
		}
		if isBertWhitespace(r) {
			r = ' '
		}
		newRunes = append(newRunes, r)
		newOffsets = append(newOffsets, ns.Offsets[i])
	}
	return NormalizedString{Normalized: string(newRunes), Offsets: newOffsets}
}

// handleChineseChars surrounds every CJK Unified Ideograph (blocks covering
// the base plane plus extensions A-G) with ASCII spaces. Each inserted
// space duplicates the adjacent offset entry so that both synthetic spaces
// map back to the same source code point as the ideograph they bracket.
func handleChineseChars(ns NormalizedString) NormalizedString {
	runes := ns.codePoints()
	newRunes := make([]rune, 0, len(runes)+2)
	newOffsets := make([]CodePointOffset, 0, len(runes)+2)
	for i, r := range runes {
		if isChineseChar(r) {
			newRunes = append(newRunes, ' ', r, ' ')
			newOffsets = append(newOffsets, ns.Offsets[i], ns.Offsets[i], ns.Offsets[i])
			continue
		}
		newRunes = append(newRunes, r)
		newOffsets = append(newOffsets, ns.Offsets[i])
	}
	return NormalizedString{Normalized: string(newRunes), Offsets: newOffsets}
}

// stripAccents runs NFD decomposition and drops combining marks (general
// category Mn). Offsets are carried from the nearest preceding source code
// point; for ASCII and Latin-script text NFD is a one-to-one or
// one-to-many expansion of a single source rune, which keeps this aligned.
func stripAccents(ns NormalizedString) NormalizedString {
	runes := ns.codePoints()
	newRunes := make([]rune, 0, len(runes))
	newOffsets := make([]CodePointOffset, 0, len(runes))
	for i, r := range runes {
		decomposed := norm.NFD.String(string(r))
		for _, dr := range decomposed {
			if unicode.Is(unicode.Mn, dr) {
				continue
			}
			newRunes = append(newRunes, dr)
			newOffsets = append(newOffsets, ns.Offsets[i])
		}
	}
	return NormalizedString{Normalized: string(newRunes), Offsets: newOffsets}
}

// lowercaseNormalized lowercases every code point. Length-preserving for
// the scripts this tokenizer targets, so offsets are untouched.
func lowercaseNormalized(ns NormalizedString) NormalizedString {
	runes := ns.codePoints()
	newRunes := make([]rune, len(runes))
	for i, r := range runes {
		newRunes[i] = unicode.ToLower(r)
	}
	return NormalizedString{Normalized: string(newRunes), Offsets: ns.Offsets}
}

// isControlRune reports whether r is a Unicode control character that
// clean_text should drop: general categories Cc, Cf, Cn, Co, except Tab,
// LF, and CR which are kept (and later folded to a space by
// isBertWhitespace's caller if they count as whitespace).
func isControlRune(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	if unicode.IsControl(r) {
		return true
	}
	if unicode.In(r, unicode.Cf, unicode.Co) {
		return true
	}
	// Cn (unassigned) has no dedicated unicode.RangeTable; approximate by
	// treating non-graphic, non-printable code points outside the named
	// categories above as unassigned.
	if !unicode.IsGraphic(r) && !unicode.IsSpace(r) {
		return true
	}
	return false
}

// isBertWhitespace reports whether r is a Unicode whitespace character that
// clean_text should fold to ASCII space.
func isBertWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return unicode.IsSpace(r)
}

// isChineseChar reports whether r falls in a CJK Unified Ideograph block,
// including extensions A through G.
func isChineseChar(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF, // CJK Unified Ideographs
		r >= 0x3400 && r <= 0x4DBF, // Extension A
		r >= 0x20000 && r <= 0x2A6DF, // Extension B
		r >= 0x2A700 && r <= 0x2B73F, // Extension C
		r >= 0x2B740 && r <= 0x2B81F, // Extension D
		r >= 0x2B820 && r <= 0x2CEAF, // Extension E
		r >= 0x2CEB0 && r <= 0x2EBEF, // Extension F
		r >= 0x30000 && r <= 0x3134F, // Extension G
		r >= 0xF900 && r <= 0xFAFF, // Compatibility Ideographs
		r >= 0x2F800 && r <= 0x2FA1F: // Compatibility Ideographs Supplement
		return true
	}
	return false
}
