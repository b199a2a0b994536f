package hftokenizer

import (
	"sort"
	"unicode"

	goahocorasick "github.com/BobuSumisu/aho-corasick"
)

// AddedVocabulary recognizes literal added-token content in normalized text
// before the configured Normalizer/PreTokenizer/Model stages run, carving
// special and user-added tokens out of the input as whole segments.
type AddedVocabulary struct {
	tokens    []AddedToken
	byContent map[string]AddedToken
	trie      *goahocorasick.Trie
}

// newAddedVocabulary builds an Aho-Corasick automaton over every token's
// content once at construction, per spec.md's recommendation to avoid
// quadratic scanning when the added vocabulary grows large.
func newAddedVocabulary(tokens []AddedToken) *AddedVocabulary {
	av := &AddedVocabulary{
		tokens:    tokens,
		byContent: make(map[string]AddedToken, len(tokens)),
	}
	if len(tokens) == 0 {
		return av
	}
	patterns := make([]string, 0, len(tokens))
	for _, t := range tokens {
		av.byContent[t.Content] = t
		patterns = append(patterns, t.Content)
	}
	av.trie = goahocorasick.NewTrieBuilder().AddStrings(patterns).Build()
	return av
}

// IsSpecialToken reports whether s is the content of an added token with
// Special set.
func (av *AddedVocabulary) IsSpecialToken(s string) bool {
	t, ok := av.byContent[s]
	return ok && t.Special
}

// candidateMatch is one accepted (possibly lstrip/rstrip-extended)
// occurrence of an added token's content, in code-point index space.
type candidateMatch struct {
	start, stop int
	token       AddedToken
}

// FindSplits partitions ns at literal occurrences of added-token content,
// returning alternating non-matching spans (to be re-normalized by the
// caller) and matching spans (PreNormalized, carrying the matched token's
// Special flag). Overlapping candidate matches are resolved left-first,
// longest-second: sorted by start ascending then length descending, then
// accepted greedily in that order provided they don't overlap an already
// accepted match.
func (av *AddedVocabulary) FindSplits(ns NormalizedString) []NormalizedString {
	if av.trie == nil {
		return []NormalizedString{ns}
	}

	runes := ns.codePoints()
	bytePos := runeByteBoundaries(ns.Normalized, len(runes))

	matches := av.trie.MatchString(ns.Normalized)
	candidates := make([]candidateMatch, 0, len(matches))
	for _, m := range matches {
		tok, ok := av.byContent[string(m.Word())]
		if !ok {
			continue
		}
		start := byteToCodePointIndex(bytePos, m.Pos())
		stop := byteToCodePointIndex(bytePos, m.Pos()+len(m.Word()))

		if tok.SingleWord {
			leftOK := start == 0 || runes[start-1] == ' '
			rightOK := stop == len(runes) || runes[stop] == ' '
			if !leftOK || !rightOK {
				continue
			}
		}
		if tok.LStrip {
			for start > 0 && unicode.IsSpace(runes[start-1]) {
				start--
			}
		}
		if tok.RStrip {
			for stop < len(runes) && unicode.IsSpace(runes[stop]) {
				stop++
			}
		}
		candidates = append(candidates, candidateMatch{start: start, stop: stop, token: tok})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].start != candidates[j].start {
			return candidates[i].start < candidates[j].start
		}
		return (candidates[i].stop - candidates[i].start) > (candidates[j].stop - candidates[j].start)
	})

	var accepted []candidateMatch
	cursor := 0
	for _, c := range candidates {
		if c.start < cursor {
			continue
		}
		accepted = append(accepted, c)
		cursor = c.stop
	}

	if len(accepted) == 0 {
		return []NormalizedString{ns}
	}

	var out []NormalizedString
	pos := 0
	for _, c := range accepted {
		if c.start > pos {
			out = append(out, sliceNormalizedString(ns, pos, c.start, false, false))
		}
		out = append(out, sliceNormalizedString(ns, c.start, c.stop, true, c.token.Special))
		pos = c.stop
	}
	if pos < len(runes) {
		out = append(out, sliceNormalizedString(ns, pos, len(runes), false, false))
	}
	return out
}

// sliceNormalizedString cuts the code-point range [from, to) out of ns into
// a fresh NormalizedString, tagging it as pre-normalized/special per the
// caller's needs.
func sliceNormalizedString(ns NormalizedString, from, to int, preNormalized, special bool) NormalizedString {
	runes := ns.codePoints()
	offsets := make([]CodePointOffset, to-from)
	copy(offsets, ns.Offsets[from:to])
	return NormalizedString{
		Normalized:    string(runes[from:to]),
		Offsets:       offsets,
		PreNormalized: preNormalized,
		IsSpecial:     special,
	}
}

// runeByteBoundaries returns the byte offset of each of the n code points
// in s plus a final sentinel at len(s), so a byte position found by the
// Aho-Corasick scan can be mapped back to a code-point index.
func runeByteBoundaries(s string, n int) []int {
	bounds := make([]int, 0, n+1)
	for i := range s {
		bounds = append(bounds, i)
	}
	bounds = append(bounds, len(s))
	return bounds
}

// byteToCodePointIndex finds the code-point index whose byte offset equals
// bytePos via binary search over the sorted boundaries produced by
// runeByteBoundaries.
func byteToCodePointIndex(bounds []int, bytePos int) int {
	return sort.SearchInts(bounds, bytePos)
}
