package hftokenizer

import "testing"

func offsetsEqual(t *testing.T, got, want []CodePointOffset) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("offsets length = %d, want %d (%v vs %v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("offsets[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestBertNormalizerAllOptions exercises spec.md §8 scenario 1, with
// byte-accurate offsets for the real multi-byte UTF-8 encoding of
// "Café 中文" (é is 2 bytes, 中/文 are 3 bytes each) rather than the
// scenario's illustrative 1-byte-per-code-point numbers; DESIGN.md's Open
// Question resolution is that byte-accuracy governs over that arithmetic.
func TestBertNormalizerAllOptions(t *testing.T) {
	n := &BertNormalizer{CleanText: true, HandleChineseChars: true, StripAccents: true, Lowercase: true}
	ns := newIdentityNormalizedString("Café 中文")

	out := n.Normalize(ns)

	if out.Normalized != "cafe  中  文 " {
		t.Fatalf("normalized = %q, want %q", out.Normalized, "cafe  中  文 ")
	}
	want := []CodePointOffset{
		{0, 1}, {1, 2}, {2, 3}, {3, 5}, {5, 6}, {6, 9}, {6, 9}, {6, 9}, {9, 12}, {9, 12}, {9, 12},
	}
	offsetsEqual(t, out.Offsets, want)
}

func TestNormalizeLengthParity(t *testing.T) {
	n := &BertNormalizer{CleanText: true, HandleChineseChars: true, StripAccents: true, Lowercase: true}
	for _, s := range []string{"", "hello world", "Café 中文", " control​chars", "Déjà Vu"} {
		out := n.Normalize(newIdentityNormalizedString(s))
		if len([]rune(out.Normalized)) != len(out.Offsets) {
			t.Fatalf("input %q: len(normalized runes)=%d != len(offsets)=%d", s, len([]rune(out.Normalized)), len(out.Offsets))
		}
	}
}

func TestCleanTextDropsControlAndFoldsWhitespace(t *testing.T) {
	n := &BertNormalizer{CleanText: true}
	out := n.Normalize(newIdentityNormalizedString("a b\tc d"))
	if out.Normalized != "ab c d" {
		t.Fatalf("normalized = %q, want %q", out.Normalized, "ab c d")
	}
}

func TestHandleChineseCharsBracketsIdeographs(t *testing.T) {
	n := &BertNormalizer{HandleChineseChars: true}
	out := n.Normalize(newIdentityNormalizedString("a中b"))
	if out.Normalized != "a 中 b" {
		t.Fatalf("normalized = %q, want %q", out.Normalized, "a 中 b")
	}
}

func TestStripAccentsDropsCombiningMarks(t *testing.T) {
	n := &BertNormalizer{StripAccents: true}
	out := n.Normalize(newIdentityNormalizedString("café"))
	if out.Normalized != "cafe" {
		t.Fatalf("normalized = %q, want %q", out.Normalized, "cafe")
	}
}

func TestLowercasePreservesOffsets(t *testing.T) {
	n := &BertNormalizer{Lowercase: true}
	ns := newIdentityNormalizedString("HELLO")
	out := n.Normalize(ns)
	if out.Normalized != "hello" {
		t.Fatalf("normalized = %q, want hello", out.Normalized)
	}
	offsetsEqual(t, out.Offsets, ns.Offsets)
}

func TestNormalizeSkipsPreNormalizedSegments(t *testing.T) {
	n := &BertNormalizer{Lowercase: true}
	ns := NormalizedString{Normalized: "KEEP", Offsets: []CodePointOffset{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, PreNormalized: true}
	out := n.Normalize(ns)
	if out.Normalized != "KEEP" {
		t.Fatalf("pre-normalized segment was altered: %q", out.Normalized)
	}
}
