package hftokenizer

import (
	"strings"
	"testing"
)

func TestWordPieceDecoderJoinsContinuingSubwords(t *testing.T) {
	d := newWordPieceDecoder("##", false)
	out := d.DecodeChain([]string{"token", "##izat", "##ion"})
	if strings.Join(out, "") != "tokenization" {
		t.Fatalf("got %v, want tokenization", out)
	}
}

func TestWordPieceDecoderInsertsSpacesBetweenWords(t *testing.T) {
	d := newWordPieceDecoder("##", false)
	out := d.DecodeChain([]string{"hello", "world"})
	if strings.Join(out, "") != "hello world" {
		t.Fatalf("got %v, want hello world", out)
	}
}

// TestWordPieceDecoderPreservesPrefixAtIndexZero exercises
// original_source/tests/decoder_test.cc's WordPieceDecoderTest.AllOptions:
// the prefix is only stripped/space-prepended for i>0; a leading token that
// happens to start with the prefix passes through verbatim.
func TestWordPieceDecoderPreservesPrefixAtIndexZero(t *testing.T) {
	d := newWordPieceDecoder("##", false)
	out := d.DecodeChain([]string{"##uelo", "mundo"})
	if len(out) != 2 || out[0] != "##uelo" || out[1] != " mundo" {
		t.Fatalf("got %v, want [##uelo,  mundo]", out)
	}
}

func TestWordPieceDecoderCleanupPunctuationAndContractions(t *testing.T) {
	d := newWordPieceDecoder("##", true)
	cases := []struct {
		tokens []string
		want   string
	}{
		{[]string{"hello", ".", "how", "are", "you", "?"}, "hello. how are you?"},
		// Cleanup applies per-token, not to the concatenated text: " do not"
		// never occurs within a single token here, so it does not collapse
		// to "don't" the way naive whole-string replacement would.
		{[]string{"i", "do", "not", "know"}, "i do not know"},
		// Likewise " ' " spans the "'" and "s" tokens, not one token, so it
		// is left alone.
		{[]string{"it", "'", "s", "fine"}, "it ' s fine"},
		{[]string{"i", "'ve", "done", "it"}, "i've done it"},
		{[]string{"they", "'re", "here"}, "they're here"},
		{[]string{"can", "n't", "stop"}, "cann't stop"},
	}
	for _, c := range cases {
		out := d.DecodeChain(c.tokens)
		if got := strings.Join(out, ""); got != c.want {
			t.Fatalf("DecodeChain(%v) = %q, want %q", c.tokens, got, c.want)
		}
	}
}

func TestWordPieceDecoderDefaultPrefix(t *testing.T) {
	d := newWordPieceDecoder("", true)
	if d.Prefix != "##" {
		t.Fatalf("default prefix = %q, want ##", d.Prefix)
	}
}
