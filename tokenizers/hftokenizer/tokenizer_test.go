package hftokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhuomkar/libtokenizers/tokenizers/api"
)

var testTokenizerJSON = []byte(`{
  "version": "1.0",
  "added_tokens": [
    {"id": 0, "content": "[PAD]", "special_token": true},
    {"id": 1, "content": "[UNK]", "special_token": true},
    {"id": 2, "content": "[CLS]", "special_token": true},
    {"id": 3, "content": "[SEP]", "special_token": true},
    {"id": 4, "content": "[MASK]", "special_token": true},
    {"id": 20, "content": "India", "single_word": true, "special_token": false}
  ],
  "normalizer": {
    "type": "BertNormalizer",
    "clean_text": true,
    "handle_chinese_chars": true,
    "strip_accents": true,
    "lowercase": true
  },
  "pre_tokenizer": { "type": "BertPreTokenizer" },
  "post_processor": {
    "type": "TemplateProcessing",
    "single": [
      {"SpecialToken": {"id": "[CLS]", "type_id": 0}},
      {"Sequence": {"id": "A", "type_id": 0}},
      {"SpecialToken": {"id": "[SEP]", "type_id": 0}}
    ],
    "pair": [
      {"SpecialToken": {"id": "[CLS]", "type_id": 0}},
      {"Sequence": {"id": "A", "type_id": 0}},
      {"SpecialToken": {"id": "[SEP]", "type_id": 0}},
      {"Sequence": {"id": "B", "type_id": 1}},
      {"SpecialToken": {"id": "[SEP]", "type_id": 1}}
    ],
    "special_tokens": {
      "[CLS]": {"ids": [2]},
      "[SEP]": {"ids": [3]}
    }
  },
  "decoder": { "type": "WordPiece", "prefix": "##", "cleanup": true },
  "model": {
    "type": "WordPiece",
    "unk_token": "[UNK]",
    "continuing_subword_prefix": "##",
    "max_input_chars_per_word": 100,
    "vocab": {
      "[PAD]": 0, "[UNK]": 1, "[CLS]": 2, "[SEP]": 3, "[MASK]": 4,
      "hello": 5, "world": 6, "how": 7, "are": 8, "you": 9,
      "token": 10, "##izat": 11, "##ion": 12, "India": 20
    }
  }
}`)

func mustNewTestTokenizer(t *testing.T) *Tokenizer {
	t.Helper()
	tok, err := NewFromContent(testTokenizerJSON)
	require.NoError(t, err)
	return tok
}

func TestTokenizerEncodeSingleWithSpecialTokens(t *testing.T) {
	tok := mustNewTestTokenizer(t)

	e := tok.Encode("Hello World", true)

	assert.Equal(t, []int{2, 5, 6, 3}, e.IDs)
	assert.Equal(t, []int{0, 0, 0, 0}, e.TypeIDs)
	assert.Equal(t, []int{1, 0, 0, 1}, e.SpecialTokensMask)
	assert.Equal(t, []int{1, 1, 1, 1}, e.AttentionMask)
	require.Len(t, e.WordIDs, 4)
	assert.Nil(t, e.WordIDs[0])
	assert.Equal(t, 0, *e.WordIDs[1])
	assert.Equal(t, 1, *e.WordIDs[2])
	assert.Nil(t, e.WordIDs[3])
}

func TestTokenizerEncodeSingleWithoutSpecialTokens(t *testing.T) {
	tok := mustNewTestTokenizer(t)

	e := tok.Encode("Hello World", false)

	assert.Equal(t, []int{5, 6}, e.IDs)
}

func TestTokenizerEncodePair(t *testing.T) {
	tok := mustNewTestTokenizer(t)

	e := tok.EncodePair("hello", "world", true)

	assert.Equal(t, []int{2, 5, 3, 6, 3}, e.IDs)
	assert.Equal(t, []int{0, 0, 0, 1, 1}, e.TypeIDs)
}

func TestTokenizerEncodeWordPieceSplitting(t *testing.T) {
	tok := mustNewTestTokenizer(t)

	e := tok.Encode("tokenization", false)

	assert.Equal(t, []string{"token", "##izat", "##ion"}, e.Tokens)
	assert.Equal(t, 0, *e.WordIDs[0])
	assert.Equal(t, 0, *e.WordIDs[1])
	assert.Equal(t, 0, *e.WordIDs[2])
}

func TestTokenizerDecodeRoundTrip(t *testing.T) {
	tok := mustNewTestTokenizer(t)

	e := tok.Encode("how are you", false)
	decoded := tok.Decode(e.IDs, true)

	assert.Equal(t, "how are you", decoded)
}

func TestTokenizerDecodeSkipsSpecialTokens(t *testing.T) {
	tok := mustNewTestTokenizer(t)

	e := tok.Encode("hello world", true)
	withSpecial := tok.Decode(e.IDs, false)
	withoutSpecial := tok.Decode(e.IDs, true)

	assert.Contains(t, withSpecial, "[CLS]")
	assert.NotContains(t, withoutSpecial, "[CLS]")
	assert.Equal(t, "hello world", withoutSpecial)
}

func TestTokenizerDecodeSkipsUnknownIDsSilently(t *testing.T) {
	tok := mustNewTestTokenizer(t)
	decoded := tok.Decode([]int{5, 99999, 6}, false)
	assert.Equal(t, "hello world", decoded)
}

func TestTokenizerTruncateThenPadReachesExactLength(t *testing.T) {
	tok := mustNewTestTokenizer(t)
	tok.Truncation = &Truncation{Direction: TruncateRight, Strategy: LongestFirst, MaxLength: 4}
	tok.Padding = &Padding{Direction: PadRight, Strategy: FixedLength, StrategySize: 4, PadID: 0, PadToken: "[PAD]"}

	e := tok.Encode("hello world how are you", true)

	assert.Len(t, e.IDs, 4)
}

func TestTokenizerAddedVocabularyCarvesOutLiteralMatch(t *testing.T) {
	tok := mustNewTestTokenizer(t)

	e := tok.Encode("India is big", false)

	require.NotEmpty(t, e.Tokens)
	assert.Equal(t, "India", e.Tokens[0])
	assert.Equal(t, 20, e.IDs[0])
}

func TestTokenizerVocabSizeAndGetVocab(t *testing.T) {
	tok := mustNewTestTokenizer(t)

	assert.Equal(t, 14+6, tok.VocabSize())
	vocab := tok.GetVocab()
	assert.Equal(t, 5, vocab["hello"])
	assert.Equal(t, 20, vocab["India"])
}

func TestTokenizerTokenToIDAndIDToToken(t *testing.T) {
	tok := mustNewTestTokenizer(t)

	id, ok := tok.TokenToID("[CLS]")
	require.True(t, ok)
	assert.Equal(t, 2, id)

	str, ok := tok.IDToToken(2)
	require.True(t, ok)
	assert.Equal(t, "[CLS]", str)
}

func TestTokenizerSpecialTokenID(t *testing.T) {
	tok := mustNewTestTokenizer(t)

	id, err := tok.SpecialTokenID(api.TokClassification)
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	_, err = tok.SpecialTokenID(api.TokMask)
	require.NoError(t, err)
}

func TestEncodingLengthParity(t *testing.T) {
	tok := mustNewTestTokenizer(t)
	e := tok.Encode("hello world how are you", true)

	n := e.Len()
	assert.Len(t, e.TypeIDs, n)
	assert.Len(t, e.Tokens, n)
	assert.Len(t, e.Offsets, n)
	assert.Len(t, e.WordIDs, n)
	assert.Len(t, e.SpecialTokensMask, n)
	assert.Len(t, e.AttentionMask, n)
}

func TestOffsetContainment(t *testing.T) {
	tok := mustNewTestTokenizer(t)
	text := "hello world"
	e := tok.Encode(text, false)

	for _, o := range e.Offsets {
		assert.GreaterOrEqual(t, o.Start, 0)
		assert.LessOrEqual(t, o.End, len(text))
		assert.LessOrEqual(t, o.Start, o.End)
	}
}
