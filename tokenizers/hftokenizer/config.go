package hftokenizer

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// tokenizerConfigJSON mirrors the tokenizer.json schema this library
// consumes: added tokens plus the five pluggable stage configurations.
// A normalizer, pre_tokenizer, post_processor or decoder field left null or
// carrying an unrecognized "type" builds a no-op stage rather than failing
// construction. The model has no no-op form: a model type other than
// "WordPiece" or a missing vocabulary fails construction.
type tokenizerConfigJSON struct {
	Version       string             `json:"version"`
	AddedTokens   []addedTokenJSON   `json:"added_tokens"`
	Normalizer    *normalizerJSON    `json:"normalizer"`
	PreTokenizer  *preTokenizerJSON  `json:"pre_tokenizer"`
	Model         modelJSON          `json:"model"`
	PostProcessor *postProcessorJSON `json:"post_processor"`
	Decoder       *decoderJSON       `json:"decoder"`
}

type addedTokenJSON struct {
	ID           int    `json:"id"`
	Content      string `json:"content"`
	SingleWord   bool   `json:"single_word"`
	LStrip       bool   `json:"lstrip"`
	RStrip       bool   `json:"rstrip"`
	Normalized   bool   `json:"normalized"`
	SpecialToken bool   `json:"special_token"`
}

type normalizerJSON struct {
	Type               string `json:"type"`
	CleanText          *bool  `json:"clean_text"`
	HandleChineseChars *bool  `json:"handle_chinese_chars"`
	StripAccents       *bool  `json:"strip_accents"`
	Lowercase          *bool  `json:"lowercase"`
}

type preTokenizerJSON struct {
	Type string `json:"type"`
}

type modelJSON struct {
	Type                    string         `json:"type"`
	Vocab                   map[string]int `json:"vocab"`
	UnkToken                string         `json:"unk_token"`
	ContinuingSubwordPrefix string         `json:"continuing_subword_prefix"`
	MaxInputCharsPerWord    int            `json:"max_input_chars_per_word"`
}

type postProcessorJSON struct {
	Type          string                          `json:"type"`
	Single        []templateItemJSON              `json:"single"`
	Pair          []templateItemJSON              `json:"pair"`
	SpecialTokens map[string]specialTokenInfoJSON `json:"special_tokens"`
}

type specialTokenInfoJSON struct {
	IDs []int `json:"ids"`
}

// templateItemJSON decodes one directive of a single/pair template list,
// each JSON object carrying exactly one of a "SpecialToken" or "Sequence"
// key.
type templateItemJSON struct {
	SpecialToken *templateRefJSON `json:"SpecialToken,omitempty"`
	Sequence     *templateRefJSON `json:"Sequence,omitempty"`
}

type templateRefJSON struct {
	ID     string `json:"id"`
	TypeID int    `json:"type_id"`
}

type decoderJSON struct {
	Type    string `json:"type"`
	Prefix  string `json:"prefix"`
	Cleanup *bool  `json:"cleanup"`
}

// NewFromFile reads the tokenizer.json file at path and builds a Tokenizer
// from its contents.
func NewFromFile(path string) (*Tokenizer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read tokenizer config %q", path)
	}
	return NewFromContent(content)
}

// NewFromContent parses raw tokenizer.json bytes and builds a Tokenizer.
// An empty or malformed config is a CONFIG_INVALID error.
func NewFromContent(content []byte) (*Tokenizer, error) {
	if len(content) == 0 {
		return nil, errors.New("tokenizer config is empty")
	}
	var cfg tokenizerConfigJSON
	if err := json.Unmarshal(content, &cfg); err != nil {
		return nil, errors.Wrap(err, "invalid tokenizer config JSON")
	}
	if cfg.Model.Type != "" && cfg.Model.Type != "WordPiece" {
		return nil, errors.Errorf("unsupported model type %q: only WordPiece is implemented", cfg.Model.Type)
	}
	if cfg.Model.Vocab == nil {
		return nil, errors.New("tokenizer config is missing a model vocabulary")
	}

	model := newWordPiece(cfg.Model.Vocab, cfg.Model.UnkToken, cfg.Model.ContinuingSubwordPrefix, cfg.Model.MaxInputCharsPerWord)
	if model.UnkToken != "" {
		if _, ok := model.Vocab[model.UnkToken]; !ok {
			return nil, errors.Errorf("unk_token %q is not present in the vocabulary", model.UnkToken)
		}
	}

	addedTokens := make([]AddedToken, 0, len(cfg.AddedTokens))
	for _, t := range cfg.AddedTokens {
		addedTokens = append(addedTokens, AddedToken{
			ID:         t.ID,
			Content:    t.Content,
			SingleWord: t.SingleWord,
			LStrip:     t.LStrip,
			RStrip:     t.RStrip,
			Normalized: t.Normalized,
			Special:    t.SpecialToken,
		})
	}

	tok := &Tokenizer{
		Model:           model,
		AddedVocabulary: newAddedVocabulary(addedTokens),
		Normalizer:      buildNormalizer(cfg.Normalizer),
		PreTokenizer:    buildPreTokenizer(cfg.PreTokenizer),
		PostProcessor:   buildPostProcessor(cfg.PostProcessor),
		Decoder:         buildDecoder(cfg.Decoder),
	}
	return tok, nil
}

func buildNormalizer(cfg *normalizerJSON) normalizerStage {
	if cfg == nil || cfg.Type != "BertNormalizer" {
		return nil
	}
	return &BertNormalizer{
		CleanText:          boolOrDefault(cfg.CleanText, true),
		HandleChineseChars: boolOrDefault(cfg.HandleChineseChars, true),
		StripAccents:       boolOrDefault(cfg.StripAccents, true),
		Lowercase:          boolOrDefault(cfg.Lowercase, true),
	}
}

func buildPreTokenizer(cfg *preTokenizerJSON) preTokenizerStage {
	if cfg == nil || cfg.Type != "BertPreTokenizer" {
		return nil
	}
	return BertPreTokenizer{}
}

func buildPostProcessor(cfg *postProcessorJSON) postProcessorStage {
	if cfg == nil || cfg.Type != "TemplateProcessing" {
		return nil
	}
	specialTokens := make(map[string]int, len(cfg.SpecialTokens))
	for name, info := range cfg.SpecialTokens {
		if len(info.IDs) > 0 {
			specialTokens[name] = info.IDs[0]
		}
	}
	return &TemplateProcessing{
		Single:        buildTemplate(cfg.Single),
		Pair:          buildTemplate(cfg.Pair),
		SpecialTokens: specialTokens,
	}
}

func buildTemplate(items []templateItemJSON) []TemplateDirective {
	if items == nil {
		return nil
	}
	directives := make([]TemplateDirective, 0, len(items))
	for _, item := range items {
		switch {
		case item.SpecialToken != nil:
			directives = append(directives, TemplateDirective{
				Kind:             DirectiveSpecialToken,
				TypeID:           item.SpecialToken.TypeID,
				SpecialTokenName: item.SpecialToken.ID,
			})
		case item.Sequence != nil:
			directives = append(directives, TemplateDirective{
				Kind:   DirectiveSequence,
				TypeID: item.Sequence.TypeID,
			})
		}
	}
	return directives
}

func buildDecoder(cfg *decoderJSON) decoderStage {
	if cfg == nil || cfg.Type != "WordPiece" {
		return nil
	}
	return newWordPieceDecoder(cfg.Prefix, boolOrDefault(cfg.Cleanup, true))
}

func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
