package hftokenizer

// TemplateDirectiveKind distinguishes the two kinds of entries a
// TemplateProcessing directive list can hold.
type TemplateDirectiveKind int

const (
	// DirectiveSpecialToken inserts one synthetic special-token Encoding.
	DirectiveSpecialToken TemplateDirectiveKind = iota
	// DirectiveSequence passes through the next input Encoding, in order.
	DirectiveSequence
)

// TemplateDirective is one entry of a single/pair template: either a named
// special token to insert, or a placeholder for the next input sequence.
type TemplateDirective struct {
	Kind             TemplateDirectiveKind
	TypeID           int
	SpecialTokenName string
}

// TemplateProcessing implements the PostProcessor stage: it inserts special
// tokens around one or two input Encodings per a configured template and
// assigns type ids.
type TemplateProcessing struct {
	Single        []TemplateDirective
	Pair          []TemplateDirective
	SpecialTokens map[string]int
}

// ProcessEncodings selects Single when given exactly one input Encoding,
// otherwise Pair, and walks the chosen template in order: a SpecialToken
// directive emits a synthetic one-token Encoding looked up in
// SpecialTokens; a Sequence directive consumes the next input Encoding,
// rewriting its TypeIDs to the directive's TypeID.
func (tp *TemplateProcessing) ProcessEncodings(inputs []Encoding) []Encoding {
	template := tp.Pair
	if len(inputs) == 1 {
		template = tp.Single
	}
	if template == nil {
		return inputs
	}

	out := make([]Encoding, 0, len(template))
	seqIdx := 0
	for _, dir := range template {
		switch dir.Kind {
		case DirectiveSpecialToken:
			id := tp.SpecialTokens[dir.SpecialTokenName]
			out = append(out, newSpecialTokenEncoding(id, dir.SpecialTokenName, dir.TypeID))
		case DirectiveSequence:
			if seqIdx >= len(inputs) {
				continue
			}
			e := inputs[seqIdx]
			seqIdx++
			typeIDs := make([]int, len(e.TypeIDs))
			for i := range typeIDs {
				typeIDs[i] = dir.TypeID
			}
			e.TypeIDs = typeIDs
			out = append(out, e)
		}
	}
	return out
}
