package hftokenizer

// PaddingDirection selects which end of a short encoding padding entries
// are inserted at.
type PaddingDirection int

const (
	PadRight PaddingDirection = iota
	PadLeft
)

// PaddingStrategy selects how the batch target length is computed.
type PaddingStrategy int

const (
	BatchLongest PaddingStrategy = iota
	FixedLength
)

// Padding shapes a batch of encodings up to a common length, padding every
// encoding (and, recursively, every Overflowing fragment) with a
// synthetic, fully-masked-out pad token.
type Padding struct {
	Direction       PaddingDirection
	Strategy        PaddingStrategy
	StrategySize    int
	PadToMultipleOf int
	PadID           int
	PadTypeID       int
	PadToken        string
}

// PadEncodings pads every encoding in the batch to the same target length,
// derived from Strategy and rounded up to PadToMultipleOf when configured.
func (p *Padding) PadEncodings(encodings []Encoding) []Encoding {
	target := p.StrategySize
	if p.Strategy == BatchLongest {
		target = 0
		for _, e := range encodings {
			if e.Len() > target {
				target = e.Len()
			}
		}
	}
	if p.PadToMultipleOf > 0 && target%p.PadToMultipleOf != 0 {
		target = ((target / p.PadToMultipleOf) + 1) * p.PadToMultipleOf
	}

	out := make([]Encoding, len(encodings))
	for i, e := range encodings {
		out[i] = p.padOne(e, target)
	}
	return out
}

// padOne pads e (and recursively its Overflowing fragments) to target,
// a no-op when e is already at least that long.
func (p *Padding) padOne(e Encoding, target int) Encoding {
	overflowing := e.Overflowing
	padLength := target - e.Len()
	if padLength > 0 {
		pad := Encoding{
			IDs:               repeatInt(p.PadID, padLength),
			TypeIDs:           repeatInt(p.PadTypeID, padLength),
			Tokens:            repeatString(p.PadToken, padLength),
			Offsets:           make([]CodePointOffset, padLength),
			WordIDs:           make([]*int, padLength),
			SpecialTokensMask: repeatInt(1, padLength),
			AttentionMask:     repeatInt(0, padLength),
		}
		if p.Direction == PadRight {
			e = concatEncodings([]Encoding{e, pad})
		} else {
			e = concatEncodings([]Encoding{pad, e})
		}
	}
	if len(overflowing) > 0 {
		padded := make([]Encoding, len(overflowing))
		for i, ov := range overflowing {
			padded[i] = p.padOne(ov, target)
		}
		e.Overflowing = padded
	}
	return e
}

func repeatInt(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func repeatString(v string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = v
	}
	return out
}
