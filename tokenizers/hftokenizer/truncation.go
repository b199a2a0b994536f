package hftokenizer

// TruncationDirection selects which end of an overlong encoding the
// primary slice is taken from.
type TruncationDirection int

const (
	TruncateRight TruncationDirection = iota
	TruncateLeft
)

// TruncationStrategy selects how a two-sequence pair shares the truncation
// budget.
type TruncationStrategy int

const (
	LongestFirst TruncationStrategy = iota
	OnlyFirst
	OnlySecond
)

// Truncation shapes an Encoding (or an encoding pair) down to MaxLength,
// preserving the dropped portion as a sliding window of Overflowing
// fragments stepping by MaxLength-Stride.
type Truncation struct {
	Direction TruncationDirection
	Strategy  TruncationStrategy
	MaxLength int
	Stride    int
}

// TruncateEncodings applies t to one or two input encodings per its
// Strategy, matching the single/pair semantics this library specifies (more
// than two inputs is out of scope).
func (t *Truncation) TruncateEncodings(encodings []Encoding) []Encoding {
	switch len(encodings) {
	case 0:
		return encodings
	case 1:
		return []Encoding{t.truncateOne(encodings[0], t.MaxLength)}
	case 2:
		return t.truncatePair(encodings[0], encodings[1])
	default:
		return encodings
	}
}

func (t *Truncation) truncatePair(a, b Encoding) []Encoding {
	switch t.Strategy {
	case OnlyFirst:
		return []Encoding{t.truncateOnly(a, b.Len()), b}
	case OnlySecond:
		return []Encoding{a, t.truncateOnly(b, a.Len())}
	default: // LongestFirst
		lenA, lenB := a.Len(), b.Len()
		swapped := lenA > lenB
		n1, n2 := lenA, lenB
		if swapped {
			n1, n2 = lenB, lenA
		}
		if n1 > t.MaxLength {
			n2 = n1
		} else {
			n2 = maxInt(n1, t.MaxLength-n1)
		}
		if n1+n2 > t.MaxLength {
			n1 = t.MaxLength / 2
			n2 = n1 + t.MaxLength%2
		}
		targetA, targetB := n1, n2
		if swapped {
			targetA, targetB = n2, n1
		}
		return []Encoding{t.truncateOne(a, targetA), t.truncateOne(b, targetB)}
	}
}

// truncateOnly truncates e by `total - otherLen` tokens (ONLY_FIRST/
// ONLY_SECOND budget), leaving e unchanged if its length doesn't exceed
// that amount.
func (t *Truncation) truncateOnly(e Encoding, otherLen int) Encoding {
	toRemove := (e.Len() + otherLen) - t.MaxLength
	if toRemove <= 0 || e.Len() <= toRemove {
		return e
	}
	return t.truncateOne(e, e.Len()-toRemove)
}

// truncateOne truncates a single encoding to target length, producing the
// sliding-window Overflowing fragments described by Direction and Stride.
func (t *Truncation) truncateOne(e Encoding, target int) Encoding {
	n := e.Len()
	if target == 0 {
		empty := sliceEncoding(e, 0, 0)
		empty.Overflowing = []Encoding{e}
		return empty
	}
	if target >= n {
		return e
	}

	step := target - t.Stride
	if step <= 0 {
		step = 1
	}

	var primary Encoding
	var overflow []Encoding
	if t.Direction == TruncateRight {
		primary = sliceEncoding(e, 0, target)
		for start := step; start <= n-target; start += step {
			overflow = append(overflow, sliceEncoding(e, start, start+target))
		}
	} else {
		primary = sliceEncoding(e, n-target, n)
		for end := n - step; end >= target; end -= step {
			overflow = append(overflow, sliceEncoding(e, end-target, end))
		}
	}
	primary.Overflowing = overflow
	return primary
}

// sliceEncoding cuts [from, to) out of every parallel array of e.
func sliceEncoding(e Encoding, from, to int) Encoding {
	return Encoding{
		IDs:               append([]int(nil), e.IDs[from:to]...),
		TypeIDs:           append([]int(nil), e.TypeIDs[from:to]...),
		Tokens:            append([]string(nil), e.Tokens[from:to]...),
		Offsets:           append([]CodePointOffset(nil), e.Offsets[from:to]...),
		WordIDs:           append([]*int(nil), e.WordIDs[from:to]...),
		SpecialTokensMask: append([]int(nil), e.SpecialTokensMask[from:to]...),
		AttentionMask:     append([]int(nil), e.AttentionMask[from:to]...),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
