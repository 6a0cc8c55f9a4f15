package token

// Alternative is the set of TokenSeqs that are interchangeable at one slot
// of a RegexList for a particular input string. Generalize currently ever
// populates a slot with a single sequence, but the set shape is a
// structural hook: a future generalizer could add more members to one slot
// without changing anything downstream.
type Alternative struct {
	order []Seq
	byKey map[string]Seq
}

// NewAlternative returns an empty alternative.
func NewAlternative() Alternative {
	return Alternative{byKey: make(map[string]Seq)}
}

// Add inserts seq into the alternative if not already present.
func (a *Alternative) Add(seq Seq) {
	k := seq.Key()
	if _, ok := a.byKey[k]; ok {
		return
	}
	if a.byKey == nil {
		a.byKey = make(map[string]Seq)
	}
	a.byKey[k] = seq
	a.order = append(a.order, seq)
}

// Len reports the number of distinct sequences in the alternative.
func (a Alternative) Len() int { return len(a.order) }

// Seqs returns the alternative's members in insertion order.
func (a Alternative) Seqs() []Seq { return a.order }

// PickOne returns an arbitrary, deterministic (first-inserted) member.
// The alternative must be non-empty.
func (a Alternative) PickOne() Seq { return a.order[0] }

// Intersect returns the set intersection of two alternatives.
func (a Alternative) Intersect(b Alternative) Alternative {
	out := NewAlternative()
	for k, seq := range a.byKey {
		if _, ok := b.byKey[k]; ok {
			out.Add(seq)
		}
	}
	return out
}

// RegexList is an ordered sequence of alternatives. Concatenation
// semantics: match the first alternative, then the second, and so on.
type RegexList []Alternative

// Intersect intersects two RegexLists slot by slot. It is defined only
// when the lists have equal length; an empty alternative in any slot makes
// the whole result undefined (ok == false).
func (rl RegexList) Intersect(other RegexList) (RegexList, bool) {
	if len(rl) != len(other) {
		return nil, false
	}
	out := make(RegexList, len(rl))
	for i := range rl {
		alt := rl[i].Intersect(other[i])
		if alt.Len() == 0 {
			return nil, false
		}
		out[i] = alt
	}
	return out, true
}

// Pick concatenates one representative sequence from each slot into a
// single token sequence.
func (rl RegexList) Pick() Seq {
	var out Seq
	for _, alt := range rl {
		out = out.Concat(alt.PickOne())
	}
	return out
}

// Key returns a canonical string identifying the list, for use in sets
// of RegexLists (positions hash their Left/Right fields this way).
func (rl RegexList) Key() string {
	buf := make([]byte, 0, len(rl)*8)
	for i, alt := range rl {
		if i > 0 {
			buf = append(buf, '|')
		}
		for j, seq := range alt.order {
			if j > 0 {
				buf = append(buf, ';')
			}
			buf = append(buf, seq.Key()...)
		}
	}
	return string(buf)
}

// Generalize turns a witness token sequence into a RegexList whose i-th
// slot is the singleton set containing seq[i]. This is the structural hook
// named in §4.3 of the spec this module implements: a richer generalizer
// could populate each slot with every ipart sequence that is "equivalent"
// to seq[i] for a given input; today each slot has exactly one member.
// Generalize does not look at the input string, so kinds that match the
// same run there (Alpha and Upper on an all-caps word, for instance) are
// not merged into one slot.
func Generalize(seq Seq) RegexList {
	rl := make(RegexList, len(seq))
	for i, t := range seq {
		alt := NewAlternative()
		alt.Add(Seq{t})
		rl[i] = alt
	}
	return rl
}
