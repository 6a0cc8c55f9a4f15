package token

import "strconv"

// Seq is a non-empty ordered sequence of tokens. Its regex fragment, were
// one compiled directly, would be the concatenation of its tokens'
// fragments; in practice the rx package matches a Seq token by token rather
// than through one combined pattern (see rx.Matcher.Chain), so that each
// run token's maximal-run anchoring can be checked against the actual
// neighbouring character instead of relying on regex lookaround, which the
// underlying engine does not support.
type Seq []Token

// Key returns a canonical string uniquely identifying the sequence,
// suitable for use as a map key when building sets of sequences.
func (s Seq) Key() string {
	buf := make([]byte, 0, len(s)*2)
	for i, t := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(t.Kind), 10)
	}
	return string(buf)
}

// Equal reports whether two sequences have identical tokens in the same
// order.
func (s Seq) Equal(other Seq) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i].Kind != other[i].Kind {
			return false
		}
	}
	return true
}

// Concat returns a new sequence consisting of s followed by other.
func (s Seq) Concat(other Seq) Seq {
	out := make(Seq, 0, len(s)+len(other))
	out = append(out, s...)
	out = append(out, other...)
	return out
}

// AllSeqs enumerates every n-tuple over Alphabet, in a stable order. This is
// the "enumerate every n-tuple over the token alphabet" step of the
// position synthesizer; callers grow n starting at 1.
func AllSeqs(n int) []Seq {
	if n <= 0 {
		return nil
	}
	seqs := []Seq{{}}
	for i := 0; i < n; i++ {
		next := make([]Seq, 0, len(seqs)*len(Alphabet))
		for _, prefix := range seqs {
			for _, t := range Alphabet {
				seq := make(Seq, len(prefix)+1)
				copy(seq, prefix)
				seq[len(prefix)] = t
				next = append(next, seq)
			}
		}
		seqs = next
	}
	return seqs
}
