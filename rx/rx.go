// Package rx adapts github.com/coregx/coregex into the three matching
// primitives the synthesizer needs (§4.1 of the spec this module
// implements): scanning matches, prefix-anchored matches, and
// suffix-anchored matches, all defined in terms of the token alphabet's
// maximal-run semantics.
//
// coregex, like Go's stdlib regexp, has no lookaround support, so it
// cannot itself express "a run of letters not preceded or followed by
// another letter" the way the naive translation of the token alphabet
// would. This package works around that the same way a hand-written
// lexer would: it compiles only the bare character-class fragment for each
// run token (e.g. "[A-Za-z]+") and anchors it by inspecting the byte
// immediately to the left of a candidate match directly, rather than by
// asking the regex engine to do it. The run itself - including its
// right-hand maximality - is exactly what the compiled pattern's greedy
// quantifier already returns, so no lookahead is ever needed.
package rx

import (
	coregex "github.com/coregx/coregex"

	"github.com/gosynth/flashfill/token"
)

// Match is one (text, start, end) triple produced by Scan.
type Match struct {
	Text  string
	Start int
	End   int
}

// Matcher compiles and caches the small, fixed family of character-class
// patterns the token alphabet needs. A Matcher is not safe for concurrent
// use; per §5 of the spec this module implements, the synthesizer is
// single-threaded and synchronous.
type Matcher struct {
	classes map[token.Kind]*coregex.Regex
}

// NewMatcher compiles the character-class patterns once, up front.
func NewMatcher() *Matcher {
	m := &Matcher{classes: make(map[token.Kind]*coregex.Regex)}
	for _, t := range token.Alphabet {
		if t.ZeroWidth() {
			continue
		}
		if _, ok := m.classes[t.Kind]; ok {
			continue
		}
		m.classes[t.Kind] = coregex.MustCompile("^" + t.ClassFragment())
	}
	return m
}

// matchRun greedily matches tok's maximal run starting at byte offset pos
// in s, and checks that the run is anchored on its left: pos is either the
// start of s or preceded by a byte outside tok's class. The run's right
// edge never needs a separate check - the compiled pattern's "+" is
// already greedy, so FindStringIndex already returns the longest run
// starting at pos.
func (m *Matcher) matchRun(s string, pos int, tok token.Token) (end int, ok bool) {
	if pos > 0 && tok.InClass(s[pos-1]) {
		return 0, false
	}
	if pos >= len(s) {
		return 0, false
	}
	re := m.classes[tok.Kind]
	loc := re.FindStringIndex(s[pos:])
	if loc == nil {
		return 0, false
	}
	return pos + loc[1], true
}

// Chain attempts to match seq in order starting at byte offset from in s,
// returning the offset immediately past the match. Zero-width tokens
// (Start, End) only succeed at their respective fixed positions.
func (m *Matcher) Chain(s string, seq token.Seq, from int) (end int, ok bool) {
	pos := from
	for _, t := range seq {
		switch t.Kind {
		case token.Start:
			if pos != 0 {
				return 0, false
			}
		case token.End:
			if pos != len(s) {
				return 0, false
			}
		default:
			next, matched := m.matchRun(s, pos, t)
			if !matched {
				return 0, false
			}
			pos = next
		}
	}
	return pos, true
}

// MatchPrefix anchors seq at position 0 of s and reports how far it
// matches, mirroring §4.1's match_prefix primitive.
func (m *Matcher) MatchPrefix(s string, seq token.Seq) (end int, ok bool) {
	return m.Chain(s, seq, 0)
}

// MatchSuffix searches for the leftmost start position from which seq
// matches all the way to the end of s, mirroring §4.1's match_suffix
// primitive (seq with an implicit End appended).
func (m *Matcher) MatchSuffix(s string, seq token.Seq) (start int, ok bool) {
	for from := 0; from <= len(s); from++ {
		if end, matched := m.Chain(s, seq, from); matched && end == len(s) {
			return from, true
		}
	}
	return 0, false
}

// Scan returns every non-overlapping match of seq in s, left to right,
// mirroring §4.1's scan primitive.
func (m *Matcher) Scan(s string, seq token.Seq) []Match {
	var out []Match
	pos := 0
	for pos <= len(s) {
		start, end, found := m.firstMatchFrom(s, seq, pos)
		if !found {
			break
		}
		out = append(out, Match{Text: s[start:end], Start: start, End: end})
		if end > pos {
			pos = end
		} else {
			pos = start + 1
		}
	}
	return out
}

func (m *Matcher) firstMatchFrom(s string, seq token.Seq, from int) (start, end int, found bool) {
	for c := from; c <= len(s); c++ {
		if e, ok := m.Chain(s, seq, c); ok {
			return c, e, true
		}
	}
	return 0, 0, false
}
