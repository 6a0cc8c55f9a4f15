// Package position implements the position synthesizer (§4.2), its
// generalization step (§4.3), and the position/set intersection algebra
// (§4.6) of the spec this module implements.
package position

import (
	"strconv"

	"github.com/gosynth/flashfill/cfg"
	"github.com/gosynth/flashfill/rx"
	"github.com/gosynth/flashfill/token"
)

// Kind distinguishes the two shapes a Position can take.
type Kind uint8

const (
	// Absolute locates a fixed offset, negative meaning "from the end".
	Absolute Kind = iota
	// Regex locates the boundary between a left-matching and a
	// right-matching token sequence, at one of a set of occurrence ranks.
	Regex
)

// Position is a tagged variant locating one index in a string. Equality is
// structural; Key returns a canonical string for use in sets and maps.
type Position struct {
	Kind Kind

	// Absolute fields.
	Abs int

	// Regex fields.
	Left, Right token.RegexList
	Occurrences IntSet
}

// NewAbsolute builds an Absolute position.
func NewAbsolute(idx int) Position {
	return Position{Kind: Absolute, Abs: idx}
}

// NewRegex builds a Regex position.
func NewRegex(left, right token.RegexList, occ IntSet) Position {
	return Position{Kind: Regex, Left: left, Right: right, Occurrences: occ}
}

// Key returns a canonical string identifying the position structurally.
func (p Position) Key() string {
	switch p.Kind {
	case Absolute:
		return "A:" + strconv.Itoa(p.Abs)
	case Regex:
		occ := p.Occurrences.Sorted()
		buf := "R:" + p.Left.Key() + ">" + p.Right.Key() + ":"
		for i, v := range occ {
			if i > 0 {
				buf += ","
			}
			buf += strconv.Itoa(v)
		}
		return buf
	default:
		return ""
	}
}

// Resolve locates the position's index in s, returning ok == false if it
// cannot be located (out of bounds for Absolute, or no matching regex
// witness survives in s for Regex).
func (p Position) Resolve(s string, m *rx.Matcher) (int, bool) {
	switch p.Kind {
	case Absolute:
		idx := p.Abs
		if idx < 0 {
			idx = len(s) + idx + 1
		}
		if idx < 0 || idx > len(s) {
			return 0, false
		}
		return idx, true
	case Regex:
		return p.resolveRegex(s, m)
	default:
		return 0, false
	}
}

func (p Position) resolveRegex(s string, m *rx.Matcher) (int, bool) {
	left := p.Left.Pick()
	right := p.Right.Pick()
	full := left.Concat(right)

	matches := m.Scan(s, full)
	total := len(matches)
	if total == 0 {
		return 0, false
	}

	for _, c := range p.Occurrences.Sorted() {
		idx := c
		if c < 0 {
			idx = total + c
		}
		if idx < 0 || idx >= total {
			continue
		}
		match := matches[idx]
		cut, ok := m.Chain(s, left, match.Start)
		if ok && cut <= match.End {
			return cut, true
		}
	}
	return 0, false
}

// Intersect intersects two positions per §4.6: Absolute positions must be
// equal; Regex positions intersect their left/right RegexLists and their
// occurrence sets elementwise. Mixed kinds never intersect.
func Intersect(a, b Position) (Position, bool) {
	if a.Kind != b.Kind {
		return Position{}, false
	}
	switch a.Kind {
	case Absolute:
		if a.Abs == b.Abs {
			return a, true
		}
		return Position{}, false
	case Regex:
		left, ok := a.Left.Intersect(b.Left)
		if !ok {
			return Position{}, false
		}
		right, ok := a.Right.Intersect(b.Right)
		if !ok {
			return Position{}, false
		}
		occ := a.Occurrences.Intersect(b.Occurrences)
		if len(occ) == 0 {
			return Position{}, false
		}
		return NewRegex(left, right, occ), true
	default:
		return Position{}, false
	}
}

// Set is a set of positions, deduplicated structurally.
type Set struct {
	order []Position
	byKey map[string]Position
}

// NewSet returns an empty position set.
func NewSet() Set {
	return Set{byKey: make(map[string]Position)}
}

// Add inserts p into the set if not already present.
func (s *Set) Add(p Position) {
	k := p.Key()
	if _, ok := s.byKey[k]; ok {
		return
	}
	if s.byKey == nil {
		s.byKey = make(map[string]Position)
	}
	s.byKey[k] = p
	s.order = append(s.order, p)
}

// Len reports the number of positions in the set.
func (s Set) Len() int { return len(s.order) }

// Positions returns the set's members in insertion order.
func (s Set) Positions() []Position { return s.order }

// IntersectSets returns the union of every pairwise position intersection
// that is defined, per §4.6's "the position-set intersection is the union
// of all pairwise position intersections that are defined."
func IntersectSets(a, b Set) Set {
	out := NewSet()
	for _, pa := range a.order {
		for _, pb := range b.order {
			if r, ok := Intersect(pa, pb); ok {
				out.Add(r)
			}
		}
	}
	return out
}

// Synthesize enumerates every position expression that locates index k in
// s, per §4.2.
func Synthesize(s string, k int, m *rx.Matcher, c cfg.Config) Set {
	set := NewSet()
	set.Add(NewAbsolute(k))
	set.Add(NewAbsolute(-(len(s) - k + 1)))

	type candidate struct {
		seq token.Seq
		pos int
	}
	var lefts, rights []candidate

	left := s[:k]
	right := s[k:]

	atCap := func() bool {
		return len(lefts) >= c.MaxOccurrenceWitnesses && len(rights) >= c.MaxOccurrenceWitnesses
	}

	for n := 1; n <= c.MaxTokenSeqLen && !atCap(); n++ {
		matchedThisRound := false
		for _, r := range token.AllSeqs(n) {
			if len(lefts) < c.MaxOccurrenceWitnesses {
				if start, ok := m.MatchSuffix(left, r); ok {
					lefts = append(lefts, candidate{r, start})
					matchedThisRound = true
				}
			}
			if len(rights) < c.MaxOccurrenceWitnesses {
				if end, ok := m.MatchPrefix(right, r); ok {
					rights = append(rights, candidate{r, k + end})
					matchedThisRound = true
				}
			}
			if atCap() {
				break
			}
		}
		if !matchedThisRound {
			break
		}
	}

	for _, l := range lefts {
		for _, r := range rights {
			full := l.seq.Concat(r.seq)
			matches := m.Scan(s, full)
			total := len(matches)
			for i, match := range matches {
				if match.Start == l.pos && match.End == r.pos {
					occ := NewIntSet(i, -(total - i))
					set.Add(NewRegex(token.Generalize(l.seq), token.Generalize(r.seq), occ))
					break
				}
			}
		}
	}

	return set
}
