// Package expr implements the Expression data model (§3) and the
// substring synthesizer (§4.4) of the spec this module implements, plus
// the expression-level half of the intersection algebra (§4.6).
package expr

import (
	"strconv"
	"strings"

	"github.com/gosynth/flashfill/cfg"
	"github.com/gosynth/flashfill/position"
	"github.com/gosynth/flashfill/rx"
)

// Kind distinguishes the three expression shapes.
type Kind uint8

const (
	// ConstStrKind produces a fixed literal.
	ConstStrKind Kind = iota
	// SubstrKind produces the slice between two resolved positions.
	SubstrKind
	// LoopKind is the iterative-extraction placeholder; §3 and §9 of the
	// spec this module implements require it to exist in the data model
	// and be closed under intersection, but this core never synthesizes
	// one.
	LoopKind
)

// Expression is a tagged variant: ConstStr(s), Substr(p1, p2), or
// Loop(body).
type Expression struct {
	Kind Kind

	// ConstStrKind field.
	Const string

	// SubstrKind fields.
	P1, P2 position.Set

	// LoopKind field.
	Body *Expression
}

// NewConstStr builds a ConstStr expression.
func NewConstStr(s string) Expression {
	return Expression{Kind: ConstStrKind, Const: s}
}

// NewSubstr builds a Substr expression.
func NewSubstr(p1, p2 position.Set) Expression {
	return Expression{Kind: SubstrKind, P1: p1, P2: p2}
}

// NewLoop builds a Loop expression wrapping body. Nothing in this module
// constructs one outside of tests exercising the intersection algebra's
// closure over Loop, per §4.5/§9's non-goal.
func NewLoop(body Expression) Expression {
	return Expression{Kind: LoopKind, Body: &body}
}

// Key returns a canonical string identifying the expression structurally,
// for use as a set key in a DAG edge's expression set.
func (e Expression) Key() string {
	switch e.Kind {
	case ConstStrKind:
		return "C:" + strconv.Quote(e.Const)
	case SubstrKind:
		var b strings.Builder
		b.WriteString("S:")
		for _, p := range e.P1.Positions() {
			b.WriteString(p.Key())
			b.WriteByte(';')
		}
		b.WriteString(">")
		for _, p := range e.P2.Positions() {
			b.WriteString(p.Key())
			b.WriteByte(';')
		}
		return b.String()
	case LoopKind:
		return "L:" + e.Body.Key()
	default:
		return ""
	}
}

// Intersect intersects two expressions per §4.6. Mixed kinds never
// intersect.
func Intersect(a, b Expression) (Expression, bool) {
	if a.Kind != b.Kind {
		return Expression{}, false
	}
	switch a.Kind {
	case ConstStrKind:
		if a.Const == b.Const {
			return a, true
		}
		return Expression{}, false
	case SubstrKind:
		p1 := position.IntersectSets(a.P1, b.P1)
		if p1.Len() == 0 {
			return Expression{}, false
		}
		p2 := position.IntersectSets(a.P2, b.P2)
		if p2.Len() == 0 {
			return Expression{}, false
		}
		return NewSubstr(p1, p2), true
	case LoopKind:
		body, ok := Intersect(*a.Body, *b.Body)
		if !ok {
			return Expression{}, false
		}
		return NewLoop(body), true
	default:
		return Expression{}, false
	}
}

// Eval evaluates e against a fresh input string x, returning ok == false
// if e cannot be resolved against x (e.g. a Substr whose positions no
// longer locate anything, or a Loop - never evaluated by this core).
func (e Expression) Eval(x string, m *rx.Matcher) (string, bool) {
	switch e.Kind {
	case ConstStrKind:
		return e.Const, true
	case SubstrKind:
		if e.P1.Len() == 0 || e.P2.Len() == 0 {
			return "", false
		}
		a, ok := e.P1.Positions()[0].Resolve(x, m)
		if !ok {
			return "", false
		}
		b, ok := e.P2.Positions()[0].Resolve(x, m)
		if !ok {
			return "", false
		}
		if a < 0 || b > len(x) || a > b {
			return "", false
		}
		return x[a:b], true
	case LoopKind:
		return "", false
	default:
		return "", false
	}
}

// Synthesize enumerates every Substr expression that can produce w from
// some occurrence of w in some string in sigma, per §4.4. sigma is
// accepted as a slice to keep the interface multi-input as the spec
// requires, though the DAG builder in this module only ever calls it with
// a single-element slice (see dag.Build).
func Synthesize(sigma []string, w string, m *rx.Matcher, c cfg.Config) []Expression {
	var out []Expression
	for _, s := range sigma {
		begin := 0
		for {
			idx := strings.Index(s[begin:], w)
			if idx == -1 {
				break
			}
			start := begin + idx
			y1 := position.Synthesize(s, start, m, c)
			y2 := position.Synthesize(s, start+len(w), m, c)
			out = append(out, NewSubstr(y1, y2))
			begin = start + 1
		}
	}
	return out
}
