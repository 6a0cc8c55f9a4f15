package expr

// Set is an ordered, structurally-deduplicated collection of expressions,
// used as the weight of a single DAG edge (§4.5: "each edge is weighted
// by the set of expressions that can produce that output slice").
type Set struct {
	order []Expression
	byKey map[string]struct{}
}

// NewSet returns an empty expression set.
func NewSet() Set {
	return Set{byKey: make(map[string]struct{})}
}

// Add inserts e into the set if not already present, preserving
// insertion order.
func (s *Set) Add(e Expression) {
	k := e.Key()
	if _, ok := s.byKey[k]; ok {
		return
	}
	if s.byKey == nil {
		s.byKey = make(map[string]struct{})
	}
	s.byKey[k] = struct{}{}
	s.order = append(s.order, e)
}

// Len reports the number of expressions in the set.
func (s Set) Len() int { return len(s.order) }

// Exprs returns the set's members in insertion order.
func (s Set) Exprs() []Expression { return s.order }

// First returns the first-inserted expression, the deterministic
// representative used at evaluation time (§4.7).
func (s Set) First() (Expression, bool) {
	if len(s.order) == 0 {
		return Expression{}, false
	}
	return s.order[0], true
}

// IntersectSets returns the set of all pairwise expression intersections
// between a and b that are defined, mirroring position.IntersectSets.
func IntersectSets(a, b Set) Set {
	out := NewSet()
	for _, ea := range a.order {
		for _, eb := range b.order {
			if r, ok := Intersect(ea, eb); ok {
				out.Add(r)
			}
		}
	}
	return out
}
