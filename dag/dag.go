// Package dag implements the per-example DAG builder (§4.5), the DAG
// intersection algebra (§4.6), path enumeration, and program evaluation
// (§4.7) of the spec this module implements.
package dag

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gosynth/flashfill/cfg"
	"github.com/gosynth/flashfill/expr"
	"github.com/gosynth/flashfill/rx"
)

// ErrTooManyEdges is returned by Intersect when the product DAG would
// exceed c.MaxDagEdges.
var ErrTooManyEdges = errors.New("dag: intersection exceeds MaxDagEdges")

// NodeID identifies a DAG node. A single-example DAG's nodes are decimal
// integers "0".."len(o)"; a product DAG's nodes are its operands' node
// IDs joined with a comma, which stays associative under repeated
// products because no NodeID ever itself contains a comma from anything
// but this join.
type NodeID = string

// Edge is a directed edge between two nodes.
type Edge struct {
	From, To NodeID
}

// Dag is the per-example (or product-of-examples) graph: every edge
// carries the set of expressions that can produce the output slice
// between its endpoints.
type Dag struct {
	Source, Dest NodeID
	W            map[Edge]expr.Set
}

// Build constructs the DAG for a single (input, output) example, per
// §4.5: one node per output offset 0..len(o), and for every i < j an
// edge weighted by every ConstStr/Substr expression that can produce
// o[i:j] from s. Edges are added in order of i, then j, and no more are
// added once the DAG holds c.MaxDagEdges of them. The empty-output
// example is the degenerate case: a single node, Source == Dest == "0",
// zero edges.
func Build(s, o string, m *rx.Matcher, c cfg.Config) *Dag {
	d := &Dag{W: make(map[Edge]expr.Set)}
	n := len(o)
	d.Source = "0"
	d.Dest = strconv.Itoa(n)

	if n == 0 {
		d.Dest = d.Source
		return d
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			if len(d.W) >= c.MaxDagEdges {
				return d
			}
			slice := o[i:j]
			set := expr.NewSet()
			set.Add(expr.NewConstStr(slice))
			for _, e := range expr.Synthesize([]string{s}, slice, m, c) {
				set.Add(e)
			}
			d.W[Edge{strconv.Itoa(i), strconv.Itoa(j)}] = set
		}
	}
	return d
}

// Intersect computes the product DAG of d1 and d2 per §4.6: nodes are
// pairs of the operands' nodes (joined as "a,b"), and an edge survives
// only if the pairwise intersection of its two source expression sets
// is non-empty (eager pruning). Returns an error if the result would
// exceed c.MaxDagEdges.
func Intersect(d1, d2 *Dag, c cfg.Config) (*Dag, error) {
	out := &Dag{
		Source: d1.Source + "," + d2.Source,
		Dest:   d1.Dest + "," + d2.Dest,
		W:      make(map[Edge]expr.Set),
	}

	for e1, w1 := range d1.W {
		for e2, w2 := range d2.W {
			set := expr.IntersectSets(w1, w2)
			if set.Len() == 0 {
				continue
			}
			if len(out.W) >= c.MaxDagEdges {
				return nil, fmt.Errorf("%w: cap is %d edges", ErrTooManyEdges, c.MaxDagEdges)
			}
			edge := Edge{
				From: e1.From + "," + e2.From,
				To:   e1.To + "," + e2.To,
			}
			out.W[edge] = set
		}
	}
	return out, nil
}

// Paths enumerates simple paths from d.Source to d.Dest, ranked
// shortest-first (fewest edges), capped at c.MaxPathsReturned. The
// depth-first walk stops once it has collected c.MaxPathsReturned*200
// complete paths, so on a DAG with more paths than that the result is
// the shortest of those collected, not necessarily the shortest overall.
// Edges only ever connect strictly-increasing coordinate pairs, so the
// graph is acyclic and this terminates. The empty-output DAG (Source ==
// Dest, no edges) yields exactly one, zero-length path.
func Paths(d *Dag, c cfg.Config) [][]Edge {
	adj := make(map[NodeID][]Edge)
	for e := range d.W {
		adj[e.From] = append(adj[e.From], e)
	}

	maxExplore := c.MaxPathsReturned * 200
	var all [][]Edge
	var walk func(node NodeID, path []Edge)
	walk = func(node NodeID, path []Edge) {
		if len(all) >= maxExplore {
			return
		}
		if node == d.Dest {
			cp := make([]Edge, len(path))
			copy(cp, path)
			all = append(all, cp)
		}
		for _, e := range adj[node] {
			walk(e.To, append(path, e))
		}
	}
	walk(d.Source, nil)

	sort.SliceStable(all, func(i, j int) bool { return len(all[i]) < len(all[j]) })
	if len(all) > c.MaxPathsReturned {
		all = all[:c.MaxPathsReturned]
	}
	return all
}

// Apply evaluates path against input, picking the deterministic
// first-inserted expression at each edge (§4.7). Returns ok == false if
// any edge's representative expression fails to resolve against input
// (e.g. a Substr whose positions don't locate anything in a fresh
// string).
func Apply(w map[Edge]expr.Set, path []Edge, input string, m *rx.Matcher) (string, bool) {
	var b strings.Builder
	for _, e := range path {
		set, ok := w[e]
		if !ok {
			return "", false
		}
		rep, ok := set.First()
		if !ok {
			return "", false
		}
		piece, ok := rep.Eval(input, m)
		if !ok {
			return "", false
		}
		b.WriteString(piece)
	}
	return b.String(), true
}
