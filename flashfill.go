// Package flashfill learns string-to-string transformation programs from
// input/output examples and applies them to new inputs, per the spec
// this module implements.
//
// A minimal end-to-end use:
//
//	examples := []flashfill.Example{
//		{Input: "John Smith", Output: "John"},
//		{Input: "Jane Doe", Output: "Jane"},
//	}
//	prog, err := flashfill.Learn(examples)
//	if err != nil {
//		// no consistent program
//	}
//	out, ok := prog.Apply("Mary Jones") // "Mary", true
package flashfill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosynth/flashfill/cfg"
	"github.com/gosynth/flashfill/dag"
	"github.com/gosynth/flashfill/rx"
)

// Example is one (input, output) pair supplied to Learn.
type Example struct {
	Input, Output string
}

// Errors returned by Learn.
var (
	// ErrNoExamples is returned when Learn is called with zero examples.
	ErrNoExamples = errors.New("flashfill: at least one example is required")
	// ErrNoProgram is returned when the examples admit no common program:
	// the DAG intersection across all examples left no source-to-sink
	// path.
	ErrNoProgram = errors.New("flashfill: no program is consistent with all examples")
)

// Program is a learned transformation, ready to apply to new inputs. It
// holds the paths returned by dag.Paths (at most MaxPathsReturned of the
// paths consistent with the training examples), ranked shortest-first;
// Apply uses the first path that resolves successfully.
type Program struct {
	d     *dag.Dag
	paths [][]dag.Edge
	m     *rx.Matcher
}

// Learn synthesizes a Program consistent with every example, using
// cfg.DefaultConfig(). See LearnWithConfig to bound the search
// explicitly.
func Learn(examples []Example) (*Program, error) {
	return LearnWithConfig(examples, cfg.DefaultConfig())
}

// LearnWithConfig synthesizes a Program consistent with every example,
// per §4.5/§4.6: a DAG is built per example and intersected pairwise,
// then the surviving source-to-sink paths returned by dag.Paths are kept
// (at most c.MaxPathsReturned), ranked shortest-first.
func LearnWithConfig(examples []Example, c cfg.Config) (*Program, error) {
	if len(examples) == 0 {
		return nil, ErrNoExamples
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m := rx.NewMatcher()

	d := dag.Build(examples[0].Input, examples[0].Output, m, c)
	for _, ex := range examples[1:] {
		next := dag.Build(ex.Input, ex.Output, m, c)
		merged, err := dag.Intersect(d, next, c)
		if err != nil {
			return nil, err
		}
		d = merged
	}

	paths := dag.Paths(d, c)
	if len(paths) == 0 {
		return nil, ErrNoProgram
	}

	return &Program{d: d, paths: paths, m: m}, nil
}

// Apply runs the program against a new input, trying each surviving
// path shortest-first until one resolves (§4.7). ok is false only if
// every path fails to resolve against input.
func (p *Program) Apply(input string) (string, bool) {
	for _, path := range p.paths {
		if out, ok := dag.Apply(p.d.W, path, input, p.m); ok {
			return out, true
		}
	}
	return "", false
}

// NumPaths reports how many candidate paths survived learning.
func (p *Program) NumPaths() int {
	return len(p.paths)
}

// ParsePair parses a single comma-delimited "input,output" line into an
// Example, per the input-pair protocol of §6. There is no quoting
// convention: the first comma is the delimiter, so inputs containing a
// comma are not representable by this helper (any later commas become
// part of the output).
func ParsePair(line string) (Example, error) {
	idx := strings.IndexByte(line, ',')
	if idx < 0 {
		return Example{}, fmt.Errorf("flashfill: malformed pair %q: missing comma delimiter", line)
	}
	return Example{Input: line[:idx], Output: line[idx+1:]}, nil
}
