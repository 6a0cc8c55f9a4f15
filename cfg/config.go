// Package cfg controls the search limits of the program synthesizer.
//
// The combinatorial parts of the algorithm - token-sequence enumeration
// during position synthesis, and the product construction during DAG
// intersection - can in principle grow without bound. Config gives callers
// concrete knobs to bound that growth instead of letting the algorithm run
// away on adversarial inputs.
package cfg

// Config bounds the search performed by the token/position/expr/dag
// packages.
//
// Example:
//
//	c := cfg.DefaultConfig()
//	c.MaxTokenSeqLen = 2 // smaller regex positions, faster, less expressive
type Config struct {
	// MaxTokenSeqLen caps the length of the token sequences enumerated while
	// growing n in the position synthesizer (see §4.2 of the spec this
	// module implements). Token-sequence enumeration at length n grows as
	// len(token.Alphabet)^n; n=3 is the safety cap called out for a
	// maximal-run alphabet, since a matching sequence that long already
	// pins down the cut point in almost every practical string.
	// Default: 3
	MaxTokenSeqLen int

	// MaxOccurrenceWitnesses caps, per side (left/right) of a boundary, how
	// many distinct token-sequence witnesses the position synthesizer
	// (§4.2) collects before pairing them up. Every left witness is paired
	// with every right witness and re-scanned to compute its occurrence
	// rank, so the search is quadratic in this number; capping it bounds
	// that pairing rather than leaving it to grow with MaxTokenSeqLen alone.
	// Default: 32
	MaxOccurrenceWitnesses int

	// MaxDagEdges caps the number of edges a DAG (including one produced by
	// intersecting two DAGs) may hold. The product construction is
	// worst-case multiplicative in the number of input examples; this is
	// the external bound the spec recommends imposing on the intersected
	// DAG.
	// Default: 200000
	MaxDagEdges int

	// MaxPathsReturned caps how many source-to-sink paths Paths returns,
	// shortest first. A DAG with many short partitions of the output can
	// have a combinatorial number of paths; callers that want "the"
	// program only need the first one anyway.
	// Default: 64
	MaxPathsReturned int
}

// DefaultConfig returns a Config with sensible defaults for short,
// human-scale example strings (names, dates, identifiers).
func DefaultConfig() Config {
	return Config{
		MaxTokenSeqLen:         3,
		MaxOccurrenceWitnesses: 32,
		MaxDagEdges:            200000,
		MaxPathsReturned:       64,
	}
}

// Validate checks that every field is within its documented range.
//
// Valid ranges:
//   - MaxTokenSeqLen: 1 to 6
//   - MaxOccurrenceWitnesses: 1 to 10,000
//   - MaxDagEdges: 1 to 5,000,000
//   - MaxPathsReturned: 1 to 100,000
func (c Config) Validate() error {
	if c.MaxTokenSeqLen < 1 || c.MaxTokenSeqLen > 6 {
		return &Error{Field: "MaxTokenSeqLen", Message: "must be between 1 and 6"}
	}
	if c.MaxOccurrenceWitnesses < 1 || c.MaxOccurrenceWitnesses > 10_000 {
		return &Error{Field: "MaxOccurrenceWitnesses", Message: "must be between 1 and 10,000"}
	}
	if c.MaxDagEdges < 1 || c.MaxDagEdges > 5_000_000 {
		return &Error{Field: "MaxDagEdges", Message: "must be between 1 and 5,000,000"}
	}
	if c.MaxPathsReturned < 1 || c.MaxPathsReturned > 100_000 {
		return &Error{Field: "MaxPathsReturned", Message: "must be between 1 and 100,000"}
	}
	return nil
}

// Error represents an invalid configuration parameter.
type Error struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "flashfill: invalid config: " + e.Field + ": " + e.Message
}
