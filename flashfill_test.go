package flashfill

import (
	"fmt"
	"testing"
)

func TestLearnNoExamples(t *testing.T) {
	if _, err := Learn(nil); err != ErrNoExamples {
		t.Fatalf("Learn(nil) error = %v, want ErrNoExamples", err)
	}
}

// TestLearnFirstNameGeneralizes is the core §8 scenario: two examples
// that agree on "take the first word" generalize to an unseen name.
func TestLearnFirstNameGeneralizes(t *testing.T) {
	prog, err := Learn([]Example{
		{Input: "John Smith", Output: "John"},
		{Input: "Jane Doe", Output: "Jane"},
	})
	if err != nil {
		t.Fatalf("Learn error: %v", err)
	}

	out, ok := prog.Apply("Mary Jones")
	if !ok || out != "Mary" {
		t.Fatalf("Apply(\"Mary Jones\") = (%q, %v), want (\"Mary\", true)", out, ok)
	}
}

// TestLearnLastNameRegexPosition is the §8 scenario where the start of
// the last name is located only by a regex-delimited position (the space
// boundary), not an absolute offset, because the two examples' first
// names differ in length.
func TestLearnLastNameRegexPosition(t *testing.T) {
	prog, err := Learn([]Example{
		{Input: "John Smith", Output: "Smith"},
		{Input: "Alexandra Doe", Output: "Doe"},
	})
	if err != nil {
		t.Fatalf("Learn error: %v", err)
	}

	out, ok := prog.Apply("Mary Jones")
	if !ok || out != "Jones" {
		t.Fatalf("Apply(\"Mary Jones\") = (%q, %v), want (\"Jones\", true)", out, ok)
	}
}

func TestLearnSingleExampleReproducesItself(t *testing.T) {
	prog, err := Learn([]Example{
		{Input: "John Smith", Output: "John"},
	})
	if err != nil {
		t.Fatalf("Learn error: %v", err)
	}
	out, ok := prog.Apply("John Smith")
	if !ok || out != "John" {
		t.Fatalf("Apply(\"John Smith\") = (%q, %v), want (\"John\", true)", out, ok)
	}
}

func TestParsePair(t *testing.T) {
	ex, err := ParsePair("John Smith,John")
	if err != nil {
		t.Fatalf("ParsePair error: %v", err)
	}
	if ex.Input != "John Smith" || ex.Output != "John" {
		t.Fatalf("ParsePair = %+v, want {John Smith John}", ex)
	}
}

func TestParsePairMissingComma(t *testing.T) {
	if _, err := ParsePair("no comma here"); err == nil {
		t.Fatal("expected an error for a line with no comma delimiter")
	}
}

// Example demonstrates learning a first-name extractor from two
// examples and applying it to a third, unseen input.
func Example_firstName() {
	prog, err := Learn([]Example{
		{Input: "John Smith", Output: "John"},
		{Input: "Jane Doe", Output: "Jane"},
	})
	if err != nil {
		panic(err)
	}
	out, ok := prog.Apply("Mary Jones")
	if !ok {
		panic("no resolving path")
	}
	fmt.Println(out)
	// Output: Mary
}
