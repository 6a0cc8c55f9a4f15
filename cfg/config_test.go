package cfg

import (
	"errors"
	"testing"
)

// TestDefaultConfigValues verifies DefaultConfig returns expected field values.
func TestDefaultConfigValues(t *testing.T) {
	c := DefaultConfig()

	if c.MaxTokenSeqLen != 3 {
		t.Errorf("MaxTokenSeqLen = %d, want 3", c.MaxTokenSeqLen)
	}
	if c.MaxOccurrenceWitnesses != 32 {
		t.Errorf("MaxOccurrenceWitnesses = %d, want 32", c.MaxOccurrenceWitnesses)
	}
	if c.MaxDagEdges != 200000 {
		t.Errorf("MaxDagEdges = %d, want 200000", c.MaxDagEdges)
	}
	if c.MaxPathsReturned != 64 {
		t.Errorf("MaxPathsReturned = %d, want 64", c.MaxPathsReturned)
	}
}

// TestDefaultConfigPassesValidation verifies DefaultConfig always validates.
func TestDefaultConfigPassesValidation(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

// TestConfigValidateMaxOccurrenceWitnesses tests MaxOccurrenceWitnesses
// validation boundaries.
func TestConfigValidateMaxOccurrenceWitnesses(t *testing.T) {
	tests := []struct {
		name  string
		value int
		valid bool
	}{
		{"zero is invalid", 0, false},
		{"minimum valid (1)", 1, true},
		{"typical (32)", 32, true},
		{"maximum valid (10000)", 10_000, true},
		{"above maximum", 10_001, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			c.MaxOccurrenceWitnesses = tt.value
			err := c.Validate()

			if (err == nil) != tt.valid {
				t.Errorf("MaxOccurrenceWitnesses=%d: Validate() error = %v, wantValid %v",
					tt.value, err, tt.valid)
			}
			if !tt.valid {
				var cfgErr *Error
				if !errors.As(err, &cfgErr) {
					t.Fatalf("error type = %T, want *Error", err)
				}
				if cfgErr.Field != "MaxOccurrenceWitnesses" {
					t.Errorf("Error.Field = %q, want %q", cfgErr.Field, "MaxOccurrenceWitnesses")
				}
			}
		})
	}
}

// TestConfigErrorFormat tests that Error produces readable error messages.
func TestConfigErrorFormat(t *testing.T) {
	err := &Error{Field: "MaxOccurrenceWitnesses", Message: "must be between 1 and 10,000"}
	want := "flashfill: invalid config: MaxOccurrenceWitnesses: must be between 1 and 10,000"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
