package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

// srCodeRegex matches student registration codes of the form NN-NNNNN.
var srCodeRegex = regexp.MustCompile(`^\d{2}-\d{5}$`)

// SRCode represents a student registration code value object
type SRCode struct {
	value string
}

// NewSRCode creates a new SRCode value object with validation
func NewSRCode(value string) (*SRCode, error) {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return nil, fmt.Errorf("SR code cannot be empty")
	}

	if !srCodeRegex.MatchString(trimmed) {
		return nil, fmt.Errorf("invalid SR code format: %s (expected NN-NNNNN)", value)
	}

	return &SRCode{value: trimmed}, nil
}

// String returns the string representation of the SR code
func (s *SRCode) String() string {
	return s.value
}

// Equals checks if two SR code objects are equal
func (s *SRCode) Equals(other *SRCode) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.value == other.value
}
