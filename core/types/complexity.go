// Package types - Complexity levels
package types

import (
	"fmt"
	"strings"
)

// Complexity is the ordinal size of an asset. It indexes rate and effort tables.
type Complexity string

const (
	ComplexityXSmall Complexity = "xSmall"
	ComplexitySmall  Complexity = "Small"
	ComplexityMedium Complexity = "Medium"
	ComplexityLarge  Complexity = "Large"
	ComplexityXLarge Complexity = "xLarge"
)

// Complexities lists every level in ascending order
var Complexities = []Complexity{
	ComplexityXSmall,
	ComplexitySmall,
	ComplexityMedium,
	ComplexityLarge,
	ComplexityXLarge,
}

// ParseComplexity accepts exactly one of the five level names.
// Matching is case-sensitive; "medium" is not a level.
func ParseComplexity(s string) (Complexity, error) {
	c := Complexity(s)
	if c.Valid() {
		return c, nil
	}
	names := make([]string, len(Complexities))
	for i, level := range Complexities {
		names[i] = string(level)
	}
	return "", fmt.Errorf("invalid complexity %q: must be one of %s", s, strings.Join(names, ", "))
}

// Valid reports whether c is one of the five levels
func (c Complexity) Valid() bool {
	return c.Ordinal() >= 0
}

// Ordinal returns the 0-based position of c, or -1 if c is not a level
func (c Complexity) Ordinal() int {
	for i, level := range Complexities {
		if level == c {
			return i
		}
	}
	return -1
}

// String returns the level name
func (c Complexity) String() string {
	return string(c)
}
