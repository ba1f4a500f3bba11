package cycle

import (
	"slices"
	"strings"
)

// Kind identifies a decorator variant within a chain
type Kind string

// Built-in decorator kinds
const (
	KindColored     Kind = "colored"
	KindTransparent Kind = "transparent"
)

// Kinds lists the built-in decorator kinds
func Kinds() []Kind {
	return []Kind{KindColored, KindTransparent}
}

// Contains reports whether k is present in chain
func Contains(chain []Kind, k Kind) bool {
	return slices.Contains(chain, k)
}

// Join renders a chain as "colored > transparent"
func Join(chain []Kind) string {
	parts := make([]string, len(chain))
	for i, k := range chain {
		parts[i] = string(k)
	}
	return strings.Join(parts, " > ")
}
