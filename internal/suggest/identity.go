package suggest

import "strings"

// Normalizer maps raw blame identities to canonical ones before tallying.
// The default keeps the exact-string policy; an alias table can be swapped
// in later without touching aggregation.
type Normalizer interface {
	Normalize(identity string) string
}

type exactNormalizer struct{}

func (exactNormalizer) Normalize(identity string) string {
	return strings.TrimSpace(identity)
}

// ExactMatch returns the default normalizer: whitespace trimming only,
// everything else matches by exact string equality.
func ExactMatch() Normalizer { return exactNormalizer{} }
