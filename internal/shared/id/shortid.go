// Package id generates Stripe-style prefixed short IDs for public-facing
// identifiers (mbr_..., asmt_...). Numeric database IDs never leave the API.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z.
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the random portion length of a generated ID.
	DefaultLength = 12
)

// Prefixes for the entity types exposed through the API.
const (
	PrefixMember     = "mbr"
	PrefixAssessment = "asmt"
)

// Generate creates a cryptographically random Base62 string of the given
// length (DefaultLength when length <= 0).
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random index: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

// GenerateWithPrefix creates an ID in the "prefix_random" form.
func GenerateWithPrefix(prefix string, length int) (string, error) {
	s, err := Generate(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, s), nil
}

// NewMemberID generates a member ID (mbr_xxx).
func NewMemberID() (string, error) {
	return GenerateWithPrefix(PrefixMember, DefaultLength)
}

// NewAssessmentID generates an assessment snapshot ID (asmt_xxx).
func NewAssessmentID() (string, error) {
	return GenerateWithPrefix(PrefixAssessment, DefaultLength)
}

// HasPrefix reports whether s carries the given entity prefix.
func HasPrefix(s, prefix string) bool {
	return strings.HasPrefix(s, prefix+"_")
}
