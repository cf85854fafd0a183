package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Prefixes for externally visible entity ids (Stripe-style)
const (
	PrefixListing      = "lst"
	PrefixInquiry      = "inq"
	PrefixNotification = "ntf"
	PrefixBonus        = "bns"
)

// Generate creates a random Base62 short ID of the given length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix creates an ID in the format "prefix_randomstring".
func GenerateWithPrefix(prefix string) (string, error) {
	id, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}

// ValidatePrefix checks that prefixedID is "<expectedPrefix>_<base62>".
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, shortID, ok := strings.Cut(prefixedID, "_")
	if !ok || shortID == "" {
		return fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	for i := 0; i < len(shortID); i++ {
		if !strings.ContainsRune(alphabet, rune(shortID[i])) {
			return fmt.Errorf("invalid character in ID: %s", prefixedID)
		}
	}
	return nil
}

func NewListingID() (string, error)      { return GenerateWithPrefix(PrefixListing) }
func NewInquiryID() (string, error)      { return GenerateWithPrefix(PrefixInquiry) }
func NewNotificationID() (string, error) { return GenerateWithPrefix(PrefixNotification) }
func NewBonusID() (string, error)        { return GenerateWithPrefix(PrefixBonus) }
