package token

import (
	"strings"

	"github.com/oddbit-project/visitordata/utils"
)

const (
	// URLSafeAlphabet is the base64url character set
	URLSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	AlphanumericAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

const (
	ErrEmptyAlphabet = utils.Error("alphabet must not be empty")
	ErrInvalidLength = utils.Error("length must not be negative")
	ErrNilSource     = utils.Error("random source must not be nil")
)

// GenerateString returns a string of exactly length characters, each picked uniformly from alphabet by src.
// Characters may repeat. Length is counted in runes, so multibyte alphabets are supported.
func GenerateString(alphabet string, length int, src Source) (string, error) {
	chars := []rune(alphabet)
	if len(chars) == 0 {
		return "", ErrEmptyAlphabet
	}
	if length < 0 {
		return "", ErrInvalidLength
	}
	if src == nil {
		return "", ErrNilSource
	}

	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		builder.WriteRune(chars[src.IntN(len(chars))])
	}
	return builder.String(), nil
}
