// Package hex implements the hexadecimal codec: two digits per byte,
// whitespace tolerated on input, uppercase space-separated output. Case
// is a presentation detail; the ToUpper and ToLower helpers fold it with
// a single bitmask per character.
package hex

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/oy3o/textenc"
)

const upperDigits = "0123456789ABCDEF"

const (
	toUpperMask = 0b1101_1111 // clears the ASCII lowercase bit
	toLowerBit  = 0b0010_0000
)

// ToUpper folds the digits 'a'-'f' to uppercase. Every other character,
// including multi-byte runes, passes through unchanged. Never fails.
func ToUpper(text string) string {
	out := []byte(text)
	for i, c := range out {
		if c >= 'a' && c <= 'f' {
			out[i] = c & toUpperMask
		}
	}
	return string(out)
}

// ToLower folds the digits 'A'-'F' to lowercase. Every other character
// passes through unchanged. Never fails.
func ToLower(text string) string {
	out := []byte(text)
	for i, c := range out {
		if c >= 'A' && c <= 'F' {
			out[i] = c | toLowerBit
		}
	}
	return string(out)
}

// Clean returns only the ASCII hex digits of text, in order.
func Clean(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if isHexDigit(r) {
			sb.WriteByte(byte(r))
		}
	}
	return sb.String()
}

// Decode parses hex text into a UTF-8 string. Whitespace is skipped; any
// other non-hex character, an odd digit count, or decoded bytes that are
// not valid UTF-8 are reported as ErrInvalidSyntax.
func Decode(text string) (string, error) {
	digits := make([]byte, 0, len(text))
	valid := true

	for _, r := range text {
		switch {
		case isHexDigit(r):
			digits = append(digits, byte(r))
		case unicode.IsSpace(r):
		default:
			valid = false
		}
	}

	if !valid {
		return "", textenc.InvalidSyntax("non-hex character detected")
	}
	if len(digits)%2 != 0 {
		return "", textenc.InvalidSyntax("hex string must have even length")
	}

	out := make([]byte, len(digits)/2)
	for i := range out {
		out[i] = nibble(digits[2*i])<<4 | nibble(digits[2*i+1])
	}

	if !utf8.Valid(out) {
		return "", textenc.InvalidSyntax("decoded bytes are not valid UTF-8")
	}
	return string(out), nil
}

// Encode renders every byte of the UTF-8 representation of text as two
// uppercase hex digits, with a space between bytes. Never fails.
func Encode(text string) string {
	n := len(text)
	out := make([]byte, 0, textenc.GroupedLen(n, 2))

	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, ' ')
		}
		b := text[i]
		out = append(out, upperDigits[b>>4], upperDigits[b&0x0F])
	}

	return string(out)
}

// IsValid reports loose validity: text is non-empty and contains only
// whitespace and hex digits. No length constraint is imposed; use
// IsValidStrict before attempting a decode that must succeed.
func IsValid(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !isHexDigit(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsValidStrict reports whether text holds a positive, even number of hex
// digits with nothing but whitespace between them.
func IsValidStrict(text string) bool {
	count := 0
	for _, r := range text {
		switch {
		case isHexDigit(r):
			count++
		case unicode.IsSpace(r):
		default:
			return false
		}
	}
	return count > 0 && count%2 == 0
}

// Format cleans text and re-renders it with a space at every byte
// boundary. An empty or odd-length cleaned result is reported as
// ErrInvalidSyntax.
func Format(text string) (string, error) {
	cleaned := Clean(text)
	n := len(cleaned)

	if n == 0 {
		return "", textenc.InvalidSyntax("empty hex string")
	}
	if n%2 != 0 {
		return "", textenc.InvalidSyntax("hex string length must be multiple of 2")
	}

	out := make([]byte, 0, textenc.GroupedLen(n/2, 2))
	for i := 0; i < n; i += 2 {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, cleaned[i], cleaned[i+1])
	}

	return string(out), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
