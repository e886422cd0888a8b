// Package bin implements the binary-digit codec: eight '0'/'1' digits per
// byte, MSB first, whitespace tolerated on input, space-separated output.
// It mirrors the hex package with a two-symbol alphabet.
package bin

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/oy3o/textenc"
)

// Clean returns only the '0' and '1' characters of text, in order.
func Clean(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r == '0' || r == '1' {
			sb.WriteByte(byte(r))
		}
	}
	return sb.String()
}

// Decode parses binary-digit text into a UTF-8 string. Whitespace is
// skipped; any other non-binary character, a digit count that is not a
// multiple of eight, or decoded bytes that are not valid UTF-8 are
// reported as ErrInvalidSyntax.
func Decode(text string) (string, error) {
	digits := make([]byte, 0, len(text))
	valid := true

	for _, r := range text {
		switch {
		case r == '0' || r == '1':
			digits = append(digits, byte(r))
		case unicode.IsSpace(r):
		default:
			valid = false
		}
	}

	if !valid {
		return "", textenc.InvalidSyntax("non-binary character detected")
	}
	if len(digits)%8 != 0 {
		return "", textenc.InvalidSyntax("binary string must have length multiple of 8")
	}

	out := make([]byte, len(digits)/8)
	for i := range out {
		var b byte
		for bit := 0; bit < 8; bit++ {
			if digits[8*i+bit] == '1' {
				b |= 1 << (7 - bit)
			}
		}
		out[i] = b
	}

	if !utf8.Valid(out) {
		return "", textenc.InvalidSyntax("decoded bytes are not valid UTF-8")
	}
	return string(out), nil
}

// Encode renders every byte of the UTF-8 representation of text as eight
// binary digits, MSB first, with a space between bytes. Never fails.
func Encode(text string) string {
	n := len(text)
	out := make([]byte, 0, textenc.GroupedLen(n, 8))

	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, ' ')
		}
		b := text[i]
		for shift := 7; shift >= 0; shift-- {
			out = append(out, '0'+(b>>shift)&1)
		}
	}

	return string(out)
}

// IsValid reports loose validity: text is non-empty and contains only
// whitespace, '0' and '1'. No length constraint is imposed.
func IsValid(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r != '0' && r != '1' && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsValidStrict reports whether text holds a positive multiple of eight
// binary digits with nothing but whitespace between them.
func IsValidStrict(text string) bool {
	count := 0
	for _, r := range text {
		switch {
		case r == '0' || r == '1':
			count++
		case unicode.IsSpace(r):
		default:
			return false
		}
	}
	return count > 0 && count%8 == 0
}

// Format cleans text and re-renders it with a space at every byte
// boundary. An empty cleaned result, or one whose length is not a
// multiple of eight, is reported as ErrInvalidSyntax.
func Format(text string) (string, error) {
	cleaned := Clean(text)
	n := len(cleaned)

	if n == 0 {
		return "", textenc.InvalidSyntax("empty binary string")
	}
	if n%8 != 0 {
		return "", textenc.InvalidSyntax("binary string length must be multiple of 8")
	}

	out := make([]byte, 0, textenc.GroupedLen(n/8, 8))
	for i := 0; i < n; i += 8 {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, cleaned[i:i+8]...)
	}

	return string(out), nil
}
