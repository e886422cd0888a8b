// Package base64 implements the standard Base64 alphabet (A-Z, a-z, 0-9,
// '+', '/') with '=' padding. Decoding is driven by a 256-entry lookup
// table built once at package init; every operation is pure and safe for
// concurrent use.
package base64

import (
	"unicode/utf8"

	"github.com/oy3o/textenc"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// invalid marks byte values outside the alphabet in the decode table.
const invalid = 0xFF

// decodeTable maps every possible input byte to its 6-bit symbol index,
// or to invalid. Built once, never mutated.
var decodeTable = buildDecodeTable()

func buildDecodeTable() (table [256]byte) {
	for i := range table {
		table[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = byte(i)
	}
	return table
}

// Encode renders the UTF-8 representation of text as Base64. Never fails.
func Encode(text string) string {
	return EncodeBytes([]byte(text))
}

// EncodeBytes renders data as Base64. The output length is always
// 4*ceil(len(data)/3); the final group is padded with '=' when the input
// is not a multiple of three bytes. Never fails.
func EncodeBytes(data []byte) string {
	n := len(data)
	out := make([]byte, 0, textenc.Roundup(n, 3)/3*4)

	i := 0
	for ; i+3 <= n; i += 3 {
		b0, b1, b2 := data[i], data[i+1], data[i+2]
		out = append(out,
			alphabet[b0>>2],
			alphabet[(b0&0x03)<<4|b1>>4],
			alphabet[(b1&0x0F)<<2|b2>>6],
			alphabet[b2&0x3F],
		)
	}

	switch n - i {
	case 1:
		b0 := data[i]
		out = append(out, alphabet[b0>>2], alphabet[(b0&0x03)<<4], '=', '=')
	case 2:
		b0, b1 := data[i], data[i+1]
		out = append(out, alphabet[b0>>2], alphabet[(b0&0x03)<<4|b1>>4], alphabet[(b1&0x0F)<<2], '=')
	}

	return string(out)
}

// Decode parses Base64 text and returns the decoded bytes as a UTF-8
// string. Decoded bytes that are not valid UTF-8 are rejected with
// ErrInvalidSyntax; use DecodeBytes for arbitrary binary payloads.
func Decode(text string) (string, error) {
	decoded, err := DecodeBytes(text)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(decoded) {
		return "", textenc.InvalidSyntax("decoded bytes are not valid UTF-8")
	}
	return string(decoded), nil
}

// DecodeBytes parses Base64 text into raw bytes. The input length must be
// a multiple of four; each 4-symbol group yields 3, 2 or 1 bytes depending
// on its '=' padding. Padding may only terminate the input. Malformed
// input is reported as ErrInvalidSyntax without partial output.
func DecodeBytes(text string) ([]byte, error) {
	n := len(text)
	if n%4 != 0 {
		return nil, textenc.InvalidSyntax("base64 input length must be multiple of 4")
	}

	out := make([]byte, 0, n/4*3)
	for i := 0; i < n; i += 4 {
		c0, c1, c2, c3 := text[i], text[i+1], text[i+2], text[i+3]
		a0, a1, a2, a3 := decodeTable[c0], decodeTable[c1], decodeTable[c2], decodeTable[c3]

		if a0 == invalid {
			return nil, textenc.InvalidSyntax("invalid base64 character %q", c0)
		}
		if a1 == invalid {
			return nil, textenc.InvalidSyntax("invalid base64 character %q", c1)
		}
		if a2 == invalid && c2 != '=' {
			return nil, textenc.InvalidSyntax("invalid base64 character %q", c2)
		}
		if a3 == invalid && c3 != '=' {
			return nil, textenc.InvalidSyntax("invalid base64 character %q", c3)
		}

		switch {
		case c2 == '=':
			if c3 != '=' {
				return nil, textenc.InvalidSyntax("invalid padding: expected '=' at position 4")
			}
			if i+4 != n {
				return nil, textenc.InvalidSyntax("invalid padding: '=' before final group")
			}
			out = append(out, a0<<2|a1>>4)
		case c3 == '=':
			if i+4 != n {
				return nil, textenc.InvalidSyntax("invalid padding: '=' before final group")
			}
			out = append(out, a0<<2|a1>>4, a1<<4|a2>>2)
		default:
			out = append(out, a0<<2|a1>>4, a1<<4|a2>>2, a2<<6|a3)
		}
	}

	return out, nil
}

// IsValid reports whether text could be Base64: length is a multiple of
// four, every character is alphanumeric, '+', '/' or '=', and '=' occurs
// only in the final two positions. Never errors.
func IsValid(text string) bool {
	n := len(text)
	if n%4 != 0 {
		return false
	}

	for i := 0; i < n; i++ {
		c := text[i]
		if decodeTable[c] == invalid && c != '=' {
			return false
		}
		if c == '=' {
			if i < n-2 {
				return false
			}
			// A '=' in the penultimate position must be followed by '='.
			if i == n-2 && text[n-1] != '=' {
				return false
			}
		}
	}

	return true
}
