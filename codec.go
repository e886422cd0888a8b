// Package textenc converts between raw bytes and their textual encodings.
// The scheme implementations live in the base64, hex and bin subpackages;
// this package holds the contracts they share: the Codec interface, the
// InvalidSyntax error model and the scheme registry.
package textenc

// Codec is the contract shared by every registered encoding scheme:
// encode never fails, decode fails fast with ErrInvalidSyntax, and the
// loose validity check never errors. Implementations are stateless, so a
// single value may be used concurrently from any number of goroutines.
type Codec interface {
	// Name returns the registry name of the scheme (e.g. "base64").
	Name() string

	// Encode renders the UTF-8 text in the scheme's textual form.
	Encode(text string) string

	// Decode parses encoded text back into UTF-8 text. Malformed input is
	// reported as ErrInvalidSyntax without partial output.
	Decode(text string) (string, error)

	// IsValid reports loose validity: the input contains only characters
	// the scheme accepts. It imposes no length constraint.
	IsValid(text string) bool
}

// StrictValidator is implemented by codecs whose alphabet comes with a
// group-size invariant (two hex digits or eight binary digits per byte).
// Strict validity is loose validity plus a nonzero, correctly aligned
// count of non-whitespace symbols.
type StrictValidator interface {
	IsValidStrict(text string) bool
}

// Formatter is implemented by codecs that can re-render cleaned input
// with a separator at every byte boundary.
type Formatter interface {
	Format(text string) (string, error)
}
