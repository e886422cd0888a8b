package bin

import "github.com/oy3o/textenc"

// Scheme is the name this codec registers under.
const Scheme = "bin"

// codec adapts the package functions to the textenc.Codec contract,
// including the strict-validation and formatting capabilities.
type codec struct{}

var (
	_ textenc.Codec           = codec{}
	_ textenc.StrictValidator = codec{}
	_ textenc.Formatter       = codec{}
)

func (codec) Name() string                       { return Scheme }
func (codec) Encode(text string) string          { return Encode(text) }
func (codec) Decode(text string) (string, error) { return Decode(text) }
func (codec) IsValid(text string) bool           { return IsValid(text) }
func (codec) IsValidStrict(text string) bool     { return IsValidStrict(text) }
func (codec) Format(text string) (string, error) { return Format(text) }

func init() { textenc.Register(codec{}) }
