package base64

import "github.com/oy3o/textenc"

// Scheme is the name this codec registers under.
const Scheme = "base64"

// codec adapts the package functions to the textenc.Codec contract.
type codec struct{}

var _ textenc.Codec = codec{}

func (codec) Name() string                       { return Scheme }
func (codec) Encode(text string) string          { return Encode(text) }
func (codec) Decode(text string) (string, error) { return Decode(text) }
func (codec) IsValid(text string) bool           { return IsValid(text) }

func init() { textenc.Register(codec{}) }
