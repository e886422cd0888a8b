package textenc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidSyntax(t *testing.T) {
	err := InvalidSyntax("bad character %q at offset %d", 'x', 3)
	assert.True(t, errors.Is(err, ErrInvalidSyntax))
	assert.Equal(t, `textenc: invalid syntax: bad character 'x' at offset 3`, err.Error())
}
