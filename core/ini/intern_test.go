package ini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterner_CanonicalizesRepeats(t *testing.T) {
	in := NewInterner()

	a1 := in.Intern("alpha")
	b := in.Intern("beta")
	a2 := in.Intern("alpha")

	assert.Equal(t, "alpha", a1)
	assert.Equal(t, "beta", b)
	assert.Equal(t, a1, a2)
	assert.Equal(t, 2, in.Len())
}

func TestInterner_EmptyNameIsValid(t *testing.T) {
	in := NewInterner()

	assert.Equal(t, "", in.Intern(""))
	assert.Equal(t, 1, in.Len())
}
