package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	var nilPointer *int
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name(nilPointer))

	first := Name(1)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(1))
	assert.NotEqual(t, first, Name(2))

	seen := map[string]bool{}
	for i := 100; i < 200; i++ {
		name := Name(i)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}

func TestName_Exhausted(t *testing.T) {
	original := generateName
	defer func() { generateName = original }()
	generateName = func() string { return "SameOldName" }

	first := Name("exhausted 1")
	second := Name("exhausted 2")
	third := Name("exhausted 3")
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, second, third)
	assert.NotEqual(t, first, third)
	assert.Contains(t, second, "SameOldName")
}
