package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oditorium/cleanse/pkg/validator"
)

func TestAny(t *testing.T) {
	v := validator.Any()

	t.Run("accepts everything", func(t *testing.T) {
		assert.True(t, v.Test(""))
		assert.True(t, v.Test("1111"))
		assert.True(t, v.Test("aaaa"))
		assert.True(t, v.Test("  anything at all  "))
	})
}

func TestFunc(t *testing.T) {
	t.Run("adapts a plain predicate", func(t *testing.T) {
		v := validator.Func(func(value string) bool { return value == "ok" })
		assert.True(t, v.Test("ok"))
		assert.False(t, v.Test("nope"))
	})
}

func TestRegex(t *testing.T) {
	t.Run("matches the whole value only", func(t *testing.T) {
		v := validator.Regex(`[a-z][0-9][A-C]`)
		assert.False(t, v.Test(""))
		assert.True(t, v.Test("a0A"))
		assert.True(t, v.Test("b5C"))
		assert.False(t, v.Test("b5C "))
		assert.False(t, v.Test(" b5C"))
		assert.False(t, v.Test("b5Cb5C"))
	})

	t.Run("anchors alternations as a group", func(t *testing.T) {
		// Without the non-capturing group an alternation would leak
		// past the anchors and match "ax" or "xb".
		v := validator.Regex(`a|b`)
		assert.True(t, v.Test("a"))
		assert.True(t, v.Test("b"))
		assert.False(t, v.Test("ax"))
		assert.False(t, v.Test("xb"))
	})
}
