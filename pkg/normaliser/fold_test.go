package normaliser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oditorium/cleanse/pkg/normaliser"
)

func TestFoldDiacritics(t *testing.T) {
	t.Run("strips combining marks", func(t *testing.T) {
		assert.Equal(t, "Jose", normaliser.FoldDiacritics("José"))
		assert.Equal(t, "Muller", normaliser.FoldDiacritics("Müller"))
		assert.Equal(t, "Sao Paulo", normaliser.FoldDiacritics("São Paulo"))
		assert.Equal(t, "Conceicao", normaliser.FoldDiacritics("Conceição"))
	})

	t.Run("leaves plain ASCII untouched", func(t *testing.T) {
		assert.Equal(t, "plain text 123", normaliser.FoldDiacritics("plain text 123"))
		assert.Equal(t, "", normaliser.FoldDiacritics(""))
	})
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", normaliser.CollapseWhitespace("  a \t b\n\nc "))
	assert.Equal(t, "", normaliser.CollapseWhitespace("   "))
}

func TestName(t *testing.T) {
	n := normaliser.Name()

	t.Run("folds diacritics and collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "Jose da Silva", n.Input("  José   da\tSilva "))
		assert.Equal(t, "", n.Input(nil))
	})

	t.Run("output is the canonical form", func(t *testing.T) {
		assert.Equal(t, "Jose da Silva", n.Output("José da Silva"))
	})
}
