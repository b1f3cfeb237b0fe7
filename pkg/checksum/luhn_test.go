package checksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oditorium/cleanse/pkg/checksum"
)

func TestLuhn(t *testing.T) {
	t.Run("accepts valid card numbers", func(t *testing.T) {
		assert.True(t, checksum.Luhn("4111111111111111"))
		assert.True(t, checksum.Luhn("4532015112830366"))
		assert.True(t, checksum.Luhn("79927398713"))
	})

	t.Run("rejects invalid checksums", func(t *testing.T) {
		assert.False(t, checksum.Luhn("4111111111111112"))
		assert.False(t, checksum.Luhn("79927398710"))
	})

	t.Run("rejects empty and non-digit input", func(t *testing.T) {
		assert.False(t, checksum.Luhn(""))
		assert.False(t, checksum.Luhn("4111 1111 1111 1111"))
		assert.False(t, checksum.Luhn("abcd"))
	})
}

func TestValidRoutingNumber(t *testing.T) {
	t.Run("accepts valid routing numbers", func(t *testing.T) {
		assert.True(t, checksum.ValidRoutingNumber("021000021"))
		assert.True(t, checksum.ValidRoutingNumber("011401533"))
	})

	t.Run("rejects invalid checksums", func(t *testing.T) {
		assert.False(t, checksum.ValidRoutingNumber("021000022"))
	})

	t.Run("rejects wrong length and non-digits", func(t *testing.T) {
		assert.False(t, checksum.ValidRoutingNumber(""))
		assert.False(t, checksum.ValidRoutingNumber("02100002"))
		assert.False(t, checksum.ValidRoutingNumber("0210000210"))
		assert.False(t, checksum.ValidRoutingNumber("02100002a"))
	})
}
