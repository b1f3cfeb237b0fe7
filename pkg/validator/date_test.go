package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oditorium/cleanse/pkg/validator"
)

func TestPastDate(t *testing.T) {
	v := validator.PastDate("2006-01-02")

	t.Run("accepts dates before today", func(t *testing.T) {
		assert.True(t, v.Test("1990-05-01"))
		yesterday := time.Now().UTC().AddDate(0, 0, -1)
		assert.True(t, v.Test(yesterday.Format("2006-01-02")))
	})

	t.Run("rejects today and future dates", func(t *testing.T) {
		today := time.Now().UTC()
		assert.False(t, v.Test(today.Format("2006-01-02")))
		assert.False(t, v.Test("2999-01-01"))
	})

	t.Run("rejects unparseable values", func(t *testing.T) {
		assert.False(t, v.Test(""))
		assert.False(t, v.Test("01/05/1990"))
		assert.False(t, v.Test("not a date"))
	})
}
