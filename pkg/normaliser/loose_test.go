package normaliser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oditorium/cleanse/pkg/normaliser"
)

func TestIdentity(t *testing.T) {
	n := normaliser.Identity{}

	t.Run("passes values through unchanged, nil included", func(t *testing.T) {
		assert.Nil(t, n.Input(nil))
		assert.Equal(t, " raw ", n.Input(" raw "))
		assert.Equal(t, 42, n.Input(42))

		assert.Nil(t, n.Output(nil))
		assert.Equal(t, " raw ", n.Output(" raw "))
	})
}

func TestDate(t *testing.T) {
	t.Run("formats time values on output", func(t *testing.T) {
		n := normaliser.NewDate("")
		dt := time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "15/03/2020", n.Output(dt))
		assert.Equal(t, "15/03/2020", n.Output(&dt))
	})

	t.Run("honours a custom layout", func(t *testing.T) {
		n := normaliser.NewDate("2006-01-02")
		dt := time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "2020-03-15", n.Output(dt))
	})

	t.Run("passes non-dates through", func(t *testing.T) {
		n := normaliser.NewDate("")
		assert.Equal(t, "already formatted", n.Output("already formatted"))
		assert.Equal(t, "", n.Output(nil))

		var p *time.Time
		assert.Equal(t, "", n.Output(p))
	})

	t.Run("input is a pass-through", func(t *testing.T) {
		n := normaliser.NewDate("")
		dt := time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, dt, n.Input(dt))
		assert.Nil(t, n.Input(nil))
	})
}
