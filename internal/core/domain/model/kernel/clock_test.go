package kernel_test

import (
	"testing"
	"time"

	"deliveryproof/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadZone(t *testing.T) {
	t.Run("empty name selects the default zone", func(t *testing.T) {
		loc, err := kernel.LoadZone("")

		require.NoError(t, err)
		assert.Equal(t, kernel.DefaultTimeZone, loc.String())
	})

	t.Run("unknown zones are rejected", func(t *testing.T) {
		_, err := kernel.LoadZone("Mars/Olympus_Mons")

		require.Error(t, err)
	})

	t.Run("default zone follows daylight saving time", func(t *testing.T) {
		loc, err := kernel.LoadZone(kernel.DefaultTimeZone)
		require.NoError(t, err)

		_, winter := time.Date(2025, time.July, 1, 12, 0, 0, 0, loc).Zone()
		_, summer := time.Date(2025, time.January, 15, 12, 0, 0, 0, loc).Zone()

		assert.Equal(t, -4*3600, winter)
		assert.Equal(t, -3*3600, summer)
	})
}

func TestSystemClock(t *testing.T) {
	loc, err := kernel.LoadZone(kernel.DefaultTimeZone)
	require.NoError(t, err)

	clock := kernel.NewSystemClock(loc)

	assert.Equal(t, loc, clock.Now().Location())
	assert.Equal(t, loc, clock.Location())
	assert.Equal(t, time.UTC, kernel.NewSystemClock(nil).Now().Location())
}
