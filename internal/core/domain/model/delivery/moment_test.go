package delivery_test

import (
	"testing"
	"time"

	"deliveryproof/internal/core/domain/model/delivery"
	"deliveryproof/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoment(t *testing.T) {
	loc, err := kernel.LoadZone("America/Santiago")
	require.NoError(t, err)

	at := time.Date(2025, time.July, 1, 9, 5, 3, 0, loc)
	m := delivery.NewMoment(at)

	assert.Equal(t, at, m.Time())
	assert.Equal(t, "01/07/2025 09:05:03", m.Human())
	assert.Equal(t, "20250701090503", m.Compact())
}

func TestPhotoFileName(t *testing.T) {
	id, err := kernel.NewOrderID(1024)
	require.NoError(t, err)

	t.Run("should build deterministic name", func(t *testing.T) {
		m := delivery.NewMoment(time.Date(2025, time.January, 15, 18, 30, 0, 0, time.UTC))

		assert.Equal(t, "entrega_1024_20250115183000.jpg", delivery.PhotoFileName(id, m))
	})

	t.Run("same second yields the same name", func(t *testing.T) {
		a := delivery.NewMoment(time.Date(2025, time.January, 15, 18, 30, 0, 100, time.UTC))
		b := delivery.NewMoment(time.Date(2025, time.January, 15, 18, 30, 0, 900_000_000, time.UTC))

		assert.Equal(t, delivery.PhotoFileName(id, a), delivery.PhotoFileName(id, b))
	})
}
