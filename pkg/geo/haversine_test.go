package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKM(t *testing.T) {
	t.Run("zero distance for the same point", func(t *testing.T) {
		assert.InDelta(t, 0, HaversineKM(43.6532, -79.3832, 43.6532, -79.3832), 1e-9)
	})

	t.Run("toronto to montreal", func(t *testing.T) {
		// CN Tower -> Old Port of Montreal, roughly 504 km
		d := HaversineKM(43.6426, -79.3871, 45.5086, -73.5539)
		assert.InDelta(t, 504, d, 5)
	})

	t.Run("short city distance", func(t *testing.T) {
		// Two points ~1.1 km apart in downtown Toronto
		d := HaversineKM(43.6532, -79.3832, 43.6629, -79.3832)
		assert.InDelta(t, 1.08, d, 0.05)
	})

	t.Run("symmetry", func(t *testing.T) {
		a := HaversineKM(43.65, -79.38, 45.50, -73.55)
		b := HaversineKM(45.50, -73.55, 43.65, -79.38)
		assert.InDelta(t, a, b, 1e-9)
	})
}
