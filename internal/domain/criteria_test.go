package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BNB-RentalService/pkg/ptr"
)

func TestSearchCriteria_StoreFilter(t *testing.T) {
	today := day(2026, time.September, 1)

	t.Run("projects relational predicates", func(t *testing.T) {
		from := day(2026, time.September, 10)
		to := day(2026, time.September, 15)

		c := &SearchCriteria{
			MinPrice:     ptr.Ptr(50.0),
			MaxPrice:     ptr.Ptr(200.0),
			PostalPrefix: ptr.Ptr("M5V"),
			Type:         ptr.Ptr("apartment"),
			Amenities:    []string{"wifi"},
			Dates:        &DateRange{Start: &from, End: &to},
			Geo:          &GeoRadius{Lat: 43.65, Lon: -79.38, MaxDistanceKM: 5},
		}

		f := c.StoreFilter(7, today)

		assert.Equal(t, int64(7), f.ViewerID)
		assert.Equal(t, today, f.Today)
		assert.Equal(t, 50.0, *f.MinPrice)
		assert.Equal(t, 200.0, *f.MaxPrice)
		assert.Equal(t, "M5V", *f.PostalPrefix)
		assert.Equal(t, "apartment", *f.Type)
		require.NotNil(t, f.DateFrom)
		assert.Equal(t, from, *f.DateFrom)
		require.NotNil(t, f.DateTo)
		assert.Equal(t, to, *f.DateTo)
	})

	t.Run("open-ended date range", func(t *testing.T) {
		from := day(2026, time.September, 10)

		c := &SearchCriteria{Dates: &DateRange{Start: &from}}
		f := c.StoreFilter(7, today)

		require.NotNil(t, f.DateFrom)
		assert.Nil(t, f.DateTo)
	})

	t.Run("no dates set", func(t *testing.T) {
		c := &SearchCriteria{}
		f := c.StoreFilter(7, today)

		assert.Nil(t, f.DateFrom)
		assert.Nil(t, f.DateTo)
	})
}
