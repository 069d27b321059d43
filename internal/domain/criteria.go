package domain

import "time"

// PriceSort orders search results by their representative price
type PriceSort string

const (
	PriceSortNone      PriceSort = "none"
	PriceSortHighToLow PriceSort = "high_to_low"
	PriceSortLowToHigh PriceSort = "low_to_high"
)

// DateRange is an inclusive calendar-day window; either end may be open
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// GeoRadius restricts results to listings within MaxDistanceKM of a point
type GeoRadius struct {
	Lat           float64
	Lon           float64
	MaxDistanceKM float64
}

// SearchCriteria is the ephemeral set of optional predicates for one
// search invocation. All set predicates are combined with logical AND;
// listings owned by the viewer are always excluded.
type SearchCriteria struct {
	MinPrice *float64
	MaxPrice *float64

	SortByPrice PriceSort

	PostalPrefix *string
	Address      *string
	Type         *string

	Amenities []string

	Dates *DateRange

	Geo *GeoRadius
}

// StoreFilter projects the relational predicates onto the filter the
// listing repository evaluates in a single query. Amenity and geo
// matching stay client-side over the returned candidates.
func (c *SearchCriteria) StoreFilter(viewerID int64, today time.Time) ListingSearchFilter {
	f := ListingSearchFilter{
		ViewerID:     viewerID,
		MinPrice:     c.MinPrice,
		MaxPrice:     c.MaxPrice,
		PostalPrefix: c.PostalPrefix,
		Address:      c.Address,
		Type:         c.Type,
		Today:        today,
	}
	if c.Dates != nil {
		f.DateFrom = c.Dates.Start
		f.DateTo = c.Dates.End
	}
	return f
}
