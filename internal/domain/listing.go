package domain

import (
	"strings"
	"time"
)

// Listing is a read-only view of a listing directory record.
// Listing CRUD is owned by the listing service; this core only reads
// location, type, amenities and ownership for search and authorization.
type Listing struct {
	ID      int64
	OwnerID int64

	Country string
	City    string
	Postal  string
	Address string

	Lat float64
	Lon float64

	Type string
	// Amenities is a set of tags, matched by subset rather than by
	// substring search on a delimited string
	Amenities []string
}

// PostalPrefix returns the case-normalized prefix used for the
// "same and adjacent" postal area match
func (l *Listing) PostalPrefix() string {
	return NormalizePostalPrefix(l.Postal)
}

// HasAllAmenities returns true if the listing carries every requested tag
func (l *Listing) HasAllAmenities(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	owned := make(map[string]struct{}, len(l.Amenities))
	for _, a := range l.Amenities {
		owned[normalizeTag(a)] = struct{}{}
	}
	for _, tag := range tags {
		if _, ok := owned[normalizeTag(tag)]; !ok {
			return false
		}
	}
	return true
}

// NormalizePostalPrefix uppercases a postal code and cuts it down to the
// compared prefix length
func NormalizePostalPrefix(postal string) string {
	normalized := strings.ToUpper(strings.TrimSpace(postal))
	if len(normalized) > PostalPrefixLength {
		return normalized[:PostalPrefixLength]
	}
	return normalized
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// ListingSearchFilter is the relational part of the search criteria,
// evaluated by the listing repository in a single query. Geo radius and
// amenity matching are applied by the search use case on top of these
// candidates.
type ListingSearchFilter struct {
	// ViewerID excludes listings owned by the searching user
	ViewerID int64

	MinPrice *float64
	MaxPrice *float64

	PostalPrefix *string
	Address      *string
	Type         *string

	// DateFrom/DateTo bound the qualifying open slots (inclusive);
	// when unset, any open priced slot from today onward qualifies
	DateFrom *time.Time
	DateTo   *time.Time

	// Today is the derived-state boundary: slots before it are past
	// and never qualify
	Today time.Time
}

// SearchCandidate is a listing together with the representative price of
// its qualifying open slots (the minimum one)
type SearchCandidate struct {
	Listing   Listing
	BestPrice float64
}
