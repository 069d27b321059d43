package search_listings

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	searchListings "github.com/m04kA/BNB-RentalService/internal/usecase/search_listings"
	"github.com/m04kA/BNB-RentalService/pkg/ptr"
)

// ListingResponse найденный листинг
type ListingResponse struct {
	ListingID  int64    `json:"listingId"`
	OwnerID    int64    `json:"ownerId"`
	Country    string   `json:"country"`
	City       string   `json:"city"`
	Postal     string   `json:"postal"`
	Address    string   `json:"address"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	Type       string   `json:"type"`
	Amenities  []string `json:"amenities"`
	BestPrice  float64  `json:"bestPrice"`
	DistanceKM *float64 `json:"distanceKm,omitempty"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int               `json:"total"`
}

// ParseQuery конвертирует query-параметры в модель use case
func ParseQuery(query url.Values, viewerID int64) (*searchListings.Request, error) {
	req := &searchListings.Request{ViewerID: viewerID}

	var err error
	if req.MinPrice, err = parseFloat(query, "minPrice"); err != nil {
		return nil, err
	}
	if req.MaxPrice, err = parseFloat(query, "maxPrice"); err != nil {
		return nil, err
	}
	if req.Lat, err = parseFloat(query, "lat"); err != nil {
		return nil, err
	}
	if req.Lon, err = parseFloat(query, "lon"); err != nil {
		return nil, err
	}
	if req.RadiusKM, err = parseFloat(query, "radiusKm"); err != nil {
		return nil, err
	}
	if req.DateFrom, err = parseDate(query, "dateFrom"); err != nil {
		return nil, err
	}
	if req.DateTo, err = parseDate(query, "dateTo"); err != nil {
		return nil, err
	}

	req.SortByPrice = parseString(query, "sortByPrice")
	req.PostalPrefix = parseString(query, "postal")
	req.Address = parseString(query, "address")
	req.Type = parseString(query, "type")

	if raw := query.Get("amenities"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				req.Amenities = append(req.Amenities, tag)
			}
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchListings.Response) *SearchResponse {
	out := &SearchResponse{
		Listings: make([]ListingResponse, len(resp.Listings)),
		Total:    resp.Total,
	}
	for i, l := range resp.Listings {
		out.Listings[i] = ListingResponse{
			ListingID:  l.ListingID,
			OwnerID:    l.OwnerID,
			Country:    l.Country,
			City:       l.City,
			Postal:     l.Postal,
			Address:    l.Address,
			Lat:        l.Lat,
			Lon:        l.Lon,
			Type:       l.Type,
			Amenities:  l.Amenities,
			BestPrice:  l.BestPrice,
			DistanceKM: l.DistanceKM,
		}
	}
	return out
}

func parseFloat(query url.Values, key string) (*float64, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return ptr.Ptr(value), nil
}

func parseDate(query url.Values, key string) (*time.Time, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	value, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, err
	}
	return ptr.Ptr(value), nil
}

func parseString(query url.Values, key string) *string {
	raw := query.Get(key)
	if raw == "" {
		return nil
	}
	return ptr.Ptr(raw)
}
