package search_listings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	"github.com/m04kA/BNB-RentalService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubTime struct{ now time.Time }

func (s stubTime) Now() time.Time { return s.now }

type fakeListingRepo struct {
	candidates []*domain.SearchCandidate
	gotFilter  domain.ListingSearchFilter
}

func (f *fakeListingRepo) SearchCandidates(_ context.Context, filter domain.ListingSearchFilter) ([]*domain.SearchCandidate, error) {
	f.gotFilter = filter
	return f.candidates, nil
}

// Точка поиска: центр Торонто
const (
	searchLat = 43.6532
	searchLon = -79.3832
)

func newTestUseCase(candidates []*domain.SearchCandidate) (*UseCase, *fakeListingRepo) {
	repo := &fakeListingRepo{candidates: candidates}
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = stubTime{now: time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)}
	return uc, repo
}

func candidate(id int64, price float64) *domain.SearchCandidate {
	return &domain.SearchCandidate{
		Listing: domain.Listing{
			ID:        id,
			OwnerID:   id + 100,
			City:      "Toronto",
			Postal:    "M5V 2T6",
			Lat:       searchLat,
			Lon:       searchLon,
			Type:      "apartment",
			Amenities: []string{"wifi", "kitchen"},
		},
		BestPrice: price,
	}
}

func TestExecute_PassesNormalizedFilterToRepository(t *testing.T) {
	uc, repo := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{
		ViewerID:     7,
		MinPrice:     ptr.Ptr(50.0),
		MaxPrice:     ptr.Ptr(200.0),
		PostalPrefix: ptr.Ptr("m5v 2t6"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), repo.gotFilter.ViewerID)
	require.NotNil(t, repo.gotFilter.PostalPrefix)
	assert.Equal(t, "M5V", *repo.gotFilter.PostalPrefix)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), repo.gotFilter.Today)
}

func TestExecute_AmenitySubsetFilter(t *testing.T) {
	withPool := candidate(1, 100)
	withPool.Listing.Amenities = []string{"wifi", "kitchen", "pool"}
	withoutPool := candidate(2, 90)

	uc, _ := newTestUseCase([]*domain.SearchCandidate{withPool, withoutPool})

	resp, err := uc.Execute(context.Background(), &Request{
		ViewerID:  7,
		Amenities: []string{"POOL", "wifi"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Listings, 1)
	assert.Equal(t, int64(1), resp.Listings[0].ListingID)
}

func TestExecute_GeoRadiusFilter(t *testing.T) {
	near := candidate(1, 100)
	near.Listing.Lat = 43.6973 // ~4.9 km к северу

	far := candidate(2, 90)
	far.Listing.Lat = 43.6992 // ~5.1 km к северу

	uc, _ := newTestUseCase([]*domain.SearchCandidate{near, far})

	resp, err := uc.Execute(context.Background(), &Request{
		ViewerID: 7,
		Lat:      ptr.Ptr(searchLat),
		Lon:      ptr.Ptr(searchLon),
	})
	require.NoError(t, err)

	require.Len(t, resp.Listings, 1)
	assert.Equal(t, int64(1), resp.Listings[0].ListingID)
	require.NotNil(t, resp.Listings[0].DistanceKM)
	assert.InDelta(t, 4.9, *resp.Listings[0].DistanceKM, 0.1)
}

func TestExecute_GeoCustomRadius(t *testing.T) {
	far := candidate(2, 90)
	far.Listing.Lat = 43.6992 // ~5.1 km

	uc, _ := newTestUseCase([]*domain.SearchCandidate{far})

	resp, err := uc.Execute(context.Background(), &Request{
		ViewerID: 7,
		Lat:      ptr.Ptr(searchLat),
		Lon:      ptr.Ptr(searchLon),
		RadiusKM: ptr.Ptr(10.0),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Listings, 1)
}

func TestExecute_SortByPrice(t *testing.T) {
	candidates := []*domain.SearchCandidate{
		candidate(1, 150),
		candidate(2, 80),
		candidate(3, 120),
	}

	t.Run("low to high", func(t *testing.T) {
		uc, _ := newTestUseCase(candidates)
		resp, err := uc.Execute(context.Background(), &Request{
			ViewerID:    7,
			SortByPrice: ptr.Ptr("low_to_high"),
		})
		require.NoError(t, err)
		require.Len(t, resp.Listings, 3)
		assert.Equal(t, []float64{80, 120, 150}, prices(resp))
	})

	t.Run("high to low", func(t *testing.T) {
		uc, _ := newTestUseCase(candidates)
		resp, err := uc.Execute(context.Background(), &Request{
			ViewerID:    7,
			SortByPrice: ptr.Ptr("high_to_low"),
		})
		require.NoError(t, err)
		require.Len(t, resp.Listings, 3)
		assert.Equal(t, []float64{150, 120, 80}, prices(resp))
	})

	t.Run("no sort keeps repository order", func(t *testing.T) {
		uc, _ := newTestUseCase(candidates)
		resp, err := uc.Execute(context.Background(), &Request{ViewerID: 7})
		require.NoError(t, err)
		assert.Equal(t, []float64{150, 80, 120}, prices(resp))
	})
}

func prices(resp *Response) []float64 {
	out := make([]float64, len(resp.Listings))
	for i, l := range resp.Listings {
		out[i] = l.BestPrice
	}
	return out
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(nil)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "min price above max",
			req:     &Request{ViewerID: 7, MinPrice: ptr.Ptr(200.0), MaxPrice: ptr.Ptr(100.0)},
			wantErr: ErrInvalidPriceRange,
		},
		{
			name: "date range inverted",
			req: &Request{
				ViewerID: 7,
				DateFrom: ptr.Ptr(time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)),
				DateTo:   ptr.Ptr(time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)),
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "unknown sort",
			req:     &Request{ViewerID: 7, SortByPrice: ptr.Ptr("cheapest")},
			wantErr: ErrInvalidSort,
		},
		{
			name:    "lat without lon",
			req:     &Request{ViewerID: 7, Lat: ptr.Ptr(43.0)},
			wantErr: ErrInvalidGeo,
		},
		{
			name:    "radius without point",
			req:     &Request{ViewerID: 7, RadiusKM: ptr.Ptr(3.0)},
			wantErr: ErrInvalidGeo,
		},
		{
			name:    "missing viewer",
			req:     &Request{},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "postal prefix too short",
			req:     &Request{ViewerID: 7, PostalPrefix: ptr.Ptr(" m5 ")},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
