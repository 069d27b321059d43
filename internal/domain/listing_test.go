package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListing_HasAllAmenities(t *testing.T) {
	listing := Listing{
		Amenities: []string{"WiFi", "Kitchen", "Free parking"},
	}

	tests := []struct {
		name string
		tags []string
		want bool
	}{
		{name: "empty request matches", tags: nil, want: true},
		{name: "single tag", tags: []string{"wifi"}, want: true},
		{name: "case and space normalized", tags: []string{" WIFI ", "kitchen"}, want: true},
		{name: "full subset", tags: []string{"wifi", "kitchen", "free parking"}, want: true},
		{name: "missing tag fails", tags: []string{"wifi", "pool"}, want: false},
		{name: "substring is not a match", tags: []string{"parking"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listing.HasAllAmenities(tt.tags))
		})
	}
}

func TestNormalizePostalPrefix(t *testing.T) {
	assert.Equal(t, "M5V", NormalizePostalPrefix("m5v 2t6"))
	assert.Equal(t, "M5V", NormalizePostalPrefix("M5V2T6"))
	assert.Equal(t, "M5", NormalizePostalPrefix(" m5 "))
	assert.Equal(t, "", NormalizePostalPrefix(""))
}
