package search_listings

import (
	"context"

	searchListings "github.com/m04kA/BNB-RentalService/internal/usecase/search_listings"
)

type SearchListingsUseCase interface {
	Execute(ctx context.Context, req *searchListings.Request) (*searchListings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
