package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Search defaults
const (
	// DefaultSearchRadiusKM applies when coordinates are given without an explicit radius
	DefaultSearchRadiusKM = 5.0

	// PostalPrefixLength is the number of postal code characters compared
	// ("same and adjacent" postal areas)
	PostalPrefixLength = 3
)

// Schedule constants
const (
	// WeekSlotCount is the number of consecutive days created by add-next-week
	WeekSlotCount = 7
)

// Business validation constants
const (
	MinRentalPrice = 0.0
)
