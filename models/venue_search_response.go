package models

// ProviderVenue matches a single "venues[N]" in the places API search
// response. Hours arrive as raw "HH:MM" strings and are parsed into a
// WeeklySchedule when converting to the domain Venue.
type ProviderVenue struct {
	VenueID      string  `json:"venue_id"`
	VenueName    string  `json:"venue_name"`
	VenueType    string  `json:"venue_type"`
	VenueAddress string  `json:"venue_address"`
	VenueLat     float64 `json:"venue_lat"`
	VenueLng     float64 `json:"venue_lng"`

	Website    string `json:"website,omitempty"`
	BookingURL string `json:"booking_url,omitempty"`
	OnDeals    bool   `json:"on_deals"`
	DealURL    string `json:"deal_url,omitempty"`

	Hours RawWeeklyHours `json:"hours,omitempty"`
}

// ToVenue converts the wire venue into the immutable domain snapshot.
func (pv *ProviderVenue) ToVenue() Venue {
	return Venue{
		VenueID:        pv.VenueID,
		VenueName:      pv.VenueName,
		Category:       Category(pv.VenueType),
		VenueAddress:   pv.VenueAddress,
		VenueLat:       pv.VenueLat,
		VenueLon:       pv.VenueLng,
		WebsiteURL:     pv.Website,
		BookingURL:     pv.BookingURL,
		OnDealPlatform: pv.OnDeals,
		DealURL:        pv.DealURL,
		Schedule:       ParseWeeklySchedule(pv.Hours),
	}
}

// VenueSearchResponse is the top-level JSON returned by GET /venues/search.
type VenueSearchResponse struct {
	Status  string          `json:"status"`
	Venues  []ProviderVenue `json:"venues"`
	VenuesN int             `json:"venues_n"`
}
