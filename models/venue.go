package models

import (
	"fmt"
	"time"
)

// Category is the closed set of venue kinds the planner understands.
type Category string

const (
	CategoryRestaurant Category = "RESTAURANT"
	CategoryCafe       Category = "CAFE"
	CategoryDessert    Category = "DESSERT"
	CategoryBar        Category = "BAR"
	CategoryActivity   Category = "ACTIVITY"
)

// Categories lists every known category, in a fixed order.
var Categories = []Category{
	CategoryRestaurant,
	CategoryCafe,
	CategoryDessert,
	CategoryBar,
	CategoryActivity,
}

// Valid reports whether the category is one of the known set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FoodCategories are the categories eligible for the food slot of a plan.
var FoodCategories = []Category{CategoryRestaurant, CategoryCafe, CategoryDessert}

// Venue is an immutable per-query snapshot of a place. The planner never
// mutates a venue; open-state annotations live on OpenVenue instead.
type Venue struct {
	VenueID      string  `json:"venue_id"`
	VenueName    string  `json:"venue_name"`
	Category     Category `json:"category"`
	VenueAddress string  `json:"venue_address"`
	VenueLat     float64 `json:"venue_lat"`
	VenueLon     float64 `json:"venue_lng"`

	WebsiteURL     string `json:"website_url,omitempty"`
	BookingURL     string `json:"booking_url,omitempty"`
	OnDealPlatform bool   `json:"on_deal_platform"`
	DealURL        string `json:"deal_url,omitempty"`

	Schedule *WeeklySchedule `json:"schedule,omitempty"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, category=%s, address=%s)",
		v.VenueID, v.VenueName, v.Category, v.VenueAddress)
}

// HasSchedule reports whether the venue carries any trading-hours data.
func (v *Venue) HasSchedule() bool { return v.Schedule.HasData() }

// HasWebsite reports whether the venue carries a website link.
func (v *Venue) HasWebsite() bool { return v.WebsiteURL != "" }

// HasBookingLink reports whether the venue carries a booking link.
func (v *Venue) HasBookingLink() bool { return v.BookingURL != "" }

// OpenVenue pairs a venue with its computed closing instant for the
// reference instant of one request.
type OpenVenue struct {
	Venue    Venue     `json:"venue"`
	ClosesAt time.Time `json:"closes_at"`
}

// ScoreBreakdown carries the normalized sub-scores behind a final score so
// ranking decisions stay auditable.
type ScoreBreakdown struct {
	OpenScore          float64 `json:"open_score"`
	DealScore          float64 `json:"deal_score"`
	ActionabilityScore float64 `json:"actionability_score"`
}

// ScoredCandidate is a venue with its final score in [0,1] and the breakdown
// that produced it.
type ScoredCandidate struct {
	Venue     Venue          `json:"venue"`
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// Itinerary is a three-part night plan. The three venue ids are pairwise
// distinct whenever the candidate pools allow it.
type Itinerary struct {
	PlanID   string `json:"plan_id"`
	Food     Venue  `json:"food"`
	Activity Venue  `json:"activity"`
	Bar      Venue  `json:"bar"`
}
