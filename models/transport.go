// File: models/transport.go
package models

// TransportQuote is one priced transport option for a route.
type TransportQuote struct {
	ID             string   `json:"id" bson:"id"`
	Mode           string   `json:"mode" bson:"mode"` // "flight" or "train"
	Provider       string   `json:"provider,omitempty" bson:"provider,omitempty"`
	Class          string   `json:"class,omitempty" bson:"class,omitempty"`
	ClassLabel     string   `json:"class_label,omitempty" bson:"classLabel,omitempty"`
	Currency       string   `json:"currency" bson:"currency"`
	PricePerPerson float64  `json:"price_per_person" bson:"pricePerPerson"`
	GroupPrice     *float64 `json:"group_price,omitempty" bson:"groupPrice,omitempty"`
	DurationHours  float64  `json:"duration_hours,omitempty" bson:"durationHours,omitempty"`
	Stops          int      `json:"stops,omitempty" bson:"stops,omitempty"`
	Confidence     string   `json:"confidence,omitempty" bson:"confidence,omitempty"` // "live" or "estimated"
	Departure      string   `json:"departure,omitempty" bson:"departure,omitempty"`
	BookingURL     string   `json:"booking_url,omitempty" bson:"bookingURL,omitempty"`
	Notes          string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

// RoutePoint is one endpoint of a priced route.
type RoutePoint struct {
	Label   string `json:"label,omitempty" bson:"label,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

// TransportPricing is the full quote set returned by the pricing collaborator.
type TransportPricing struct {
	TripType      string            `json:"trip_type" bson:"tripType"`
	Travelers     int               `json:"travelers" bson:"travelers"`
	DepartureDate string            `json:"departure_date" bson:"departureDate"`
	DistanceKM    float64           `json:"distance_km,omitempty" bson:"distanceKM,omitempty"`
	Quotes        []TransportQuote  `json:"quotes" bson:"quotes"`
	Source        RoutePoint        `json:"source" bson:"source"`
	Destination   RoutePoint        `json:"destination" bson:"destination"`
	AppliedQuote  *TransportSummary `json:"applied_quote,omitempty" bson:"appliedQuote,omitempty"`
}

// TransportSummary records the quote the pipeline injected, for display.
type TransportSummary struct {
	QuoteID      string  `json:"quote_id" bson:"quoteID"`
	Mode         string  `json:"mode" bson:"mode"`
	Provider     string  `json:"provider" bson:"provider"`
	Currency     string  `json:"currency" bson:"currency"`
	NativeAmount float64 `json:"native_amount" bson:"nativeAmount"`
	USDAmount    int     `json:"usd_amount" bson:"usdAmount"`
	TravelDay    int     `json:"travel_day" bson:"travelDay"`
	Notes        string  `json:"notes,omitempty" bson:"notes,omitempty"`
}
