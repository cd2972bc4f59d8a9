// File: models/plan.go
package models

import "time"

// PlanRequest is the validated input for one itinerary generation.
type PlanRequest struct {
	Source             string       `json:"source" bson:"source"`
	Destination        string       `json:"destination" bson:"destination"`
	Days               int          `json:"days" bson:"days"`
	Budget             float64      `json:"budget" bson:"budget"`
	Style              string       `json:"style" bson:"style"`
	Interests          []string     `json:"interests" bson:"interests"`
	Group              string       `json:"group" bson:"group"`
	SpecialNeeds       string       `json:"special_needs,omitempty" bson:"specialNeeds,omitempty"`
	Travelers          int          `json:"travelers" bson:"travelers"`
	StartDate          string       `json:"start_date,omitempty" bson:"startDate,omitempty"`
	SourceDetails      PlaceDetails `json:"source_details,omitempty" bson:"sourceDetails,omitempty"`
	DestinationDetails PlaceDetails `json:"destination_details,omitempty" bson:"destinationDetails,omitempty"`
}

// PlanResult is what the pipeline hands back to its caller: the normalized
// documents plus the untouched raw ones for audit.
type PlanResult struct {
	Itinerary    *Itinerary        `json:"itinerary"`
	ItineraryRaw map[string]any    `json:"itinerary_raw"`
	Budget       *BudgetEstimate   `json:"budget"`
	BudgetRaw    map[string]any    `json:"budget_raw"`
	Transport    *TransportPricing `json:"transport,omitempty"`
	Hotels       []POI             `json:"hotels,omitempty"`
}

// PlanRecord is the archived form of a generated plan.
type PlanRecord struct {
	ID           string            `bson:"_id" json:"id"`
	Request      PlanRequest       `bson:"request" json:"request"`
	Itinerary    *Itinerary        `bson:"itinerary" json:"itinerary"`
	ItineraryRaw map[string]any    `bson:"itineraryRaw,omitempty" json:"itinerary_raw,omitempty"`
	Budget       *BudgetEstimate   `bson:"budget" json:"budget"`
	BudgetRaw    map[string]any    `bson:"budgetRaw,omitempty" json:"budget_raw,omitempty"`
	Transport    *TransportSummary `bson:"transport,omitempty" json:"transport,omitempty"`
	CreatedAt    time.Time         `bson:"createdAt" json:"created_at"`
}
