// File: handlers/handler.go
package handlers

import (
	plansRepo "tripmesh/database/repository/plans"
	"tripmesh/services/planner"
	"tripmesh/services/traveldata"
)

// HandlerBundle aggregates the services the HTTP layer depends on.
type HandlerBundle struct {
	Planner    planner.Service
	TravelData traveldata.Service
	Plans      plansRepo.PlanRepository
}
