// Package planner implements the Route Planner (SPEC_FULL.md / spec.md
// §4.4): it runs the Pathfinder once per transport-mode mask and returns
// every outcome, reachable or not, for the Service Adapter to shape into a
// response.
//
// Grounded on original_source/RoutingEngine's pathfinder.cpp
// Pathfinder::FindAllRoutes, which runs the same four masks in the same
// order.
package planner

import (
	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/graph"
	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/gtfsmodel"
	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/pathfinder"
)

type maskLabel struct {
	mask  gtfsmodel.Mode
	label string
}

var masks = []maskLabel{
	{gtfsmodel.Bus | gtfsmodel.Walk, "bus_only"},
	{gtfsmodel.Metro | gtfsmodel.Walk, "metro_only"},
	{gtfsmodel.Microbus | gtfsmodel.Walk, "microbus_only"},
	{gtfsmodel.Any | gtfsmodel.Walk, "optimal"},
}

// PlanAll runs the Pathfinder under every mode mask and returns all four
// results in a fixed order (bus, metro, microbus, optimal), whether or not
// each one found a path.
func PlanAll(g *graph.Graph, originLat, originLon, destLat, destLon float64) []pathfinder.Result {
	results := make([]pathfinder.Result, 0, len(masks))
	for _, ml := range masks {
		results = append(results, pathfinder.FindPath(g, originLat, originLon, destLat, destLon, ml.mask, ml.label))
	}
	return results
}

// AnyFound reports whether at least one of the results actually found a
// route, matching the Service Adapter's NOT_FOUND condition.
func AnyFound(results []pathfinder.Result) bool {
	for _, r := range results {
		if r.Found {
			return true
		}
	}
	return false
}
