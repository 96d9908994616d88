// Package pathfinder implements the mode-masked, transfer-aware A* search
// (SPEC_FULL.md / spec.md §4.3): given an origin, a destination and a mode
// mask, it finds the cheapest walk-transit-...-walk itinerary a Graph can
// offer under that mask, or reports that none exists.
//
// Grounded on Server/graphs_go/routing.go's AStar/priorityQueue for the Go
// idiom (container/heap, stale-entry pruning) and on
// original_source/RoutingEngine's algo.cpp runAStar / pathfinder.cpp
// Pathfinder::FindPath for the multi-source/multi-target, transfer-penalty
// search itself.
package pathfinder

// Segment is one leg of an itinerary: either a walk, or a ride on a single
// GTFS trip.
type Segment struct {
	StartName       string
	StartLat        float64
	StartLon        float64
	EndName         string
	EndLat          float64
	EndLon          float64
	Method          string // "walking", "bus", "metro" or "microbus"
	NumStops        int
	DistanceMeters  float64
	DurationSeconds float64
}

// Result is one mode-masked search outcome.
type Result struct {
	Type                 string
	Found                bool
	TotalDurationSeconds float64
	TotalDistanceMeters  float64
	Segments             []Segment
}
