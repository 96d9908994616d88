// Package graph builds and holds the immutable transit graph: dense-indexed
// stops (Node), directed transitions between them (Edge), GTFS reference
// lookups (Agency/Route/Trip) and the spatial grid used to accelerate
// walking-transfer generation and nearest-neighbor queries.
//
// Grounded on Server/graphs_go/graph.go's Node/Edge/Graph shape and on
// original_source/RoutingEngine's graph.hpp/graph.cpp GTFS field layout.
package graph

import "github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/gtfsmodel"

// Node is a stop in the transit network. Node identifiers are dense,
// 0..len(Nodes)-1, assigned in load order, and immutable once the graph is
// built.
type Node struct {
	ID         int
	GTFSStopID string
	Name       string
	Lat        float64
	Lon        float64
	Outgoing   []Edge
}

// Edge is a directed transition from one Node to another.
type Edge struct {
	To     int
	Weight float64 // seconds, non-negative
	TripID string  // GTFS trip id, or gtfsmodel.WalkTripID for a walking edge
	Mode   gtfsmodel.Mode
}

// Agency is a GTFS agency reference entity.
type Agency struct {
	ID   string
	Name string
}

// Route is a GTFS route reference entity.
type Route struct {
	ID        string
	AgencyID  string
	ShortName string
	Type      int
}

// Trip is a GTFS trip reference entity.
type Trip struct {
	ID      string
	RouteID string
}

// Graph is the immutable transit graph produced by Build. It is safe for
// concurrent read-only use by any number of Pathfinder invocations.
type Graph struct {
	Nodes []Node

	Agencies map[string]Agency
	Routes   map[string]Route
	Trips    map[string]Trip

	// TripRoute maps a GTFS trip id to its route id.
	TripRoute map[string]string
	// RouteMode maps a GTFS route id to its transport mode bit.
	RouteMode map[string]gtfsmodel.Mode

	grid *spatialGrid
}

// TripMode resolves the mode of a trip id, or gtfsmodel.Walk for the walk
// sentinel and gtfsmodel.None if the trip is unknown to the graph.
func (g *Graph) TripMode(tripID string) gtfsmodel.Mode {
	if tripID == gtfsmodel.WalkTripID {
		return gtfsmodel.Walk
	}
	routeID, ok := g.TripRoute[tripID]
	if !ok {
		return gtfsmodel.None
	}
	return g.RouteMode[routeID]
}
