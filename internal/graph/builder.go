package graph

import (
	"sort"

	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/gtfsmodel"
)

// StopTimeEntry is one row of stop_times.txt/csv surviving the loader's
// row-level validation (its stop_id resolved to a known stop).
type StopTimeEntry struct {
	TripID   string
	StopID   string
	Sequence int
}

// BuildInput is everything the Feed Loader hands to the Graph Builder. Nodes
// must already carry their dense, load-order identifiers; the builder only
// appends edges and the spatial index.
type BuildInput struct {
	Nodes        []Node
	Agencies     map[string]Agency
	Routes       map[string]Route
	Trips        map[string]Trip
	TripRoute    map[string]string
	RouteMode    map[string]gtfsmodel.Mode
	StopIDToNode map[string]int
	StopTimes    []StopTimeEntry
}

// Build assembles the immutable Graph: transit edges from consecutive
// stop-times within a trip, then a symmetric mesh of walking-transfer edges
// between stops within gtfsmodel.MaxWalkDistanceMeters of each other.
//
// Grounded on original_source/RoutingEngine's algo.cpp loadStopTimes /
// generateTransferEdges.
func Build(in BuildInput) *Graph {
	g := &Graph{
		Nodes:     in.Nodes,
		Agencies:  in.Agencies,
		Routes:    in.Routes,
		Trips:     in.Trips,
		TripRoute: in.TripRoute,
		RouteMode: in.RouteMode,
	}

	addTransitEdges(g, in)
	buildSpatialGrid(g)
	addWalkingEdges(g)

	return g
}

func addTransitEdges(g *Graph, in BuildInput) {
	entries := make([]StopTimeEntry, len(in.StopTimes))
	copy(entries, in.StopTimes)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TripID != entries[j].TripID {
			return entries[i].TripID < entries[j].TripID
		}
		return entries[i].Sequence < entries[j].Sequence
	})

	for i := 1; i < len(entries); i++ {
		prev, curr := entries[i-1], entries[i]
		if prev.TripID != curr.TripID {
			continue
		}

		u, uok := in.StopIDToNode[prev.StopID]
		v, vok := in.StopIDToNode[curr.StopID]
		if !uok || !vok || u == v {
			continue
		}

		mode := g.RouteMode[g.TripRoute[prev.TripID]]
		if mode == gtfsmodel.None {
			mode = gtfsmodel.Bus
		}

		dist := gtfsmodel.Haversine(g.Nodes[u].Lat, g.Nodes[u].Lon, g.Nodes[v].Lat, g.Nodes[v].Lon)
		weight := dist/gtfsmodel.SpeedForMode(mode) + gtfsmodel.StopDwellSeconds

		g.Nodes[u].Outgoing = append(g.Nodes[u].Outgoing, Edge{
			To: v, Weight: weight, TripID: prev.TripID, Mode: mode,
		})

		// Microbus lines run both directions but the feed only describes
		// them one-way; metro and bus edges stay unidirectional.
		if mode == gtfsmodel.Microbus {
			g.Nodes[v].Outgoing = append(g.Nodes[v].Outgoing, Edge{
				To: u, Weight: weight, TripID: prev.TripID, Mode: mode,
			})
		}
	}
}

func buildSpatialGrid(g *Graph) {
	grid := newSpatialGrid()
	for _, n := range g.Nodes {
		grid.insert(n.ID, n.Lat, n.Lon)
	}
	g.grid = grid
}

func addWalkingEdges(g *Graph) {
	for i := range g.Nodes {
		ni := &g.Nodes[i]
		g.grid.neighbors(ni.Lat, ni.Lon, func(j int) {
			if i >= j {
				return
			}
			nj := &g.Nodes[j]
			dist := gtfsmodel.Haversine(ni.Lat, ni.Lon, nj.Lat, nj.Lon)
			if dist <= 0 || dist > gtfsmodel.MaxWalkDistanceMeters {
				return
			}
			weight := dist / gtfsmodel.WalkSpeedMPS
			ni.Outgoing = append(ni.Outgoing, Edge{To: j, Weight: weight, TripID: gtfsmodel.WalkTripID, Mode: gtfsmodel.Walk})
			nj.Outgoing = append(nj.Outgoing, Edge{To: i, Weight: weight, TripID: gtfsmodel.WalkTripID, Mode: gtfsmodel.Walk})
		})
	}
}
