package graph

import (
	"strings"

	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/gtfsmodel"
)

// modePrefixes lists the GTFS stop_id prefix each mode uses in the feed this
// engine was built against. This is a feed-specific convention (see
// SPEC_FULL.md Open Question 2) rather than a portable derivation via the
// stop -> trips -> route -> mode chain.
var modePrefixes = []struct {
	mode   gtfsmodel.Mode
	prefix string
}{
	{gtfsmodel.Metro, "M_"},
	{gtfsmodel.Bus, "B1_"},
	{gtfsmodel.Microbus, "MB_"},
}

const nearestNodeModeFallbackMeters = 5000.0

// NearestNode returns the closest node to (lat, lon) by great-circle
// distance, or -1 if the graph has no nodes.
func (g *Graph) NearestNode(lat, lon float64) int {
	best := -1
	bestDist := -1.0
	for _, n := range g.Nodes {
		d := gtfsmodel.Haversine(lat, lon, n.Lat, n.Lon)
		if best == -1 || d < bestDist {
			best = n.ID
			bestDist = d
		}
	}
	return best
}

// NearestNodeMode returns the closest node whose GTFS stop_id carries one of
// modeMask's prefixes. If no such node lies within
// nearestNodeModeFallbackMeters, it falls back to the unfiltered NearestNode.
func (g *Graph) NearestNodeMode(lat, lon float64, modeMask gtfsmodel.Mode) int {
	best, bestDist := g.nearestNodeModeStrict(lat, lon, modeMask)
	if best == -1 || bestDist > nearestNodeModeFallbackMeters {
		return g.NearestNode(lat, lon)
	}
	return best
}

// NearestNodeModeStrict is NearestNodeMode without the unfiltered fallback:
// it returns -1 when the graph has no node whose stop_id carries one of
// modeMask's prefixes, however far away. Callers that need to know whether
// a mode is genuinely absent from the graph (rather than always resolving
// to something) should use this instead of NearestNodeMode.
func (g *Graph) NearestNodeModeStrict(lat, lon float64, modeMask gtfsmodel.Mode) int {
	best, _ := g.nearestNodeModeStrict(lat, lon, modeMask)
	return best
}

func (g *Graph) nearestNodeModeStrict(lat, lon float64, modeMask gtfsmodel.Mode) (int, float64) {
	best := -1
	bestDist := -1.0
	for _, n := range g.Nodes {
		if !matchesModePrefix(n.GTFSStopID, modeMask) {
			continue
		}
		d := gtfsmodel.Haversine(lat, lon, n.Lat, n.Lon)
		if best == -1 || d < bestDist {
			best = n.ID
			bestDist = d
		}
	}
	return best, bestDist
}

func matchesModePrefix(stopID string, modeMask gtfsmodel.Mode) bool {
	for _, mp := range modePrefixes {
		if modeMask&mp.mode != 0 && strings.HasPrefix(stopID, mp.prefix) {
			return true
		}
	}
	return false
}

// NodeDistance pairs a node id with its great-circle distance from a query
// point, in meters.
type NodeDistance struct {
	NodeID int
	Meters float64
}

// NodesWithinRadius returns the nodes within radiusMeters of (lat, lon),
// using the spatial grid to probe only the 3x3 cell block around the query
// point. Nodes inside the radius but outside that block are not returned
// (see spatialGrid.neighbors).
func (g *Graph) NodesWithinRadius(lat, lon, radiusMeters float64) []NodeDistance {
	return g.nodesWithinRadius(lat, lon, radiusMeters, gtfsmodel.None)
}

// NodesWithinRadiusMode is NodesWithinRadius filtered to nodes whose
// GTFS stop_id carries one of modeMask's prefixes.
func (g *Graph) NodesWithinRadiusMode(lat, lon, radiusMeters float64, modeMask gtfsmodel.Mode) []NodeDistance {
	return g.nodesWithinRadius(lat, lon, radiusMeters, modeMask)
}

func (g *Graph) nodesWithinRadius(lat, lon, radiusMeters float64, modeMask gtfsmodel.Mode) []NodeDistance {
	var out []NodeDistance
	seen := make(map[int]bool)
	g.grid.neighbors(lat, lon, func(id int) {
		if seen[id] {
			return
		}
		seen[id] = true
		n := &g.Nodes[id]
		if modeMask != gtfsmodel.None && !matchesModePrefix(n.GTFSStopID, modeMask) {
			return
		}
		d := gtfsmodel.Haversine(lat, lon, n.Lat, n.Lon)
		if d <= radiusMeters {
			out = append(out, NodeDistance{NodeID: id, Meters: d})
		}
	})
	return out
}
