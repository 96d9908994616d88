package pathfinder

import (
	"container/heap"
	"math"

	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/graph"
	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/gtfsmodel"
)

// candidateRadii is the ordered probe distance list of SPEC_FULL.md §4.3:
// the search widens a single shared radius until BOTH origin and
// destination have at least one candidate node at that radius, rather
// than committing to a single nearest-neighbor pick that a mode mask
// might exclude, or letting each side stop independently at whatever
// radius first satisfies it alone.
var candidateRadii = []float64{1500, 2500, 4000, 6000}

// FindPath runs one mode-masked A* search from (originLat, originLon) to
// (destLat, destLon) and returns its itinerary under typeLabel, or a
// Result with Found=false if the mask admits no path and the two points
// are too far apart to walk directly.
func FindPath(g *graph.Graph, originLat, originLon, destLat, destLon float64, mask gtfsmodel.Mode, typeLabel string) Result {
	directMeters := gtfsmodel.Haversine(originLat, originLon, destLat, destLon)

	bestTotal := math.Inf(1)
	hasDirect := false
	if directMeters <= 2*gtfsmodel.MaxWalkDistanceMeters {
		bestTotal = directMeters / gtfsmodel.WalkSpeedMPS
		hasDirect = true
	}

	originCandidates, destCandidates := findCandidatePair(g, originLat, originLon, destLat, destLon, mask)

	if len(originCandidates) == 0 || len(destCandidates) == 0 {
		return finalize(g, typeLabel, hasDirect, bestTotal, originLat, originLon, destLat, destLon, nil, nil, -1)
	}

	n := len(g.Nodes)
	gScore := make([]float64, n)
	parent := make([]int, n)
	arrivalTrip := make([]string, n)
	isSeed := make([]bool, n)
	for i := range gScore {
		gScore[i] = math.Inf(1)
		parent[i] = -1
	}

	pq := &priorityQueue{}
	heap.Init(pq)

	for node, meters := range originCandidates {
		g0 := meters / gtfsmodel.WalkSpeedMPS
		gScore[node] = g0
		isSeed[node] = true
		arrivalTrip[node] = gtfsmodel.WalkTripID
		h := gtfsmodel.Haversine(g.Nodes[node].Lat, g.Nodes[node].Lon, destLat, destLon) / gtfsmodel.MaxSpeedMPS
		heap.Push(pq, &item{node: node, gScore: g0, fScore: g0 + h, arrivalTripID: gtfsmodel.WalkTripID})
	}

	bestEndNode := -1

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*item)
		if cur.gScore > gScore[cur.node] {
			continue // stale entry, a cheaper route to this node was already relaxed
		}
		if cur.fScore >= bestTotal {
			break // f is a lower bound on the true cost; nothing left can improve on bestTotal
		}

		if walkMeters, ok := destCandidates[cur.node]; ok {
			candidateTotal := cur.gScore + walkMeters/gtfsmodel.WalkSpeedMPS
			if candidateTotal < bestTotal {
				bestTotal = candidateTotal
				bestEndNode = cur.node
				hasDirect = false
			}
		}

		for _, e := range g.Nodes[cur.node].Outgoing {
			if mask&e.Mode == 0 {
				continue
			}
			penalty := 0.0
			if arrivalTrip[cur.node] != "" && arrivalTrip[cur.node] != e.TripID &&
				arrivalTrip[cur.node] != gtfsmodel.WalkTripID && e.TripID != gtfsmodel.WalkTripID {
				penalty = gtfsmodel.TransferPenaltySeconds
			}
			tentative := gScore[cur.node] + e.Weight + penalty
			if tentative < gScore[e.To] {
				gScore[e.To] = tentative
				parent[e.To] = cur.node
				isSeed[e.To] = false // now reached through cur.node, not by the origin walk-in
				arrivalTrip[e.To] = e.TripID
				h := gtfsmodel.Haversine(g.Nodes[e.To].Lat, g.Nodes[e.To].Lon, destLat, destLon) / gtfsmodel.MaxSpeedMPS
				heap.Push(pq, &item{node: e.To, gScore: tentative, fScore: tentative + h, arrivalTripID: e.TripID})
			}
		}
	}

	return finalize(g, typeLabel, hasDirect, bestTotal, originLat, originLon, destLat, destLon,
		buildPathNodes(parent, isSeed, bestEndNode), arrivalTrip, bestEndNode)
}

// findCandidatePair widens candidateRadii around origin and destination
// together, stopping at the first radius where BOTH sides are non-empty.
// The radius that finally satisfies one side is used to build the other
// side's candidate set too, so neither side is seeded with a smaller
// candidate set than the shared radius actually supports.
func findCandidatePair(g *graph.Graph, originLat, originLon, destLat, destLon float64, mask gtfsmodel.Mode) (map[int]float64, map[int]float64) {
	for _, radius := range candidateRadii {
		originNodes := g.NodesWithinRadiusMode(originLat, originLon, radius, mask)
		destNodes := g.NodesWithinRadiusMode(destLat, destLon, radius, mask)
		if len(originNodes) == 0 || len(destNodes) == 0 {
			continue
		}
		return toCandidateMap(originNodes), toCandidateMap(destNodes)
	}
	return nil, nil
}

func toCandidateMap(nds []graph.NodeDistance) map[int]float64 {
	out := make(map[int]float64, len(nds))
	for _, nd := range nds {
		out[nd.NodeID] = nd.Meters
	}
	return out
}

// buildPathNodes walks the parent chain from end back to the seed node that
// started it, returning the path in origin-to-destination order. It returns
// nil if end is -1 (no graph path beat the direct-walk fallback).
func buildPathNodes(parent []int, isSeed []bool, end int) []int {
	if end == -1 {
		return nil
	}
	var rev []int
	n := end
	for {
		rev = append(rev, n)
		if isSeed[n] {
			break
		}
		n = parent[n]
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}
