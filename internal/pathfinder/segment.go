package pathfinder

import (
	"math"

	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/graph"
	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/gtfsmodel"
)

// finalize turns a search outcome into a Result. Per SPEC_FULL.md's Open
// Question decision, TotalDurationSeconds is left as the raw A* cost
// (bestTotal — it includes STOP_DWELL_TIME and TRANSFER_PENALTY), while
// each segment's own DurationSeconds is recomputed independently from its
// endpoints and its mode's physics speed, the same way
// original_source/RoutingEngine's service_impl.cpp prices a route: the two
// numbers are allowed to disagree.
func finalize(g *graph.Graph, typeLabel string, hasDirect bool, bestTotal float64,
	originLat, originLon, destLat, destLon float64,
	path []int, arrivalTrip []string, bestEndNode int) Result {

	if bestEndNode == -1 {
		if !hasDirect {
			return Result{Type: typeLabel, Found: false, TotalDurationSeconds: math.Inf(1)}
		}
		seg := walkSegment("origin", originLat, originLon, "destination", destLat, destLon)
		return Result{
			Type: typeLabel, Found: true,
			TotalDurationSeconds: bestTotal,
			TotalDistanceMeters:  seg.DistanceMeters,
			Segments:             []Segment{seg},
		}
	}

	var segs []Segment

	firstNode := path[0]
	firstLat, firstLon, firstName := g.Nodes[firstNode].Lat, g.Nodes[firstNode].Lon, g.Nodes[firstNode].Name
	segs = append(segs, walkSegment("origin", originLat, originLon, firstName, firstLat, firstLon))

	segs = append(segs, transitSegments(g, path, arrivalTrip)...)

	lastNode := path[len(path)-1]
	lastLat, lastLon, lastName := g.Nodes[lastNode].Lat, g.Nodes[lastNode].Lon, g.Nodes[lastNode].Name
	segs = append(segs, walkSegment(lastName, lastLat, lastLon, "destination", destLat, destLon))

	totalDistance := 0.0
	for _, s := range segs {
		totalDistance += s.DistanceMeters
	}

	return Result{
		Type: typeLabel, Found: true,
		TotalDurationSeconds: bestTotal,
		TotalDistanceMeters:  totalDistance,
		Segments:             segs,
	}
}

func walkSegment(startName string, startLat, startLon float64, endName string, endLat, endLon float64) Segment {
	meters := gtfsmodel.Haversine(startLat, startLon, endLat, endLon)
	return Segment{
		StartName: startName, StartLat: startLat, StartLon: startLon,
		EndName: endName, EndLat: endLat, EndLon: endLon,
		Method:          gtfsmodel.Walk.String(),
		DistanceMeters:  meters,
		DurationSeconds: meters / gtfsmodel.WalkSpeedMPS,
	}
}

// transitSegments groups consecutive path edges that ride the same GTFS
// trip into one Segment each, mirroring
// original_source/RoutingEngine's algo.cpp segment-reconstruction loop.
// arrivalTrip[n] is the trip id of the edge the search actually relaxed to
// reach node n — reading it back out avoids re-deriving which of possibly
// several parallel edges between two nodes was the one taken. Each
// segment's DistanceMeters is the straight-line haversine between its
// first and last stop, not the sum of its intermediate hops — this
// matches service_impl.cpp's own segment pricing exactly.
func transitSegments(g *graph.Graph, path []int, arrivalTrip []string) []Segment {
	if len(path) < 2 {
		return nil
	}

	var segs []Segment
	start := 0
	curTrip := arrivalTrip[path[1]]

	flush := func(end int) {
		mode := g.TripMode(curTrip)
		startNode, endNode := g.Nodes[path[start]], g.Nodes[path[end]]
		meters := gtfsmodel.Haversine(startNode.Lat, startNode.Lon, endNode.Lat, endNode.Lon)
		segs = append(segs, Segment{
			StartName: startNode.Name, StartLat: startNode.Lat, StartLon: startNode.Lon,
			EndName: endNode.Name, EndLat: endNode.Lat, EndLon: endNode.Lon,
			Method:          mode.String(),
			NumStops:        end - start,
			DistanceMeters:  meters,
			DurationSeconds: meters / gtfsmodel.SpeedForMode(mode),
		})
	}

	for i := 1; i < len(path)-1; i++ {
		trip := arrivalTrip[path[i+1]]
		if trip != curTrip {
			flush(i)
			start = i
			curTrip = trip
		}
	}
	flush(len(path) - 1)

	return segs
}
