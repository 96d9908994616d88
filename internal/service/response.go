// Package service is the Service Adapter (SPEC_FULL.md / spec.md §4.5): it
// binds an inbound {origin, destination} request to a Planner call and
// shapes the four RouteResults into the RouteResponse payload of spec.md
// §6, including the legacy flat "best route" fields.
//
// Grounded on original_source/RoutingEngine's service_impl.cpp GetRoute for
// the field-by-field response shape, and on health-route-server/main.go for
// the gin + cors HTTP wiring.
package service

import (
	"fmt"
	"math"

	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/graph"
	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/gtfsmodel"
	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/pathfinder"
)

// LatLon is a point in {lat,lon} form, used for both request coordinates
// and every location field in the response.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RouteRequest is the inbound GetRoute payload.
type RouteRequest struct {
	Origin      LatLon `json:"origin" binding:"required"`
	Destination LatLon `json:"destination" binding:"required"`
}

// SegmentJSON is one leg of a route option.
type SegmentJSON struct {
	StartLocation   LatLon  `json:"start_location"`
	StartName       string  `json:"start_name"`
	EndLocation     LatLon  `json:"end_location"`
	EndName         string  `json:"end_name"`
	Method          string  `json:"method"`
	NumStops        int     `json:"num_stops"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds int     `json:"duration_seconds"`
}

// RouteJSON is one mode-masked option in the routes[] array.
type RouteJSON struct {
	Type                   string        `json:"type"`
	Found                  bool          `json:"found"`
	TotalDurationSeconds   int           `json:"total_duration_seconds"`
	TotalDurationFormatted string        `json:"total_duration_formatted"`
	TotalSegments          int           `json:"total_segments"`
	TotalDistanceMeters    float64       `json:"total_distance_meters"`
	Segments               []SegmentJSON `json:"segments"`
}

// StepJSON is one leg of the legacy flat "best route" view.
type StepJSON struct {
	Instruction     string  `json:"instruction"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Type            string  `json:"type"`
	StartLocation   LatLon  `json:"start_location"`
	EndLocation     LatLon  `json:"end_location"`
}

// NearestStopJSON is the closest stop of a given mode to a query point,
// mirroring the "[Info] Nearest start/end stop" diagnostic
// original_source/RoutingEngine's algo.cpp main() prints, generalized
// per-mode via graph.Graph.NearestNodeModeStrict.
type NearestStopJSON struct {
	Mode           string  `json:"mode"`
	StopName       string  `json:"stop_name"`
	Location       LatLon  `json:"location"`
	DistanceMeters float64 `json:"distance_meters"`
}

// RouteResponse is the full GetRoute payload.
type RouteResponse struct {
	Query struct {
		Origin      LatLon `json:"origin"`
		Destination LatLon `json:"destination"`
	} `json:"query"`
	Routes []RouteJSON `json:"routes"`

	// Legacy flat fields, mirroring the best (lowest-duration) found route.
	TotalDurationSeconds float64    `json:"total_duration_seconds"`
	TotalDistanceMeters  float64    `json:"total_distance_meters"`
	Steps                []StepJSON `json:"steps"`

	NearestOriginStops      []NearestStopJSON `json:"nearest_origin_stops,omitempty"`
	NearestDestinationStops []NearestStopJSON `json:"nearest_destination_stops,omitempty"`
}

var nearestStopModes = []gtfsmodel.Mode{gtfsmodel.Bus, gtfsmodel.Metro, gtfsmodel.Microbus}

// NearestStops reports, for each transit mode, the closest node whose
// stop_id carries that mode's prefix, using
// graph.Graph.NearestNodeModeStrict. A mode with no matching node anywhere
// in the graph is omitted rather than reported via NearestNodeMode's
// unfiltered fallback, which would otherwise mislabel an unrelated stop as
// the "nearest" one for a mode that doesn't exist near the query point.
func NearestStops(g *graph.Graph, lat, lon float64) []NearestStopJSON {
	var out []NearestStopJSON
	for _, m := range nearestStopModes {
		nodeID := g.NearestNodeModeStrict(lat, lon, m)
		if nodeID == -1 {
			continue
		}
		n := g.Nodes[nodeID]
		out = append(out, NearestStopJSON{
			Mode:           m.String(),
			StopName:       n.Name,
			Location:       LatLon{Lat: n.Lat, Lon: n.Lon},
			DistanceMeters: gtfsmodel.Haversine(lat, lon, n.Lat, n.Lon),
		})
	}
	return out
}

// toIntSeconds rounds a duration to whole seconds, floored at zero.
func toIntSeconds(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Round(v))
}

func formatDuration(totalSeconds int) string {
	return fmt.Sprintf("%d min %d sec", totalSeconds/60, totalSeconds%60)
}

// BuildResponse shapes the Planner's four results into a RouteResponse. It
// returns ok=false when no mode found a path, in which case the caller
// should surface NOT_FOUND rather than this payload.
func BuildResponse(originLat, originLon, destLat, destLon float64, results []pathfinder.Result) (RouteResponse, bool) {
	var resp RouteResponse
	resp.Query.Origin = LatLon{Lat: originLat, Lon: originLon}
	resp.Query.Destination = LatLon{Lat: destLat, Lon: destLon}

	anyFound := false
	var best *pathfinder.Result

	for i := range results {
		r := &results[i]
		route := RouteJSON{Type: r.Type, Found: r.Found}

		if !r.Found {
			resp.Routes = append(resp.Routes, route)
			continue
		}

		anyFound = true
		if best == nil || r.TotalDurationSeconds < best.TotalDurationSeconds {
			best = r
		}

		durSeconds := toIntSeconds(r.TotalDurationSeconds)
		route.TotalDurationSeconds = durSeconds
		route.TotalDurationFormatted = formatDuration(durSeconds)
		route.TotalSegments = len(r.Segments)
		route.TotalDistanceMeters = r.TotalDistanceMeters

		for _, s := range r.Segments {
			route.Segments = append(route.Segments, SegmentJSON{
				StartLocation:   LatLon{Lat: s.StartLat, Lon: s.StartLon},
				StartName:       s.StartName,
				EndLocation:     LatLon{Lat: s.EndLat, Lon: s.EndLon},
				EndName:         s.EndName,
				Method:          s.Method,
				NumStops:        s.NumStops,
				DistanceMeters:  s.DistanceMeters,
				DurationSeconds: toIntSeconds(s.DurationSeconds),
			})
		}

		resp.Routes = append(resp.Routes, route)
	}

	if !anyFound {
		return resp, false
	}

	resp.TotalDurationSeconds = best.TotalDurationSeconds
	resp.TotalDistanceMeters = best.TotalDistanceMeters
	for _, s := range best.Segments {
		resp.Steps = append(resp.Steps, StepJSON{
			Instruction:     fmt.Sprintf("Take %s to %s", s.Method, s.EndName),
			DistanceMeters:  s.DistanceMeters,
			DurationSeconds: s.DurationSeconds,
			Type:            s.Method,
			StartLocation:   LatLon{Lat: s.StartLat, Lon: s.StartLon},
			EndLocation:     LatLon{Lat: s.EndLat, Lon: s.EndLon},
		})
	}

	return resp, true
}
