package gtfs

import "github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/graph"

// Load runs the Feed Loader over dir and hands its output straight to the
// Graph Builder, producing the immutable Graph a Planner will hold for the
// lifetime of the process. Per spec.md §4.1, the loader itself never builds
// edges — it only collects nodes, reference maps and stop-time entries.
func Load(dir string) (*graph.Graph, error) {
	data, err := LoadFeed(dir)
	if err != nil {
		return nil, err
	}

	return graph.Build(graph.BuildInput{
		Nodes:        data.Nodes,
		Agencies:     data.Agencies,
		Routes:       data.Routes,
		Trips:        data.Trips,
		TripRoute:    data.TripRoute,
		RouteMode:    data.RouteMode,
		StopIDToNode: data.StopIDToNode,
		StopTimes:    data.StopTimes,
	}), nil
}
