package pathfinder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/graph"
	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/gtfsmodel"
)

// twoStopGraph is the "trivial walk" / "single-mode reachable" fixture from
// the end-to-end scenarios: S1 and S2 ~150m apart, one bus edge between
// them, plus the walking-transfer edge the Builder auto-generates.
func twoStopGraph() *graph.Graph {
	nodes := []graph.Node{
		{ID: 0, GTFSStopID: "B1_S1", Name: "S1", Lat: 30.00, Lon: 31.00},
		{ID: 1, GTFSStopID: "B1_S2", Name: "S2", Lat: 30.001, Lon: 31.001},
	}
	return graph.Build(graph.BuildInput{
		Nodes:        nodes,
		Agencies:     map[string]graph.Agency{},
		Routes:       map[string]graph.Route{"R1": {ID: "R1", AgencyID: "B1_CAI_BUS"}},
		Trips:        map[string]graph.Trip{"T1": {ID: "T1", RouteID: "R1"}},
		TripRoute:    map[string]string{"T1": "R1"},
		RouteMode:    map[string]gtfsmodel.Mode{"R1": gtfsmodel.Bus},
		StopIDToNode: map[string]int{"B1_S1": 0, "B1_S2": 1},
		StopTimes: []graph.StopTimeEntry{
			{TripID: "T1", StopID: "B1_S1", Sequence: 1},
			{TripID: "T1", StopID: "B1_S2", Sequence: 2},
		},
	})
}

func TestTrivialWalk(t *testing.T) {
	g := twoStopGraph()
	r := FindPath(g, 30.00, 31.00, 30.001, 31.001, gtfsmodel.Walk, "walk_only")

	require.True(t, r.Found)
	require.Len(t, r.Segments, 1)
	require.Equal(t, "walking", r.Segments[0].Method)

	dist := gtfsmodel.Haversine(30.00, 31.00, 30.001, 31.001)
	require.InDelta(t, dist/gtfsmodel.WalkSpeedMPS, r.TotalDurationSeconds, 1.0)
}

func TestSingleModeReachable(t *testing.T) {
	g := twoStopGraph()
	r := FindPath(g, 30.00, 31.00, 30.001, 31.001, gtfsmodel.Bus|gtfsmodel.Walk, "bus_only")

	require.True(t, r.Found)
	require.GreaterOrEqual(t, len(r.Segments), 1)

	var sawBus bool
	for _, s := range r.Segments {
		if s.Method == "bus" {
			sawBus = true
			require.Equal(t, 1, s.NumStops)
		}
	}
	require.True(t, sawBus)
}

func TestModeMaskedUnreachableFallsBackToDirectWalk(t *testing.T) {
	g := twoStopGraph()
	r := FindPath(g, 30.00, 31.00, 30.001, 31.001, gtfsmodel.Metro|gtfsmodel.Walk, "metro_only")

	require.True(t, r.Found)
	require.Len(t, r.Segments, 1)
	require.Equal(t, "walking", r.Segments[0].Method)
}

func TestAllUnreachableWhenTooFarAndNoWalkConnectivity(t *testing.T) {
	nodes := []graph.Node{
		{ID: 0, GTFSStopID: "B1_ISLAND1", Name: "Island 1", Lat: 30.00, Lon: 31.00},
		{ID: 1, GTFSStopID: "B1_ISLAND2", Name: "Island 2", Lat: 30.45, Lon: 31.45}, // ~66km away
	}
	g := graph.Build(graph.BuildInput{
		Nodes:        nodes,
		Agencies:     map[string]graph.Agency{},
		Routes:       map[string]graph.Route{},
		Trips:        map[string]graph.Trip{},
		TripRoute:    map[string]string{},
		RouteMode:    map[string]gtfsmodel.Mode{},
		StopIDToNode: map[string]int{"B1_ISLAND1": 0, "B1_ISLAND2": 1},
		StopTimes:    nil,
	})

	r := FindPath(g, 30.00, 31.00, 30.45, 31.45, gtfsmodel.Any|gtfsmodel.Walk, "optimal")
	require.False(t, r.Found)
	require.True(t, math.IsInf(r.TotalDurationSeconds, 1))
}

func TestTransferPenaltyAppliedOnce(t *testing.T) {
	nodes := []graph.Node{
		{ID: 0, GTFSStopID: "B1_A", Name: "A", Lat: 30.0000, Lon: 31.0000},
		{ID: 1, GTFSStopID: "B1_B", Name: "B", Lat: 30.0126, Lon: 31.0000}, // ~1400m north
		{ID: 2, GTFSStopID: "B1_C", Name: "C", Lat: 30.0252, Lon: 31.0000},
		{ID: 3, GTFSStopID: "B1_D", Name: "D", Lat: 30.0378, Lon: 31.0000},
		{ID: 4, GTFSStopID: "B1_E", Name: "E", Lat: 30.0504, Lon: 31.0000},
	}
	stopIDToNode := map[string]int{"B1_A": 0, "B1_B": 1, "B1_C": 2, "B1_D": 3, "B1_E": 4}

	g := graph.Build(graph.BuildInput{
		Nodes:    nodes,
		Agencies: map[string]graph.Agency{},
		Routes: map[string]graph.Route{
			"R1": {ID: "R1", AgencyID: "B1_CAI_BUS"},
			"R2": {ID: "R2", AgencyID: "B1_CAI_BUS"},
		},
		Trips: map[string]graph.Trip{
			"T1": {ID: "T1", RouteID: "R1"},
			"T2": {ID: "T2", RouteID: "R2"},
		},
		TripRoute:    map[string]string{"T1": "R1", "T2": "R2"},
		RouteMode:    map[string]gtfsmodel.Mode{"R1": gtfsmodel.Bus, "R2": gtfsmodel.Bus},
		StopIDToNode: stopIDToNode,
		StopTimes: []graph.StopTimeEntry{
			{TripID: "T1", StopID: "B1_A", Sequence: 1},
			{TripID: "T1", StopID: "B1_B", Sequence: 2},
			{TripID: "T1", StopID: "B1_C", Sequence: 3},
			{TripID: "T2", StopID: "B1_C", Sequence: 1},
			{TripID: "T2", StopID: "B1_D", Sequence: 2},
			{TripID: "T2", StopID: "B1_E", Sequence: 3},
		},
	})

	r := FindPath(g, nodes[0].Lat, nodes[0].Lon, nodes[4].Lat, nodes[4].Lon, gtfsmodel.Bus|gtfsmodel.Walk, "bus_only")
	require.True(t, r.Found)

	var wantTotal float64
	for i := 0; i < len(nodes)-1; i++ {
		for _, e := range g.Nodes[i].Outgoing {
			if e.To == i+1 && e.Mode == gtfsmodel.Bus {
				wantTotal += e.Weight
			}
		}
	}
	wantTotal += gtfsmodel.TransferPenaltySeconds

	require.InDelta(t, wantTotal, r.TotalDurationSeconds, 0.5)
}

func TestMicrobusReversalMakesBackwardTripReachable(t *testing.T) {
	nodes := []graph.Node{
		{ID: 0, GTFSStopID: "MB_X", Name: "X", Lat: 30.0000, Lon: 31.0000},
		{ID: 1, GTFSStopID: "MB_Y", Name: "Y", Lat: 30.0090, Lon: 31.0000},
		{ID: 2, GTFSStopID: "MB_Z", Name: "Z", Lat: 30.0180, Lon: 31.0000},
	}
	g := graph.Build(graph.BuildInput{
		Nodes:        nodes,
		Agencies:     map[string]graph.Agency{},
		Routes:       map[string]graph.Route{"RM": {ID: "RM", AgencyID: "MB_CAI_BUS"}},
		Trips:        map[string]graph.Trip{"T3": {ID: "T3", RouteID: "RM"}},
		TripRoute:    map[string]string{"T3": "RM"},
		RouteMode:    map[string]gtfsmodel.Mode{"RM": gtfsmodel.Microbus},
		StopIDToNode: map[string]int{"MB_X": 0, "MB_Y": 1, "MB_Z": 2},
		StopTimes: []graph.StopTimeEntry{
			{TripID: "T3", StopID: "MB_X", Sequence: 1},
			{TripID: "T3", StopID: "MB_Y", Sequence: 2},
			{TripID: "T3", StopID: "MB_Z", Sequence: 3},
		},
	})

	r := FindPath(g, nodes[2].Lat, nodes[2].Lon, nodes[0].Lat, nodes[0].Lon, gtfsmodel.Microbus|gtfsmodel.Walk, "microbus_only")
	require.True(t, r.Found)

	var sawMicrobus bool
	for _, s := range r.Segments {
		if s.Method == "microbus" {
			sawMicrobus = true
		}
	}
	require.True(t, sawMicrobus)
}

func TestHeuristicAdmissibility(t *testing.T) {
	g := twoStopGraph()
	r := FindPath(g, 30.00, 31.00, 30.001, 31.001, gtfsmodel.Any|gtfsmodel.Walk, "optimal")
	require.True(t, r.Found)

	lowerBound := gtfsmodel.Haversine(30.00, 31.00, 30.001, 31.001) / gtfsmodel.MaxSpeedMPS
	require.GreaterOrEqual(t, r.TotalDurationSeconds, lowerBound-1e-9)
}
