// Package gtfs implements the Feed Loader (SPEC_FULL.md §4.1 / spec.md
// §4.1): it parses the GTFS tables from a filesystem folder into in-memory
// reference maps and a Node table, tolerating malformed rows by skipping
// them rather than failing the whole load.
//
// Grounded on health-route-server/preprocessing/gtfs.go's per-file loader
// shape (header-indexed CSV rows, one loader function per file) and on
// original_source/RoutingEngine's algo.cpp for the fallback-extension and
// agency-id-prefix-to-mode rules.
package gtfs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/graph"
	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/gtfsmodel"
)

// FeedData is everything the Feed Loader hands to the Graph Builder.
type FeedData struct {
	Nodes        []graph.Node
	Agencies     map[string]graph.Agency
	Routes       map[string]graph.Route
	Trips        map[string]graph.Trip
	TripRoute    map[string]string
	RouteMode    map[string]gtfsmodel.Mode
	StopIDToNode map[string]int
	StopTimes    []graph.StopTimeEntry
}

func newFeedData() *FeedData {
	return &FeedData{
		Agencies:     make(map[string]graph.Agency),
		Routes:       make(map[string]graph.Route),
		Trips:        make(map[string]graph.Trip),
		TripRoute:    make(map[string]string),
		RouteMode:    make(map[string]gtfsmodel.Mode),
		StopIDToNode: make(map[string]int),
	}
}

// LoadFeed tries the .txt extension set first, then falls back to .csv if
// the first pass yields zero nodes (SPEC_FULL.md/spec.md §4.1 does not
// mandate an order, so this mirrors the loader trying one and falling back
// to the other).
func LoadFeed(dir string) (*FeedData, error) {
	for _, ext := range []string{"txt", "csv"} {
		data := loadWithExtension(dir, ext)
		if len(data.Nodes) > 0 {
			return data, nil
		}
	}
	return nil, fmt.Errorf("gtfs: no stops loaded from %q (tried .txt and .csv)", dir)
}

func loadWithExtension(dir, ext string) *FeedData {
	data := newFeedData()

	loadAgencies(filepath.Join(dir, "agency."+ext), data)
	loadRoutes(filepath.Join(dir, "routes."+ext), data)
	loadTrips(filepath.Join(dir, "trips."+ext), data)
	loadStops(filepath.Join(dir, "stops."+ext), data)
	loadStopTimes(filepath.Join(dir, "stop_times."+ext), data)

	return data
}

// dataLines opens path and returns every line after the header, or ok=false
// if the file is missing or unreadable — a missing file contributes nothing,
// per SPEC_FULL.md/spec.md §4.1's "Any file missing: skip".
func dataLines(path string) (header []string, rows []string, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	if !scanner.Scan() {
		return nil, nil, false
	}
	headerRow, err := parseCSVLine(scanner.Text())
	if err != nil {
		return nil, nil, false
	}

	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	return headerRow, rows, true
}

func loadAgencies(path string, data *FeedData) {
	header, rows, ok := dataLines(path)
	if !ok {
		return
	}
	h := headerIndex(header)

	for _, line := range rows {
		cols, err := parseCSVLine(line)
		if err != nil {
			continue
		}
		get := rowGetter(h, cols)

		id := get("agency_id")
		if id == "" {
			continue
		}
		data.Agencies[id] = graph.Agency{ID: id, Name: get("agency_name")}
	}
}

// modeForAgency derives a route's transport mode from its agency_id prefix,
// per spec.md §4.1's routes table.
func modeForAgency(agencyID string) gtfsmodel.Mode {
	switch {
	case strings.HasPrefix(agencyID, "M_"):
		return gtfsmodel.Metro
	case strings.HasPrefix(agencyID, "B1_"):
		return gtfsmodel.Bus
	case strings.HasPrefix(agencyID, "MB_"):
		return gtfsmodel.Microbus
	default:
		return gtfsmodel.Bus
	}
}

func loadRoutes(path string, data *FeedData) {
	header, rows, ok := dataLines(path)
	if !ok {
		return
	}
	h := headerIndex(header)

	for _, line := range rows {
		cols, err := parseCSVLine(line)
		if err != nil {
			continue
		}
		get := rowGetter(h, cols)

		routeID := get("route_id")
		if routeID == "" {
			continue
		}
		agencyID := get("agency_id")

		routeType, _ := strconv.Atoi(get("route_type"))

		data.Routes[routeID] = graph.Route{
			ID:        routeID,
			AgencyID:  agencyID,
			ShortName: get("short_name"),
			Type:      routeType,
		}
		data.RouteMode[routeID] = modeForAgency(agencyID)
	}
}

func loadTrips(path string, data *FeedData) {
	header, rows, ok := dataLines(path)
	if !ok {
		return
	}
	h := headerIndex(header)

	for _, line := range rows {
		cols, err := parseCSVLine(line)
		if err != nil {
			continue
		}
		get := rowGetter(h, cols)

		tripID := get("trip_id")
		routeID := get("route_id")
		if tripID == "" {
			continue
		}

		data.Trips[tripID] = graph.Trip{ID: tripID, RouteID: routeID}
		data.TripRoute[tripID] = routeID
	}
}

func loadStops(path string, data *FeedData) {
	header, rows, ok := dataLines(path)
	if !ok {
		return
	}
	h := headerIndex(header)

	for _, line := range rows {
		cols, err := parseCSVLine(line)
		if err != nil {
			continue
		}
		get := rowGetter(h, cols)

		stopID := get("stop_id")
		if stopID == "" {
			continue
		}
		if _, dup := data.StopIDToNode[stopID]; dup {
			continue
		}

		lat, latErr := strconv.ParseFloat(get("lat"), 64)
		lon, lonErr := strconv.ParseFloat(get("lon"), 64)
		if latErr != nil || lonErr != nil {
			continue
		}

		id := len(data.Nodes)
		data.Nodes = append(data.Nodes, graph.Node{
			ID:         id,
			GTFSStopID: stopID,
			Name:       get("stop_name"),
			Lat:        lat,
			Lon:        lon,
		})
		data.StopIDToNode[stopID] = id
	}
}

func loadStopTimes(path string, data *FeedData) {
	header, rows, ok := dataLines(path)
	if !ok {
		return
	}
	h := headerIndex(header)

	for _, line := range rows {
		cols, err := parseCSVLine(line)
		if err != nil {
			continue
		}
		get := rowGetter(h, cols)

		tripID := get("trip_id")
		stopID := get("stop_id")
		if tripID == "" || stopID == "" {
			continue
		}
		if _, known := data.StopIDToNode[stopID]; !known {
			continue
		}

		seq, err := strconv.Atoi(strings.TrimSpace(get("stop_sequence")))
		if err != nil {
			continue
		}

		data.StopTimes = append(data.StopTimes, graph.StopTimeEntry{
			TripID:   tripID,
			StopID:   stopID,
			Sequence: seq,
		})
	}
}
