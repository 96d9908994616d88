package graph

import (
	"math"

	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/gtfsmodel"
)

// cellSizeDegrees approximates one degree of latitude as 111km, matching
// original_source/RoutingEngine's algo.cpp generateTransferEdges.
const cellSizeDegrees = gtfsmodel.MaxWalkDistanceMeters / 111000.0

// spatialGrid buckets node ids by a coarse lat/lon cell so that
// walking-transfer generation and radius queries only need to probe the 3x3
// block of cells around a point instead of scanning every node.
type spatialGrid struct {
	cells map[int64][]int
}

func newSpatialGrid() *spatialGrid {
	return &spatialGrid{cells: make(map[int64][]int)}
}

func cellRowCol(lat, lon float64) (row, col int) {
	row = int(math.Floor(lat / cellSizeDegrees))
	col = int(math.Floor(lon / cellSizeDegrees))
	return row, col
}

func cellKey(row, col int) int64 {
	return int64(row)*1000000 + int64(col)
}

func (g *spatialGrid) insert(nodeID int, lat, lon float64) {
	row, col := cellRowCol(lat, lon)
	key := cellKey(row, col)
	g.cells[key] = append(g.cells[key], nodeID)
}

// neighbors invokes visit for every node id sharing the 3x3 cell block
// around (lat, lon), including the node's own cell. The block's fixed
// cellSizeDegrees means a radius query much beyond MAX_WALK_DISTANCE (the
// pathfinder's wider candidateRadii entries, e.g. 4000/6000m) can miss
// nodes that lie inside the requested radius but outside the 3x3 block.
func (g *spatialGrid) neighbors(lat, lon float64, visit func(nodeID int)) {
	row, col := cellRowCol(lat, lon)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			key := cellKey(row+dr, col+dc)
			for _, id := range g.cells[key] {
				visit(id)
			}
		}
	}
}
