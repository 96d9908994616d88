package gtfs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/gtfsmodel"
)

func TestLoadFeedParsesFixture(t *testing.T) {
	data, err := LoadFeed("testdata/gtfs")
	require.NoError(t, err)

	require.Len(t, data.Nodes, 8)
	require.Contains(t, data.StopIDToNode, "B1_A")
	require.Contains(t, data.StopIDToNode, "MB_Z")

	require.Equal(t, gtfsmodel.Bus, data.RouteMode["R1"])
	require.Equal(t, gtfsmodel.Microbus, data.RouteMode["RM"])

	require.Len(t, data.StopTimes, 9)
}

func TestLoadFeedMissingDirFails(t *testing.T) {
	_, err := LoadFeed("testdata/does-not-exist")
	require.Error(t, err)
}

func TestParseCSVLineStripsOuterQuotes(t *testing.T) {
	fields, err := parseCSVLine(`"a,b,c"`)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, fields)
}

func TestParseCSVLineHandlesQuotedCommas(t *testing.T) {
	fields, err := parseCSVLine(`1,"Stop, Main St",2`)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "Stop, Main St", "2"}, fields)
}
