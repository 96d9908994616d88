package gtfsmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversineZeroForSamePoint(t *testing.T) {
	require.InDelta(t, 0.0, Haversine(30.0, 31.0, 30.0, 31.0), 1e-9)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Roughly 111km per degree of latitude at the equator.
	d := Haversine(0, 0, 1, 0)
	require.InDelta(t, 111195.0, d, 500)
}

func TestModeStringComposites(t *testing.T) {
	require.Equal(t, "bus", Bus.String())
	require.Equal(t, "metro", Metro.String())
	require.Equal(t, "microbus", Microbus.String())
	require.Equal(t, "walking", Walk.String())
	require.Equal(t, "optimal", (Any | Walk).String())
}

func TestSpeedForModeDefaultsToBus(t *testing.T) {
	require.Equal(t, AvgBusSpeedMPS, SpeedForMode(None))
}
