package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"transit_companion/internal/models"
)

func createBusStop(t *testing.T, stops *BusStopService, name string, lat, lng float64) *models.BusStop {
	t.Helper()
	stop, err := stops.Create(BusStopInput{Name: name, Lat: lat, Lng: lng, Zone: models.ZoneSouth})
	require.NoError(t, err)
	return stop
}

func TestNearbyBoundingBox(t *testing.T) {
	db := newTestDB(t)
	stops := NewBusStopService(db)

	createBusStop(t, stops, "Inside", 0.5, 0.5)
	createBusStop(t, stops, "Far", 1.5, 0)
	hidden := createBusStop(t, stops, "Hidden", 0.2, 0.2)

	off := false
	_, err := stops.Update(hidden.ID, BusStopPatch{Active: &off})
	require.NoError(t, err)

	// 111 km is one degree on each axis
	nearby, err := stops.Nearby(0, 0, 111)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	require.Equal(t, "Inside", nearby[0].Name)
}

func TestNearbyBoundaryIsExclusive(t *testing.T) {
	db := newTestDB(t)
	stops := NewBusStopService(db)
	createBusStop(t, stops, "OnEdge", 1.0, 0)

	nearby, err := stops.Nearby(0, 0, 111)
	require.NoError(t, err)
	require.Empty(t, nearby)
	require.NotNil(t, nearby)
}

func TestBusStopCRUD(t *testing.T) {
	db := newTestDB(t)
	stops := NewBusStopService(db)
	stop := createBusStop(t, stops, "Plaza", 1, 2)

	name := "Plaza Central"
	zone := models.ZoneNorth
	updated, err := stops.Update(stop.ID, BusStopPatch{Name: &name, Zone: &zone})
	require.NoError(t, err)
	require.Equal(t, "Plaza Central", updated.Name)
	require.Equal(t, models.ZoneNorth, updated.Zone)

	north, err := stops.List(models.ZoneNorth, true, 0, 0)
	require.NoError(t, err)
	require.Len(t, north, 1)

	require.NoError(t, stops.Delete(stop.ID))
	_, err = stops.Get(stop.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, stops.Delete(stop.ID), ErrNotFound)
}
