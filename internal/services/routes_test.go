package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"transit_companion/internal/models"
)

func sampleRouteInput() RouteInput {
	return RouteInput{
		Name:      "Centro Express",
		Number:    "12A",
		StartTime: "6:00 am",
		EndTime:   "10:00 pm",
		Frequency: 15,
		Stops: []StopInput{
			{Name: "Alpha", Lat: 0.1, Lng: 0.1},
			{Name: "Bravo", Lat: 0.2, Lng: 0.2},
			{Name: "Charlie", Lat: 0.3, Lng: 0.3},
		},
	}
}

func TestCreateRouteOrdersStops(t *testing.T) {
	db := newTestDB(t)
	routes := NewRouteService(db)

	route, err := routes.Create(sampleRouteInput())
	require.NoError(t, err)
	require.Len(t, route.Stops, 3)
	for i, name := range []string{"Alpha", "Bravo", "Charlie"} {
		require.Equal(t, i, route.Stops[i].Order)
		require.Equal(t, name, route.Stops[i].Name)
	}
	require.True(t, route.Visible)
}

func TestCreateRouteRejectsEmptyStops(t *testing.T) {
	db := newTestDB(t)
	in := sampleRouteInput()
	in.Stops = nil
	_, err := NewRouteService(db).Create(in)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestUpdateReplacesStopsWholesale(t *testing.T) {
	db := newTestDB(t)
	routes := NewRouteService(db)
	route, err := routes.Create(sampleRouteInput())
	require.NoError(t, err)

	updated, err := routes.Update(route.ID, RoutePatch{Stops: []StopInput{
		{Name: "Delta", Lat: 1, Lng: 1},
		{Name: "Echo", Lat: 2, Lng: 2},
	}})
	require.NoError(t, err)
	require.Len(t, updated.Stops, 2)
	require.Equal(t, "Delta", updated.Stops[0].Name)
	require.Equal(t, 0, updated.Stops[0].Order)
	require.Equal(t, "Echo", updated.Stops[1].Name)
	require.Equal(t, 1, updated.Stops[1].Order)

	// no leftover rows from the old list
	var count int64
	require.NoError(t, db.Model(&models.Stop{}).Where("route_id = ?", route.ID).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestUpdateScalarFieldsLeaveStopsAlone(t *testing.T) {
	db := newTestDB(t)
	routes := NewRouteService(db)
	route, err := routes.Create(sampleRouteInput())
	require.NoError(t, err)

	name := "Centro Nocturno"
	hidden := false
	updated, err := routes.Update(route.ID, RoutePatch{Name: &name, Visible: &hidden})
	require.NoError(t, err)
	require.Equal(t, "Centro Nocturno", updated.Name)
	require.False(t, updated.Visible)
	require.Len(t, updated.Stops, 3)
}

func TestGeometryDistanceEstimate(t *testing.T) {
	db := newTestDB(t)
	routes := NewRouteService(db)

	in := sampleRouteInput()
	in.Geometry = models.LineString{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}}
	route, err := routes.Create(in)
	require.NoError(t, err)
	// one degree of longitude at the equator
	require.InDelta(t, 111.0, route.Distance, 1e-9)

	// an explicit distance wins over the estimate
	given := 42.5
	in2 := sampleRouteInput()
	in2.Number = "12B"
	in2.Geometry = in.Geometry
	in2.Distance = &given
	route2, err := routes.Create(in2)
	require.NoError(t, err)
	require.Equal(t, 42.5, route2.Distance)
}

func TestUpdateGeometryReestimatesDistance(t *testing.T) {
	db := newTestDB(t)
	routes := NewRouteService(db)
	route, err := routes.Create(sampleRouteInput())
	require.NoError(t, err)
	require.Zero(t, route.Distance)

	geometry := models.LineString{{Lat: 0, Lng: 0}, {Lat: 2, Lng: 0}}
	updated, err := routes.Update(route.ID, RoutePatch{Geometry: &geometry})
	require.NoError(t, err)
	require.InDelta(t, 222.0, updated.Distance, 1e-9)
	require.Len(t, updated.Geometry, 2)
}

func TestRouteWithoutGeometryReadsBackEmpty(t *testing.T) {
	db := newTestDB(t)
	routes := NewRouteService(db)
	route, err := routes.Create(sampleRouteInput())
	require.NoError(t, err)

	got, err := routes.Get(route.ID)
	require.NoError(t, err)
	require.Len(t, got.Geometry, 0)
}

func TestSearchRoutesCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	routes := NewRouteService(db)
	_, err := routes.Create(sampleRouteInput())
	require.NoError(t, err)

	other := sampleRouteInput()
	other.Name = "Periferia"
	other.Number = "77"
	_, err = routes.Create(other)
	require.NoError(t, err)

	byName, err := routes.Search("CENTRO")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "Centro Express", byName[0].Name)

	byNumber, err := routes.Search("12a")
	require.NoError(t, err)
	require.Len(t, byNumber, 1)

	none, err := routes.Search("nonexistent")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestDeleteRouteRemovesStops(t *testing.T) {
	db := newTestDB(t)
	routes := NewRouteService(db)
	route, err := routes.Create(sampleRouteInput())
	require.NoError(t, err)

	require.NoError(t, routes.Delete(route.ID))

	_, err = routes.Get(route.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Stop{}).Where("route_id = ?", route.ID).Count(&count).Error)
	require.Zero(t, count)

	require.ErrorIs(t, routes.Delete(route.ID), ErrNotFound)
}
