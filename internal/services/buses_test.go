package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"transit_companion/internal/models"
)

func createBus(t *testing.T, buses *BusService, name string, zone models.Zone) *models.Bus {
	t.Helper()
	bus, err := buses.Create(BusInput{TransportName: name, Zone: zone})
	require.NoError(t, err)
	return bus
}

func TestScheduleTimeFormat(t *testing.T) {
	db := newTestDB(t)
	buses := NewBusService(db)
	bus := createBus(t, buses, "Linea 1", models.ZoneSouth)

	for _, bad := range []string{"7:30", "07:30pm", "25:99 xx", "morning"} {
		_, err := buses.AddSchedule(bus.ID, ScheduleInput{Kind: models.KindDeparture, Place: "Terminal", Time: bad})
		require.ErrorIs(t, err, ErrInvalid, "time %q should be rejected", bad)
	}

	schedule, err := buses.AddSchedule(bus.ID, ScheduleInput{Kind: models.KindDeparture, Place: "Terminal", Time: "7:30 am"})
	require.NoError(t, err)
	require.Equal(t, models.StatusGreen, schedule.Status)
}

func TestAddScheduleUnknownBus(t *testing.T) {
	db := newTestDB(t)
	_, err := NewBusService(db).AddSchedule(999, ScheduleInput{Kind: models.KindDeparture, Place: "Terminal", Time: "7:30 am"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeparturesFilterByZoneKindAndActive(t *testing.T) {
	db := newTestDB(t)
	buses := NewBusService(db)

	south := createBus(t, buses, "Linea Sur", models.ZoneSouth)
	north := createBus(t, buses, "Linea Norte", models.ZoneNorth)
	parked := createBus(t, buses, "Linea Parada", models.ZoneSouth)

	inactive := false
	_, err := buses.Update(parked.ID, BusPatch{Active: &inactive})
	require.NoError(t, err)

	_, err = buses.AddSchedule(south.ID, ScheduleInput{Kind: models.KindDeparture, Place: "Terminal Sur", Time: "7:30 am"})
	require.NoError(t, err)
	_, err = buses.AddSchedule(south.ID, ScheduleInput{Kind: models.KindArrival, Place: "Centro", Time: "8:15 am"})
	require.NoError(t, err)
	_, err = buses.AddSchedule(north.ID, ScheduleInput{Kind: models.KindDeparture, Place: "Terminal Norte", Time: "7:45 am"})
	require.NoError(t, err)
	_, err = buses.AddSchedule(parked.ID, ScheduleInput{Kind: models.KindDeparture, Place: "Cochera", Time: "6:00 am"})
	require.NoError(t, err)

	departures, err := buses.Departures(models.ZoneSouth)
	require.NoError(t, err)
	require.Len(t, departures, 1)
	require.Equal(t, "Terminal Sur", departures[0].Place)
	require.Equal(t, "Linea Sur", departures[0].Bus.TransportName)

	arrivals, err := buses.Arrivals(models.ZoneSouth)
	require.NoError(t, err)
	require.Len(t, arrivals, 1)
	require.Equal(t, "Centro", arrivals[0].Place)

	_, err = buses.Departures("east")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestUpdateScheduleStatus(t *testing.T) {
	db := newTestDB(t)
	buses := NewBusService(db)
	bus := createBus(t, buses, "Linea 1", models.ZoneSouth)
	schedule, err := buses.AddSchedule(bus.ID, ScheduleInput{Kind: models.KindDeparture, Place: "Terminal", Time: "7:30 am"})
	require.NoError(t, err)

	red := models.StatusRed
	updated, err := buses.UpdateSchedule(schedule.ID, SchedulePatch{Status: &red})
	require.NoError(t, err)
	require.Equal(t, models.StatusRed, updated.Status)

	bad := "sometime"
	_, err = buses.UpdateSchedule(schedule.ID, SchedulePatch{Time: &bad})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestDeleteBusRemovesSchedules(t *testing.T) {
	db := newTestDB(t)
	buses := NewBusService(db)
	bus := createBus(t, buses, "Linea 1", models.ZoneSouth)
	_, err := buses.AddSchedule(bus.ID, ScheduleInput{Kind: models.KindDeparture, Place: "Terminal", Time: "7:30 am"})
	require.NoError(t, err)

	require.NoError(t, buses.Delete(bus.ID))

	_, err = buses.Get(bus.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Schedule{}).Where("bus_id = ?", bus.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestListBusesByZone(t *testing.T) {
	db := newTestDB(t)
	buses := NewBusService(db)
	createBus(t, buses, "Linea Sur", models.ZoneSouth)
	createBus(t, buses, "Linea Norte", models.ZoneNorth)

	south, err := buses.List(models.ZoneSouth, false, 0, 0)
	require.NoError(t, err)
	require.Len(t, south, 1)
	require.Equal(t, "Linea Sur", south[0].TransportName)

	all, err := buses.List("", false, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
