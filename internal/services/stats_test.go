package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"transit_companion/internal/models"
)

// insertBareUser creates a user row without the registration flow, so
// no statistics row exists yet.
func insertBareUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := models.User{Name: "Bare", Email: "bare@example.com", PasswordHash: "x", Active: true}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestGetForUserCreatesRowLazily(t *testing.T) {
	db := newTestDB(t)
	user := insertBareUser(t, db)
	stats := NewStatsService(db)

	got, err := stats.GetForUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.UserID)
	require.Zero(t, got.TripsCompleted)

	var count int64
	require.NoError(t, db.Model(&models.UserStats{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	// second read does not create another row
	_, err = stats.GetForUser(user.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.UserStats{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestGetForUserUnknownUser(t *testing.T) {
	db := newTestDB(t)
	_, err := NewStatsService(db).GetForUser(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterCompletedTripAccumulates(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db)
	stats := NewStatsService(db)

	got, err := stats.RegisterCompletedTrip(user.ID, CompletedTripInput{DistanceKm: 10, Cost: 5, NewPlace: true})
	require.NoError(t, err)
	require.Equal(t, 1, got.TripsCompleted)
	require.Equal(t, 10.0, got.TotalDistanceKm)
	require.Equal(t, 15.0, got.TotalSavings)
	require.Equal(t, 1, got.PlacesVisited)

	got, err = stats.RegisterCompletedTrip(user.ID, CompletedTripInput{DistanceKm: 10, Cost: 5})
	require.NoError(t, err)
	require.Equal(t, 2, got.TripsCompleted)
	require.Equal(t, 20.0, got.TotalDistanceKm)
	require.Equal(t, 30.0, got.TotalSavings)
	require.Equal(t, 1, got.PlacesVisited)
}

func TestRegisterCompletedTripValidation(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db)
	stats := NewStatsService(db)

	_, err := stats.RegisterCompletedTrip(user.ID, CompletedTripInput{DistanceKm: 0, Cost: 5})
	require.ErrorIs(t, err, ErrInvalid)
	_, err = stats.RegisterCompletedTrip(user.ID, CompletedTripInput{DistanceKm: 5, Cost: -1})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestDashboardEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	out, err := NewStatsService(db).Dashboard()
	require.NoError(t, err)
	require.Zero(t, out.TotalUsers)
	require.Zero(t, out.TotalRoutes)
	require.Zero(t, out.TotalBuses)
	require.Zero(t, out.TripsToday)
	require.Zero(t, out.ActiveUsersMonth)
	require.Zero(t, out.DistanceKmMonth)
}

func TestDashboardCounts(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db)

	_, err := NewRouteService(db).Create(sampleRouteInput())
	require.NoError(t, err)
	createBus(t, NewBusService(db), "Linea 1", models.ZoneSouth)

	trips := NewTripService(db)
	trip, err := trips.Create(user.ID, TripInput{OriginName: "Casa", DestName: "Trabajo", DistanceKm: 12.5})
	require.NoError(t, err)
	done := true
	_, err = trips.Update(trip.ID, TripPatch{Completed: &done})
	require.NoError(t, err)

	out, err := NewStatsService(db).Dashboard()
	require.NoError(t, err)
	require.EqualValues(t, 1, out.TotalUsers)
	require.EqualValues(t, 1, out.TotalRoutes)
	require.EqualValues(t, 1, out.TotalBuses)
	require.EqualValues(t, 1, out.TripsToday)
	require.EqualValues(t, 1, out.ActiveUsersMonth)
	require.Equal(t, 12.5, out.DistanceKmMonth)
}
