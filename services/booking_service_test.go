package services

import (
	"testing"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCreateFlipsRoomToBooked(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	rt := seedRoomType(t, db, 100, 1000, 600)
	room := seedRoom(t, db, rt, "101", models.RoomAvailable)

	booking, err := svc.Create(CreateBookingInput{
		RoomID:    room.ID,
		GuestName: "Somchai",
	}, 7)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, 1, booking.GuestCount)
	assert.Equal(t, room.HotelID, booking.HotelID)

	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomBooked, got.Status)

	var logs []models.RoomStatusLog
	require.NoError(t, db.Where("room_id = ?", room.ID).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, models.RoomBooked, logs[0].Status)
	assert.Equal(t, models.RoomAvailable, logs[0].PreviousStatus)
	assert.Equal(t, uint(7), logs[0].ChangedByID)
}

func TestBookingCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	rt := seedRoomType(t, db, 100, 1000, 600)
	room := seedRoom(t, db, rt, "101", models.RoomAvailable)

	_, err := svc.Create(CreateBookingInput{GuestName: "Somchai"}, 1)
	require.Error(t, err)

	_, err = svc.Create(CreateBookingInput{RoomID: room.ID, GuestName: "   "}, 1)
	require.Error(t, err)

	_, err = svc.Create(CreateBookingInput{RoomID: room.ID, GuestName: "Somchai", GuestCount: -1}, 1)
	require.Error(t, err)

	_, err = svc.Create(CreateBookingInput{RoomID: 9999, GuestName: "Somchai"}, 1)
	require.Error(t, err)
	assert.True(t, utils.IsAppError(err))
}

func TestBookingRemoveLastBookingFreesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	rt := seedRoomType(t, db, 100, 1000, 600)
	room := seedRoom(t, db, rt, "101", models.RoomAvailable)

	first, err := svc.Create(CreateBookingInput{RoomID: room.ID, GuestName: "Somchai"}, 1)
	require.NoError(t, err)
	second, err := svc.Create(CreateBookingInput{RoomID: room.ID, GuestName: "Malee"}, 1)
	require.NoError(t, err)

	// one of two removed: room stays as-is
	require.NoError(t, svc.Remove(first.ID, 1))
	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomBooked, got.Status)

	// last one removed: room goes back to AVAILABLE
	require.NoError(t, svc.Remove(second.ID, 1))
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomAvailable, got.Status)
}

func TestBookingUpdateDoesNotTouchRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	rt := seedRoomType(t, db, 100, 1000, 600)
	room := seedRoom(t, db, rt, "101", models.RoomAvailable)

	booking, err := svc.Create(CreateBookingInput{RoomID: room.ID, GuestName: "Somchai"}, 1)
	require.NoError(t, err)

	got, err := svc.Update(booking.ID, map[string]interface{}{
		"guest_name": "Somchai P.",
		"status":     models.BookingCancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, "Somchai P.", got.GuestName)
	assert.Equal(t, models.BookingCancelled, got.Status)

	var gotRoom models.Room
	require.NoError(t, db.First(&gotRoom, room.ID).Error)
	assert.Equal(t, models.RoomBooked, gotRoom.Status)
}

func TestBookingSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	rt := seedRoomType(t, db, 100, 1000, 600)
	room := seedRoom(t, db, rt, "101", models.RoomAvailable)

	_, err := svc.Create(CreateBookingInput{RoomID: room.ID, GuestName: "Somchai", GuestPhone: "0812345678"}, 1)
	require.NoError(t, err)
	_, err = svc.Create(CreateBookingInput{RoomID: room.ID, GuestName: "Malee", GuestPhone: "0899999999"}, 1)
	require.NoError(t, err)

	byName, err := svc.SearchBookings(1, "mal")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Malee", byName[0].GuestName)

	byPhone, err := svc.SearchBookings(1, "081234")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Somchai", byPhone[0].GuestName)

	all, err := svc.SearchBookings(1, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
