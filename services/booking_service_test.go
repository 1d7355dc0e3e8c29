package services_test

import (
	"errors"
	"os"
	"sync"
	"testing"

	"frontdesk-backend/config"
	"frontdesk-backend/models"
	"frontdesk-backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to the MySQL instance named by TEST_MYSQL_DSN and
// resets both tables to a freshly seeded state. Tests that need it are
// skipped when the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set; skipping database-backed test")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrator().DropTable(&models.Guest{}, &models.Room{}))
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Guest{}))
	require.NoError(t, config.SeedRooms(db))

	return db
}

func checkInInput(roomID, days int) services.CheckInInput {
	return services.CheckInInput{
		FirstName:    "Asha",
		LastName:     "Verma",
		Contact:      "0812345678",
		Email:        "asha@example.com",
		RoomID:       roomID,
		CheckInDate:  "2026-08-25",
		NumberOfDays: days,
	}
}

func TestSeedRooms_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, config.SeedRooms(db))
	require.NoError(t, config.SeedRooms(db))

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
	assert.EqualValues(t, 15, count)
}

func TestSetOccupied(t *testing.T) {
	db := openTestDB(t)
	rooms := services.NewRoomService(db)

	require.NoError(t, rooms.SetOccupied(3, true))
	room, err := rooms.GetByID(3)
	require.NoError(t, err)
	assert.True(t, room.IsOccupied)

	// setting the same value again is a no-op, not an error
	require.NoError(t, rooms.SetOccupied(3, true))

	require.NoError(t, rooms.SetOccupied(3, false))
	room, err = rooms.GetByID(3)
	require.NoError(t, err)
	assert.False(t, room.IsOccupied)

	var nf *services.NotFoundError
	err = rooms.SetOccupied(42, true)
	require.True(t, errors.As(err, &nf), "got %v", err)
}

func TestCheckIn_Lifecycle(t *testing.T) {
	db := openTestDB(t)
	bookings := services.NewBookingService(db)
	rooms := services.NewRoomService(db)
	guests := services.NewGuestService(db)

	guest, err := bookings.CheckIn(checkInInput(1, 3))
	require.NoError(t, err)
	assert.NotEmpty(t, guest.ID)
	assert.Equal(t, models.GuestStatusActive, guest.Status)
	assert.Nil(t, guest.TotalBill)

	room, err := rooms.GetByID(1)
	require.NoError(t, err)
	assert.True(t, room.IsOccupied)

	available, err := rooms.Available("")
	require.NoError(t, err)
	for _, r := range available {
		assert.NotEqual(t, uint(1), r.ID, "occupied room must not be listed as available")
	}

	active, err := guests.Active()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, guest.ID, active[0].ID)

	byRoom, err := guests.ByRoom(1)
	require.NoError(t, err)
	assert.Equal(t, guest.ID, byRoom.ID)
}

func TestCheckIn_OccupiedRoomConflict(t *testing.T) {
	db := openTestDB(t)
	bookings := services.NewBookingService(db)

	_, err := bookings.CheckIn(checkInInput(2, 1))
	require.NoError(t, err)

	_, err = bookings.CheckIn(checkInInput(2, 5))
	var conflict *services.ConflictError
	require.True(t, errors.As(err, &conflict), "second check-in must conflict, got %v", err)

	// the failed attempt must not have left a second guest
	var count int64
	require.NoError(t, db.Model(&models.Guest{}).
		Where("room_id = ? AND status = ?", 2, models.GuestStatusActive).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCheckIn_UnknownRoom(t *testing.T) {
	db := openTestDB(t)
	bookings := services.NewBookingService(db)

	_, err := bookings.CheckIn(checkInInput(99, 1))
	var nf *services.NotFoundError
	require.True(t, errors.As(err, &nf), "got %v", err)

	var count int64
	require.NoError(t, db.Model(&models.Guest{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "failed check-in must not create a guest")
}

func TestCheckOut_BillAndRelease(t *testing.T) {
	db := openTestDB(t)
	bookings := services.NewBookingService(db)
	rooms := services.NewRoomService(db)

	first, err := bookings.CheckIn(checkInInput(1, 3))
	require.NoError(t, err)

	bill, err := bookings.CheckOut(1)
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", bill.GuestName)
	assert.Equal(t, "Standard", bill.RoomType)
	assert.Equal(t, 2000, bill.PricePerDay)
	assert.InDelta(t, 6000, bill.BaseAmount, 1e-9)
	assert.InDelta(t, 720, bill.GSTAmount, 1e-9)
	assert.InDelta(t, 6720, bill.TotalBill, 1e-9)

	var stored models.Guest
	require.NoError(t, db.First(&stored, "id = ?", first.ID).Error)
	assert.Equal(t, models.GuestStatusCheckedOut, stored.Status)
	require.NotNil(t, stored.TotalBill)
	assert.InDelta(t, 6720, *stored.TotalBill, 1e-9)
	assert.NotEmpty(t, stored.Bill, "bill snapshot must be persisted")

	room, err := rooms.GetByID(1)
	require.NoError(t, err)
	assert.False(t, room.IsOccupied)

	// the room is immediately re-bookable, and the new stay is a new guest
	second, err := bookings.CheckIn(checkInInput(1, 1))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCheckOut_NoActiveGuest(t *testing.T) {
	db := openTestDB(t)
	bookings := services.NewBookingService(db)
	rooms := services.NewRoomService(db)

	before, err := rooms.GetAll()
	require.NoError(t, err)

	_, err = bookings.CheckOut(5)
	var nf *services.NotFoundError
	require.True(t, errors.As(err, &nf), "got %v", err)

	after, err := rooms.GetAll()
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed check-out must not mutate rooms")
}

func TestCheckIn_ConcurrentSameRoom(t *testing.T) {
	db := openTestDB(t)
	bookings := services.NewBookingService(db)

	const attempts = 2
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = bookings.CheckIn(checkInInput(7, 1))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var conflict *services.ConflictError
		require.True(t, errors.As(err, &conflict), "loser must see a conflict, got %v", err)
	}
	assert.Equal(t, 1, successes, "exactly one concurrent check-in may win")

	var count int64
	require.NoError(t, db.Model(&models.Guest{}).
		Where("room_id = ? AND status = ?", 7, models.GuestStatusActive).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStatsService_AgainstLedger(t *testing.T) {
	db := openTestDB(t)
	bookings := services.NewBookingService(db)
	stats := services.NewStatsService(db)

	for _, roomID := range []int{1, 6, 11, 15} {
		_, err := bookings.CheckIn(checkInInput(roomID, 2))
		require.NoError(t, err)
	}

	got, err := stats.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 15, got.TotalRooms)
	assert.EqualValues(t, 4, got.OccupiedRooms)
	assert.EqualValues(t, 11, got.AvailableRooms)
	assert.EqualValues(t, 4, got.TotalGuests)
	assert.Equal(t, 27, got.OccupancyRate)

	// checked-out guests stay in the ledger but drop out of the stats
	_, err = bookings.CheckOut(15)
	require.NoError(t, err)

	got, err = stats.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.OccupiedRooms)
	assert.Equal(t, 20, got.OccupancyRate)
}
