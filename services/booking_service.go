package services

import (
	"errors"
	"strings"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService owns booking records and keeps the owning room's status in
// sync on create/remove.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	HotelID     uint           `json:"hotelId"`
	RoomID      uint           `json:"roomId"`
	GuestName   string         `json:"guestName"`
	GuestPhone  string         `json:"guestPhone,omitempty"`
	GuestCount  int            `json:"guestCount,omitempty"`
	CheckIn     *time.Time     `json:"checkIn,omitempty"`
	CheckOut    *time.Time     `json:"checkOut,omitempty"`
	Note        string         `json:"note,omitempty"`
	Status      string         `json:"-"` // walk-in flow sets CHECKED_IN directly
	ExtraGuests datatypes.JSON `json:"extraGuests,omitempty"`
}

// Create persists a booking. Reservation bookings start PENDING and flip the
// room to BOOKED; the walk-in flow passes CHECKED_IN and leaves the room
// transition to the room lifecycle.
func (s *BookingService) Create(in CreateBookingInput, actorID uint) (models.Booking, error) {
	if in.RoomID == 0 {
		return models.Booking{}, utils.NewValidation("roomId is required")
	}
	if strings.TrimSpace(in.GuestName) == "" {
		return models.Booking{}, utils.NewValidation("guestName is required")
	}
	if in.GuestCount < 0 {
		return models.Booking{}, utils.NewValidation("guestCount must be at least 1")
	}
	if in.GuestCount == 0 {
		in.GuestCount = 1
	}

	status := in.Status
	if status == "" {
		status = models.BookingPending
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("room")
			}
			return err
		}

		hotelID := in.HotelID
		if hotelID == 0 {
			hotelID = room.HotelID
		}

		booking = models.Booking{
			HotelID:     hotelID,
			RoomID:      in.RoomID,
			GuestName:   strings.TrimSpace(in.GuestName),
			GuestPhone:  strings.TrimSpace(in.GuestPhone),
			GuestCount:  in.GuestCount,
			Status:      status,
			CheckIn:     in.CheckIn,
			CheckOut:    in.CheckOut,
			Note:        in.Note,
			CreatedByID: actorID,
			ExtraGuests: in.ExtraGuests,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if status == models.BookingPending {
			return logRoomStatus(tx, &room, models.RoomBooked, actorID, "booking created")
		}
		return nil
	})
	return booking, err
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Room").Preload("Room.RoomType").First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booking, utils.NewNotFound("booking")
	}
	return booking, err
}

// Update is a free-form field merge, including status transitions. It does
// not touch the room.
func (s *BookingService) Update(id uint, patch map[string]interface{}) (models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return booking, err
	}

	delete(patch, "id")
	delete(patch, "created_at")
	delete(patch, "updated_at")
	delete(patch, "deleted_at")
	delete(patch, "room")

	if len(patch) > 0 {
		if err := s.DB.Model(&models.Booking{}).Where("id = ?", id).Updates(patch).Error; err != nil {
			return booking, err
		}
	}
	return s.GetByID(id)
}

// Remove deletes a booking. When it was the room's last booking the room
// goes back to AVAILABLE; otherwise the room status is left untouched.
func (s *BookingService) Remove(id uint, actorID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("booking")
			}
			return err
		}

		if err := tx.Delete(&models.Booking{}, id).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&models.Booking{}).Where("room_id = ?", booking.RoomID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			var room models.Room
			if err := tx.First(&room, booking.RoomID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return err
			}
			return logRoomStatus(tx, &room, models.RoomAvailable, actorID, "last booking removed")
		}
		return nil
	})
}

func (s *BookingService) FindByHotelID(hotelID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	q := s.DB.Preload("Room").Order("id DESC")
	if hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	err := q.Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) FindByRoomID(roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Where("room_id = ?", roomID).Order("id DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) FindLatestByRoomID(roomID uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Where("room_id = ?", roomID).Order("id DESC").First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booking, utils.NewNotFound("booking")
	}
	return booking, err
}

// SearchBookings matches guest name or phone, newest first.
func (s *BookingService) SearchBookings(hotelID uint, query string) ([]models.Booking, error) {
	var bookings []models.Booking
	q := s.DB.Preload("Room").Order("id DESC")
	if hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	query = strings.TrimSpace(query)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("guest_name LIKE ? OR guest_phone LIKE ?", like, like)
	}
	err := q.Find(&bookings).Error
	return bookings, err
}
