package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"gorm.io/gorm"
)

// RoomService owns room status and orchestrates check-in, walk-in and
// check-out across bookings and invoices.
type RoomService struct {
	DB       *gorm.DB
	Invoices *InvoiceService
	Bookings *BookingService
}

func NewRoomService(db *gorm.DB, invoices *InvoiceService, bookings *BookingService) *RoomService {
	return &RoomService{DB: db, Invoices: invoices, Bookings: bookings}
}

type CheckInInput struct {
	BookingID  *uint      `json:"bookingId,omitempty"`
	GuestName  string     `json:"guestName,omitempty"`
	GuestPhone string     `json:"guestPhone,omitempty"`
	CheckIn    *time.Time `json:"checkIn,omitempty"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
	Note       string     `json:"note,omitempty"`
}

type WalkInInput struct {
	GuestName  string     `json:"guestName"`
	GuestPhone string     `json:"guestPhone,omitempty"`
	GuestCount int        `json:"guestCount,omitempty"`
	CheckIn    *time.Time `json:"checkIn,omitempty"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
	Note       string     `json:"note,omitempty"`
}

// CheckInResult bundles what a check-in produced.
type CheckInResult struct {
	Room    models.Room    `json:"room"`
	Booking models.Booking `json:"booking,omitempty"`
	Invoice models.Invoice `json:"invoice"`
}

// logRoomStatus commits a room status transition and its append-only log
// entry in one step. Every transition in the codebase goes through here.
func logRoomStatus(tx *gorm.DB, room *models.Room, status string, actorID uint, note string) error {
	prev := room.Status
	if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).Update("status", status).Error; err != nil {
		return err
	}
	entry := models.RoomStatusLog{
		RoomID:         room.ID,
		Status:         status,
		PreviousStatus: prev,
		ChangedByID:    actorID,
		Note:           note,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}
	room.Status = status
	return nil
}

func (s *RoomService) Create(room models.Room) (models.Room, error) {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return room, utils.NewValidation("roomNumber is required")
	}
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	err := s.DB.Create(&room).Error
	return room, err
}

func (s *RoomService) List(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	q := s.DB.Preload("RoomType").Order("room_number")
	if hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	err := q.Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.Preload("RoomType").Preload("Bookings").First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return room, utils.NewNotFound("room")
	}
	return room, err
}

func (s *RoomService) Update(id uint, patch map[string]interface{}) (models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return room, err
	}

	delete(patch, "id")
	delete(patch, "status") // status changes go through UpdateStatus
	delete(patch, "created_at")
	delete(patch, "updated_at")
	delete(patch, "deleted_at")

	if len(patch) > 0 {
		if err := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(patch).Error; err != nil {
			return room, err
		}
	}
	return s.GetByID(id)
}

func (s *RoomService) Delete(id uint) error {
	res := s.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NewNotFound("room")
	}
	return nil
}

// UpdateStatus is the generic manual transition: any known status is
// accepted, and the transition is logged.
func (s *RoomService) UpdateStatus(id uint, status string, actorID uint, note string) (models.Room, error) {
	if !models.ValidRoomStatus(status) {
		return models.Room{}, utils.NewValidation(fmt.Sprintf("unknown room status %q", status))
	}
	var room models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("room")
			}
			return err
		}
		return logRoomStatus(tx, &room, status, actorID, note)
	})
	return room, err
}

// StatusLogs returns the room's transition history, newest first.
func (s *RoomService) StatusLogs(roomID uint) ([]models.RoomStatusLog, error) {
	var logs []models.RoomStatusLog
	err := s.DB.Where("room_id = ?", roomID).Order("id DESC").Find(&logs).Error
	return logs, err
}

// CheckIn performs a reservation-based check-in. The current room status is
// not validated (reservation check-ins are assumed pre-validated); the room
// is moved to CHECKED_IN, the referenced booking (if any) flipped to
// CHECKED_IN, and a ROOM invoice opened with the priced room charge.
func (s *RoomService) CheckIn(roomID uint, in CheckInInput, actorID uint) (CheckInResult, error) {
	var result CheckInResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := loadRoomForStay(tx, roomID)
		if err != nil {
			return err
		}

		guestName := strings.TrimSpace(in.GuestName)
		guestPhone := strings.TrimSpace(in.GuestPhone)
		checkIn, checkOut := in.CheckIn, in.CheckOut

		var booking models.Booking
		if in.BookingID != nil {
			if err := tx.First(&booking, *in.BookingID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.NewNotFound("booking")
				}
				return err
			}
			if err := tx.Model(&booking).Update("status", models.BookingCheckedIn).Error; err != nil {
				return err
			}
			booking.Status = models.BookingCheckedIn
			if guestName == "" {
				guestName = booking.GuestName
			}
			if guestPhone == "" {
				guestPhone = booking.GuestPhone
			}
			if checkIn == nil {
				checkIn = booking.CheckIn
			}
			if checkOut == nil {
				checkOut = booking.CheckOut
			}
		}

		if err := logRoomStatus(tx, &room, models.RoomCheckedIn, actorID, in.Note); err != nil {
			return err
		}

		invoice, err := openStayInvoice(tx, room, in.BookingID, guestName, guestPhone, checkIn, checkOut, actorID)
		if err != nil {
			return err
		}

		result = CheckInResult{Room: room, Booking: booking, Invoice: invoice}
		return nil
	})
	return result, err
}

// WalkIn checks a guest in without a reservation. The room must be
// AVAILABLE; a booking is created directly in CHECKED_IN and the stay is
// billed exactly like a reservation check-in.
func (s *RoomService) WalkIn(roomID uint, in WalkInInput, actorID uint) (CheckInResult, error) {
	if strings.TrimSpace(in.GuestName) == "" {
		return CheckInResult{}, utils.NewValidation("guestName is required")
	}

	var result CheckInResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := loadRoomForStay(tx, roomID)
		if err != nil {
			return err
		}
		if room.Status != models.RoomAvailable {
			return utils.NewConflict(fmt.Sprintf("room %s is %s, walk-in check-in requires an AVAILABLE room", room.RoomNumber, room.Status))
		}

		checkIn := in.CheckIn
		if checkIn == nil {
			now := time.Now()
			checkIn = &now
		}
		guestCount := in.GuestCount
		if guestCount < 1 {
			guestCount = 1
		}

		booking := models.Booking{
			HotelID:     room.HotelID,
			RoomID:      room.ID,
			GuestName:   strings.TrimSpace(in.GuestName),
			GuestPhone:  strings.TrimSpace(in.GuestPhone),
			GuestCount:  guestCount,
			Status:      models.BookingCheckedIn,
			CheckIn:     checkIn,
			CheckOut:    in.CheckOut,
			Note:        in.Note,
			CreatedByID: actorID,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if err := logRoomStatus(tx, &room, models.RoomCheckedIn, actorID, "walk-in check-in"); err != nil {
			return err
		}

		invoice, err := openStayInvoice(tx, room, &booking.ID, booking.GuestName, booking.GuestPhone, booking.CheckIn, booking.CheckOut, actorID)
		if err != nil {
			return err
		}

		result = CheckInResult{Room: room, Booking: booking, Invoice: invoice}
		return nil
	})
	return result, err
}

// CheckOut moves a CHECKED_IN room back to AVAILABLE, then settles the
// room's OPEN invoice and flips its booking to CHECKED_OUT. Billing is
// best-effort: the room transition stands even when invoice checkout fails.
func (s *RoomService) CheckOut(roomID uint, rawPayment string, actorID uint) (models.Room, error) {
	var room models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("room")
			}
			return err
		}
		if room.Status != models.RoomCheckedIn {
			return utils.NewConflict(fmt.Sprintf("room %s is %s, check-out requires CHECKED_IN", room.RoomNumber, room.Status))
		}
		return logRoomStatus(tx, &room, models.RoomAvailable, actorID, "check-out")
	})
	if err != nil {
		return room, err
	}

	invoice, err := s.Invoices.FindOpenRoomInvoice(roomID)
	if err != nil {
		log.Printf("warning: check-out of room %d: no open room invoice to settle: %v", roomID, err)
		return room, nil
	}
	if _, err := s.Invoices.Checkout(invoice.ID, rawPayment, actorID); err != nil {
		log.Printf("warning: check-out of room %d: invoice %s checkout failed: %v", roomID, invoice.Code, err)
		return room, nil
	}
	if invoice.BookingID != nil {
		if err := s.DB.Model(&models.Booking{}).Where("id = ?", *invoice.BookingID).
			Update("status", models.BookingCheckedOut).Error; err != nil {
			log.Printf("warning: check-out of room %d: booking %d status update failed: %v", roomID, *invoice.BookingID, err)
		}
	}
	return room, nil
}

// loadRoomForStay loads a room with its tariff catalog; stays cannot be
// priced without a room type.
func loadRoomForStay(tx *gorm.DB, roomID uint) (models.Room, error) {
	var room models.Room
	if err := tx.Preload("RoomType").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, utils.NewNotFound("room")
		}
		return room, err
	}
	if room.RoomTypeID == nil {
		return room, utils.NewValidation(fmt.Sprintf("room %s has no room type, cannot price the stay", room.RoomNumber))
	}
	return room, nil
}

// openStayInvoice creates the ROOM invoice for a stay with its single
// priced room-charge line. At most one OPEN ROOM invoice may exist per room,
// enforced here before creation.
func openStayInvoice(tx *gorm.DB, room models.Room, bookingID *uint, guestName, guestPhone string, checkIn, checkOut *time.Time, actorID uint) (models.Invoice, error) {
	if _, err := findOpenRoomInvoice(tx, room.ID); err == nil {
		return models.Invoice{}, utils.NewConflict(fmt.Sprintf("room %s already has an open room invoice", room.RoomNumber))
	} else if !utils.IsAppError(err) {
		return models.Invoice{}, err
	}

	code, err := NextCode(tx, room.HotelID, invoiceCodePrefix, invoiceCodeWidth)
	if err != nil {
		return models.Invoice{}, err
	}

	ci := time.Now()
	if checkIn != nil {
		ci = *checkIn
	}
	var co time.Time
	if checkOut != nil {
		co = *checkOut
	}

	roomID := room.ID
	invoice := models.Invoice{
		HotelID:       room.HotelID,
		Code:          code,
		InvoiceType:   models.InvoiceTypeRoom,
		RoomID:        &roomID,
		BookingID:     bookingID,
		CustomerName:  guestName,
		CustomerPhone: guestPhone,
		CheckIn:       &ci,
		CheckOut:      checkOut,
		Status:        models.InvoiceOpen,
		CreatedByID:   actorID,
		UpdatedByID:   actorID,
	}
	if err := tx.Create(&invoice).Error; err != nil {
		return invoice, err
	}

	charge := ClassifyStay(room.RoomType, ci, co)
	line := models.InvoiceItem{
		InvoiceID: invoice.ID,
		Name:      fmt.Sprintf("Room %s (%s)", room.RoomNumber, room.RoomType.TypeName),
		Type:      models.LineTypeService,
		ItemType:  models.ItemTypeRoom,
		Quantity:  charge.Units,
		Price:     charge.UnitPrice,
		Amount:    charge.Amount,
		Note:      charge.Tariff,
	}
	if err := tx.Create(&line).Error; err != nil {
		return invoice, err
	}

	invoice.Items = []models.InvoiceItem{line}
	invoice.TotalAmount = charge.Amount
	invoice.FinalAmount = charge.Amount - invoice.Discount
	if err := tx.Model(&invoice).Updates(map[string]interface{}{
		"total_amount": invoice.TotalAmount,
		"final_amount": invoice.FinalAmount,
	}).Error; err != nil {
		return invoice, err
	}
	return invoice, nil
}
