package services

import (
	"math"
	"time"

	"hotel-backoffice/models"
)

// Tariff classes for a stay.
const (
	TariffHourly    = "HOURLY"
	TariffDaily     = "DAILY"
	TariffOvernight = "OVERNIGHT"
)

// StayCharge is the priced result of classifying a stay.
type StayCharge struct {
	Tariff    string  `json:"tariff"`
	Units     int     `json:"units"`     // billed hours, days, or 1 for overnight
	UnitPrice float64 `json:"unitPrice"`
	Amount    float64 `json:"amount"`
}

// ClassifyStay prices a stay as hourly, daily or overnight against a room
// type's tariff catalog.
//
// A stay is overnight when it both starts and ends in the night window
// (22:00–11:00) and uses 6–13 hours; it is daily when it spans at least one
// calendar day, or fits the 14:00-in / 12:00-out pattern within 12–22 hours.
// Everything else is hourly. A zero checkOut means "now".
func ClassifyStay(roomType models.RoomType, checkIn, checkOut time.Time) StayCharge {
	if checkOut.IsZero() {
		checkOut = time.Now()
	}

	hoursUsed := int(math.Ceil(checkOut.Sub(checkIn).Hours()))

	inDay := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, checkIn.Location())
	outDay := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, checkOut.Location())
	daysBetween := int(outDay.Sub(inDay).Hours() / 24)

	inHour := checkIn.Hour()
	outHour := checkOut.Hour()

	nightIn := inHour >= 22 || inHour < 11
	nightOut := outHour >= 22 || outHour <= 11

	if nightIn && nightOut && hoursUsed >= 6 && hoursUsed <= 13 {
		return StayCharge{
			Tariff:    TariffOvernight,
			Units:     1,
			UnitPrice: roomType.PriceOvernight,
			Amount:    roomType.PriceOvernight,
		}
	}

	lateCheckoutDay := inHour >= 14 && outHour <= 12 && hoursUsed >= 12 && hoursUsed <= 22
	if daysBetween >= 1 || lateCheckoutDay {
		days := daysBetween
		if days < 1 {
			days = 1
		}
		return StayCharge{
			Tariff:    TariffDaily,
			Units:     days,
			UnitPrice: roomType.PricePerDay,
			Amount:    roomType.PricePerDay * float64(days),
		}
	}

	hours := hoursUsed
	if hours < 1 {
		hours = 1
	}
	return StayCharge{
		Tariff:    TariffHourly,
		Units:     hours,
		UnitPrice: roomType.PricePerHour,
		Amount:    roomType.PricePerHour * float64(hours),
	}
}
