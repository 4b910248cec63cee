package services

import (
	"testing"
	"time"

	"hotel-backoffice/models"

	"github.com/stretchr/testify/assert"
)

var testTariff = models.RoomType{
	PricePerHour:   100,
	PricePerDay:    1000,
	PriceOvernight: 600,
}

func at(day, hour, min int) time.Time {
	return time.Date(2026, 3, 1+day, hour, min, 0, 0, time.UTC)
}

func TestClassifyStay(t *testing.T) {
	tests := []struct {
		name    string
		in, out time.Time
		tariff  string
		units   int
		amount  float64
	}{
		{
			name:   "classic overnight 22:00 to 09:00",
			in:     at(0, 22, 0),
			out:    at(1, 9, 0),
			tariff: TariffOvernight,
			units:  1,
			amount: 600,
		},
		{
			name:   "overnight upper bound 13 hours",
			in:     at(0, 22, 0),
			out:    at(1, 11, 0),
			tariff: TariffOvernight,
			units:  1,
			amount: 600,
		},
		{
			name:   "overnight lower bound 6 hours",
			in:     at(1, 1, 0),
			out:    at(1, 7, 0),
			tariff: TariffOvernight,
			units:  1,
			amount: 600,
		},
		{
			name:   "under 6 hours in the night window is hourly",
			in:     at(1, 1, 0),
			out:    at(1, 5, 0),
			tariff: TariffHourly,
			units:  4,
			amount: 400,
		},
		{
			name:   "late checkout breaks the night window",
			in:     at(0, 22, 0),
			out:    at(1, 12, 0),
			tariff: TariffDaily,
			units:  1,
			amount: 1000,
		},
		{
			name:   "standard two day stay",
			in:     at(0, 14, 0),
			out:    at(2, 12, 0),
			tariff: TariffDaily,
			units:  2,
			amount: 2000,
		},
		{
			name:   "single day 14:00 to next 12:00",
			in:     at(0, 14, 0),
			out:    at(1, 12, 0),
			tariff: TariffDaily,
			units:  1,
			amount: 1000,
		},
		{
			name:   "short daytime stay is hourly",
			in:     at(0, 13, 0),
			out:    at(0, 16, 0),
			tariff: TariffHourly,
			units:  3,
			amount: 300,
		},
		{
			name:   "partial hour rounds up",
			in:     at(0, 13, 0),
			out:    at(0, 14, 30),
			tariff: TariffHourly,
			units:  2,
			amount: 200,
		},
		{
			name:   "sub-hour stay bills one hour",
			in:     at(0, 13, 0),
			out:    at(0, 13, 20),
			tariff: TariffHourly,
			units:  1,
			amount: 100,
		},
		{
			name:   "daytime check-in 11:00 never overnight",
			in:     at(0, 11, 0),
			out:    at(0, 19, 0),
			tariff: TariffHourly,
			units:  8,
			amount: 800,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyStay(testTariff, tc.in, tc.out)
			assert.Equal(t, tc.tariff, got.Tariff)
			assert.Equal(t, tc.units, got.Units)
			assert.Equal(t, tc.amount, got.Amount)
		})
	}
}

func TestClassifyStayZeroCheckOutUsesNow(t *testing.T) {
	in := time.Now().Add(-2 * time.Hour)
	got := ClassifyStay(testTariff, in, time.Time{})
	assert.Equal(t, TariffHourly, got.Tariff)
	assert.Equal(t, 2, got.Units)
}
