package models

// CodeCounter backs the per-hotel sequential document codes (HD######,
// SP#####, KK######). Incremented atomically so concurrent creates never
// produce duplicate codes.
type CodeCounter struct {
	ID      uint   `gorm:"primaryKey"`
	HotelID uint   `gorm:"uniqueIndex:idx_code_counters_hotel_prefix"`
	Prefix  string `gorm:"size:8;uniqueIndex:idx_code_counters_hotel_prefix"`
	Seq     int64
}
