package models

import "time"

// RoomStatusLog is append-only: one row per room status transition, never
// updated or deleted.
type RoomStatusLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RoomID         uint      `gorm:"index;column:room_id" json:"roomId"`
	Status         string    `gorm:"size:32" json:"status"`
	PreviousStatus string    `gorm:"size:32;column:previous_status" json:"previousStatus"`
	ChangedByID    uint      `gorm:"column:changed_by_id" json:"changedById"`
	Note           string    `gorm:"type:text" json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
