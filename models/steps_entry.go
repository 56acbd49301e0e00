package models

import (
	"time"

	"gorm.io/gorm"
)

// StepsEntry is one day of step activity. Date is stored at UTC midnight and
// the composite unique index enforces at most one entry per (user, day);
// writes to an existing day update in place.
type StepsEntry struct {
	gorm.Model
	UserID         uint      `gorm:"uniqueIndex:idx_steps_user_date;not null"`
	Date           time.Time `gorm:"uniqueIndex:idx_steps_user_date;not null"`
	Steps          int       `gorm:"not null"`
	Duration       int       `gorm:"not null"` // minutes
	CaloriesBurned int       `gorm:"not null"` // derived, never client-supplied
}

type StepsResponse struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"userId"`
	Date           string    `json:"date"`
	Steps          int       `json:"steps"`
	Duration       int       `json:"duration"`
	CaloriesBurned int       `json:"caloriesBurned"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (s *StepsEntry) Response() StepsResponse {
	return StepsResponse{
		ID:             s.ID,
		UserID:         s.UserID,
		Date:           s.Date.Format("2006-01-02"),
		Steps:          s.Steps,
		Duration:       s.Duration,
		CaloriesBurned: s.CaloriesBurned,
		CreatedAt:      s.CreatedAt,
	}
}
