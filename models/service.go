package models

import "time"

// Service adalah satu layanan laundry di katalog (cuci kiloan, dry clean, dst).
type Service struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Price        int       `gorm:"not null" json:"price"`
	DurationDays int       `gorm:"not null" json:"duration_days"`
	CreatedAt    time.Time `json:"created_at"`
}
