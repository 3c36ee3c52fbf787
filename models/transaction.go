package models

import (
	"time"

	"github.com/yeremiapane/govlash-laundry/utils"
)

const (
	StatusPending  = "Pending"
	StatusFinished = "Finished"
)

// Transaction adalah satu order laundry.
// Status hanya bergerak Pending -> Finished, tidak ada jalan balik.
// ReceptionistID dan LaundryStaffID selalu diisi berpasangan saat assignment.
type Transaction struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ServiceID      uint      `gorm:"not null" json:"service_id"`
	Service        Service   `gorm:"foreignKey:ServiceID;references:ID" json:"service"`
	CustomerID     uint      `gorm:"not null" json:"customer_id"`
	Customer       User      `gorm:"foreignKey:CustomerID;references:ID" json:"customer"`
	ReceptionistID *uint     `gorm:"index" json:"receptionist_id,omitempty"`
	LaundryStaffID *uint     `gorm:"index" json:"laundry_staff_id,omitempty"`
	Status         string    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	Weight         float64   `gorm:"type:decimal(5,2);not null" json:"weight"`
	Notes          string    `gorm:"type:varchar(250)" json:"notes"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

// IsAssigned -> true kalau transaksi sudah dipegang laundry staff.
func (t *Transaction) IsAssigned() bool {
	return t.LaundryStaffID != nil
}

// Assign memasangkan staff dan receptionist ke transaksi sekaligus.
// Hanya boleh pada transaksi Pending yang belum dipegang siapa pun.
func (t *Transaction) Assign(staffID, receptionistID uint) error {
	if t.Status != StatusPending {
		return utils.NewValidationError("Only pending transactions can be assigned.")
	}
	if t.IsAssigned() {
		return utils.NewValidationError("Transaction is already assigned.")
	}

	t.LaundryStaffID = &staffID
	t.ReceptionistID = &receptionistID
	return nil
}

// Finish menandai order selesai. Finished adalah status terminal;
// memanggil Finish pada transaksi yang sudah selesai tidak mengubah apa pun.
func (t *Transaction) Finish() error {
	if t.Status == StatusFinished {
		return nil
	}
	if t.Status != StatusPending {
		return utils.NewValidationError("Only pending transactions can be finished.")
	}

	t.Status = StatusFinished
	return nil
}
