package models

import "time"

// Notification adalah pesan untuk customer terkait satu transaksi.
type Notification struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RecipientID   uint      `gorm:"not null;index" json:"recipient_id"`
	Recipient     User      `gorm:"foreignKey:RecipientID;references:ID" json:"-"`
	TransactionID uint      `gorm:"not null" json:"transaction_id"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	IsRead        bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}
