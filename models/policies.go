package models

import (
	"strings"

	"gorm.io/gorm"
)

// Policy per role+operasi untuk query Transaction / User.
// Semua filter read-side dikumpulkan di sini sebagai gorm scope supaya
// tiap controller tidak menulis ulang WHERE-nya sendiri-sendiri.

// CustomerHistory -> riwayat order milik satu customer, terbaru dulu.
func CustomerHistory(customerID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("customer_id = ?", customerID).
			Order("created_at DESC")
	}
}

// AssignmentQueue -> antrian receptionist: Pending dan belum ada staff.
func AssignmentQueue() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? AND laundry_staff_id IS NULL", StatusPending)
	}
}

// StaffJobQueue -> pekerjaan Pending milik satu laundry staff, terbaru dulu.
func StaffJobQueue(staffID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("laundry_staff_id = ? AND status = ?", staffID, StatusPending).
			Order("created_at DESC")
	}
}

// AdminTransactionList -> semua transaksi untuk admin, terbaru dulu.
// Filter status hanya mengenal "Pending" dan "Finished" (case-insensitive),
// nilai lain berarti tanpa filter.
func AdminTransactionList(statusFilter string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case strings.EqualFold(statusFilter, StatusFinished):
			db = db.Where("status = ?", StatusFinished)
		case strings.EqualFold(statusFilter, StatusPending):
			db = db.Where("status = ?", StatusPending)
		}
		return db.Order("created_at DESC")
	}
}

// AssignableStaff -> pool tujuan assignment untuk receptionist.
func AssignableStaff() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("role = ?", RoleLaundryStaff)
	}
}

// EmployeeList -> semua akun non-customer untuk menu admin.
func EmployeeList() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("role IN ?", EmployeeRoles)
	}
}

// RecipientInbox -> notifikasi milik satu customer, terbaru dulu.
func RecipientInbox(recipientID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("recipient_id = ?", recipientID).
			Order("created_at DESC")
	}
}
