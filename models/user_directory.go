package models

import (
	"gorm.io/gorm"

	"github.com/yeremiapane/govlash-laundry/utils"
)

// UserDirectory menjawab pengecekan keunikan username / email untuk validator.
// Pengecekan dilakukan terhadap seluruh user apa pun role-nya, saat validasi
// berjalan (tidak ada cache, tidak dicek ulang saat insert).
type UserDirectory struct {
	DB *gorm.DB
}

func NewUserDirectory(db *gorm.DB) *UserDirectory {
	return &UserDirectory{DB: db}
}

func (d *UserDirectory) UsernameExists(username string) (bool, error) {
	var count int64
	if err := d.DB.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, utils.NewStoreError(err)
	}
	return count > 0, nil
}

func (d *UserDirectory) EmailExists(email string) (bool, error) {
	var count int64
	if err := d.DB.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, utils.NewStoreError(err)
	}
	return count > 0, nil
}
