// Package validators berisi aturan validasi input murni.
// Setiap fungsi mengembalikan nilai yang sudah di-parse atau error dengan
// pesan siap tampil; aturan dievaluasi berurutan dan berhenti di
// kegagalan pertama.
package validators

import (
	"strconv"

	"github.com/yeremiapane/govlash-laundry/utils"
)

const (
	minServiceDuration = 1
	maxServiceDuration = 30
)

// ValidateService memeriksa input pembuatan layanan baru.
// Price dan duration datang sebagai string mentah dari form.
func ValidateService(name, description, priceStr, durationStr string) (price int, duration int, err error) {
	if name == "" || description == "" {
		return 0, 0, utils.NewValidationError("Fields cannot be empty")
	}

	price, perr := strconv.Atoi(priceStr)
	duration, derr := strconv.Atoi(durationStr)
	if perr != nil || derr != nil {
		return 0, 0, utils.NewValidationError("Price and Duration must be numbers")
	}

	if price <= 0 {
		return 0, 0, utils.NewValidationError("Price must be > 0")
	}
	if duration < minServiceDuration || duration > maxServiceDuration {
		return 0, 0, utils.NewValidationError("Duration must be 1-30 days")
	}

	return price, duration, nil
}
