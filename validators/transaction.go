package validators

import (
	"strconv"
	"unicode/utf8"

	"github.com/yeremiapane/govlash-laundry/utils"
)

const (
	minWeightKg = 2.0
	maxWeightKg = 50.0
	maxNotesLen = 250
)

// ValidateTransaction memeriksa input pembuatan order laundry.
// Weight datang sebagai string mentah; notes boleh kosong.
func ValidateTransaction(weightStr, notes string) (float64, error) {
	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil {
		return 0, utils.NewValidationError("Weight must be a valid number.")
	}

	if weight < minWeightKg || weight > maxWeightKg {
		return 0, utils.NewValidationError("Weight must be between 2 and 50kg.")
	}

	if utf8.RuneCountInString(notes) > maxNotesLen {
		return 0, utils.NewValidationError("Notes cannot exceed 250 characters.")
	}

	return weight, nil
}
