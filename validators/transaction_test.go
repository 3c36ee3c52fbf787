package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransactionWeightParsing(t *testing.T) {
	_, err := ValidateTransaction("sepuluh", "")
	assert.EqualError(t, err, "Weight must be a valid number.")

	_, err = ValidateTransaction("", "")
	assert.EqualError(t, err, "Weight must be a valid number.")
}

func TestValidateTransactionWeightBoundary(t *testing.T) {
	_, err := ValidateTransaction("1.999", "")
	assert.EqualError(t, err, "Weight must be between 2 and 50kg.")

	weight, err := ValidateTransaction("2.0", "")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, weight)

	weight, err = ValidateTransaction("50.0", "")
	assert.NoError(t, err)
	assert.Equal(t, 50.0, weight)

	_, err = ValidateTransaction("50.01", "")
	assert.EqualError(t, err, "Weight must be between 2 and 50kg.")
}

func TestValidateTransactionNotesLength(t *testing.T) {
	// Notes boleh kosong
	_, err := ValidateTransaction("10.5", "")
	assert.NoError(t, err)

	_, err = ValidateTransaction("10.5", strings.Repeat("a", 250))
	assert.NoError(t, err)

	_, err = ValidateTransaction("10.5", strings.Repeat("a", 251))
	assert.EqualError(t, err, "Notes cannot exceed 250 characters.")
}
