package validators

import (
	"strings"
	"time"

	"github.com/yeremiapane/govlash-laundry/models"
	"github.com/yeremiapane/govlash-laundry/utils"
)

const (
	customerEmailSuffix = "@email.com"
	employeeEmailSuffix = "@govlash.com"

	minPasswordLength = 6
	minCustomerAge    = 12
	minEmployeeAge    = 17

	dobLayout = "2006-01-02"
)

// UserDirectory menyediakan pengecekan keunikan terhadap user yang sudah ada.
// Diinjeksikan supaya paket ini tetap bebas dari persistence.
type UserDirectory interface {
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
}

// RegistrationInput membawa field mentah dari form register / tambah employee.
type RegistrationInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Gender          string
	DOB             string
	Role            string
}

// ValidateRegistration menjalankan rantai aturan untuk registrasi customer.
// Mengembalikan tanggal lahir yang sudah di-parse jika semua aturan lolos.
func ValidateRegistration(in RegistrationInput, dir UserDirectory) (time.Time, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.Gender == "" || in.DOB == "" {
		return time.Time{}, utils.NewValidationError("All fields must be filled.")
	}

	return validateAccount(in, dir,
		customerEmailSuffix, "Email must end with @email.com",
		minCustomerAge, "You must be at least 12 years old.")
}

// ValidateEmployee menjalankan rantai aturan untuk penambahan employee oleh
// admin: sama dengan registrasi, plus role wajib, domain email kantor, dan
// umur minimal 17.
func ValidateEmployee(in RegistrationInput, dir UserDirectory) (models.Role, time.Time, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.Gender == "" || in.DOB == "" || in.Role == "" {
		return "", time.Time{}, utils.NewValidationError("All fields must be filled.")
	}

	role, ok := models.ParseRole(in.Role)
	if !ok || role == models.RoleCustomer {
		return "", time.Time{}, utils.NewValidationError("Invalid employee role.")
	}

	dob, err := validateAccount(in, dir,
		employeeEmailSuffix, "Email must end with '@govlash.com'.",
		minEmployeeAge, "Employees must be at least 17 years old.")
	if err != nil {
		return "", time.Time{}, err
	}

	return role, dob, nil
}

// validateAccount adalah bagian rantai yang sama untuk customer dan employee.
// Urutan aturan mengikuti alur form: username unik -> format email ->
// email unik -> panjang password -> konfirmasi password -> umur.
func validateAccount(in RegistrationInput, dir UserDirectory,
	emailSuffix, emailMessage string, minAge int, ageMessage string) (time.Time, error) {

	taken, err := dir.UsernameExists(in.Username)
	if err != nil {
		return time.Time{}, err
	}
	if taken {
		return time.Time{}, utils.NewUniquenessError("Username already exists.")
	}

	if !strings.HasSuffix(in.Email, emailSuffix) {
		return time.Time{}, utils.NewValidationError(emailMessage)
	}

	taken, err = dir.EmailExists(in.Email)
	if err != nil {
		return time.Time{}, err
	}
	if taken {
		return time.Time{}, utils.NewUniquenessError("Email already exists.")
	}

	if len(in.Password) < minPasswordLength {
		return time.Time{}, utils.NewValidationError("Password must be at least 6 characters long.")
	}

	if in.Password != in.ConfirmPassword {
		return time.Time{}, utils.NewValidationError("Passwords do not match.")
	}

	dob, err := time.Parse(dobLayout, in.DOB)
	if err != nil {
		return time.Time{}, utils.NewValidationError("Invalid date of birth format.")
	}

	if AgeOn(dob, time.Now()) < minAge {
		return time.Time{}, utils.NewValidationError(ageMessage)
	}

	return dob, nil
}

// AgeOn menghitung umur dalam tahun kalender penuh pada tanggal tertentu.
func AgeOn(dob, on time.Time) int {
	age := on.Year() - dob.Year()
	if on.Month() < dob.Month() || (on.Month() == dob.Month() && on.Day() < dob.Day()) {
		age--
	}
	return age
}
