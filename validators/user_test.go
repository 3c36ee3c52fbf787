package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/govlash-laundry/models"
	"github.com/yeremiapane/govlash-laundry/utils"
)

// fakeDirectory meniru pengecekan keunikan tanpa database.
type fakeDirectory struct {
	usernames map[string]bool
	emails    map[string]bool
}

func (f *fakeDirectory) UsernameExists(username string) (bool, error) {
	return f.usernames[username], nil
}

func (f *fakeDirectory) EmailExists(email string) (bool, error) {
	return f.emails[email], nil
}

func emptyDirectory() *fakeDirectory {
	return &fakeDirectory{usernames: map[string]bool{}, emails: map[string]bool{}}
}

func validCustomerInput() RegistrationInput {
	return RegistrationInput{
		Username:        "budi",
		Email:           "budi@email.com",
		Password:        "rahasia123",
		ConfirmPassword: "rahasia123",
		Gender:          "Male",
		DOB:             "2000-05-17",
	}
}

func validEmployeeInput() RegistrationInput {
	return RegistrationInput{
		Username:        "sari",
		Email:           "sari@govlash.com",
		Password:        "rahasia123",
		ConfirmPassword: "rahasia123",
		Gender:          "Female",
		DOB:             "1998-01-20",
		Role:            "Receptionist",
	}
}

func TestValidateRegistrationEmptyFields(t *testing.T) {
	in := validCustomerInput()
	in.Gender = ""
	_, err := ValidateRegistration(in, emptyDirectory())
	assert.EqualError(t, err, "All fields must be filled.")
}

func TestValidateRegistrationUsernameTaken(t *testing.T) {
	dir := emptyDirectory()
	dir.usernames["budi"] = true

	_, err := ValidateRegistration(validCustomerInput(), dir)
	assert.EqualError(t, err, "Username already exists.")

	// Keunikan username tidak peduli email
	var uniquenessErr *utils.UniquenessError
	assert.ErrorAs(t, err, &uniquenessErr)
}

func TestValidateRegistrationEmailSuffix(t *testing.T) {
	in := validCustomerInput()
	in.Email = "budi@gmail.com"
	_, err := ValidateRegistration(in, emptyDirectory())
	assert.EqualError(t, err, "Email must end with @email.com")

	// Domain employee tidak berlaku untuk customer
	in.Email = "budi@govlash.com"
	_, err = ValidateRegistration(in, emptyDirectory())
	assert.EqualError(t, err, "Email must end with @email.com")
}

func TestValidateRegistrationEmailTaken(t *testing.T) {
	dir := emptyDirectory()
	dir.emails["budi@email.com"] = true

	_, err := ValidateRegistration(validCustomerInput(), dir)
	assert.EqualError(t, err, "Email already exists.")
}

func TestValidateRegistrationPasswordRules(t *testing.T) {
	in := validCustomerInput()
	in.Password = "abc12"
	in.ConfirmPassword = "abc12"
	_, err := ValidateRegistration(in, emptyDirectory())
	assert.EqualError(t, err, "Password must be at least 6 characters long.")

	in = validCustomerInput()
	in.ConfirmPassword = "beda123"
	_, err = ValidateRegistration(in, emptyDirectory())
	assert.EqualError(t, err, "Passwords do not match.")
}

func TestValidateRegistrationAgeBoundary(t *testing.T) {
	// Tepat 12 tahun hari ini -> diterima
	in := validCustomerInput()
	in.DOB = time.Now().AddDate(-12, 0, 0).Format("2006-01-02")
	dob, err := ValidateRegistration(in, emptyDirectory())
	assert.NoError(t, err)
	assert.Equal(t, in.DOB, dob.Format("2006-01-02"))

	// Sehari kurang dari 12 tahun -> ditolak
	in.DOB = time.Now().AddDate(-12, 0, 1).Format("2006-01-02")
	_, err = ValidateRegistration(in, emptyDirectory())
	assert.EqualError(t, err, "You must be at least 12 years old.")
}

func TestValidateRegistrationBadDOB(t *testing.T) {
	in := validCustomerInput()
	in.DOB = "17-05-2000"
	_, err := ValidateRegistration(in, emptyDirectory())
	assert.EqualError(t, err, "Invalid date of birth format.")
}

func TestValidateEmployeeEmptyAndRole(t *testing.T) {
	in := validEmployeeInput()
	in.Role = ""
	_, _, err := ValidateEmployee(in, emptyDirectory())
	assert.EqualError(t, err, "All fields must be filled.")

	in = validEmployeeInput()
	in.Role = "Manager"
	_, _, err = ValidateEmployee(in, emptyDirectory())
	assert.EqualError(t, err, "Invalid employee role.")

	// Customer bukan role employee
	in.Role = "Customer"
	_, _, err = ValidateEmployee(in, emptyDirectory())
	assert.EqualError(t, err, "Invalid employee role.")
}

func TestValidateEmployeeEmailSuffix(t *testing.T) {
	in := validEmployeeInput()
	in.Email = "sari@email.com"
	_, _, err := ValidateEmployee(in, emptyDirectory())
	assert.EqualError(t, err, "Email must end with '@govlash.com'.")
}

func TestValidateEmployeeAgeBoundary(t *testing.T) {
	// Tepat 17 tahun hari ini -> diterima
	in := validEmployeeInput()
	in.DOB = time.Now().AddDate(-17, 0, 0).Format("2006-01-02")
	role, _, err := ValidateEmployee(in, emptyDirectory())
	assert.NoError(t, err)
	assert.Equal(t, models.RoleReceptionist, role)

	// Sehari kurang dari 17 tahun -> ditolak
	in.DOB = time.Now().AddDate(-17, 0, 1).Format("2006-01-02")
	_, _, err = ValidateEmployee(in, emptyDirectory())
	assert.EqualError(t, err, "Employees must be at least 17 years old.")
}

func TestAgeOnCalendarAware(t *testing.T) {
	dob := time.Date(2010, time.June, 15, 0, 0, 0, 0, time.UTC)

	// Sehari sebelum ulang tahun ke-12
	assert.Equal(t, 11, AgeOn(dob, time.Date(2022, time.June, 14, 0, 0, 0, 0, time.UTC)))
	// Tepat di hari ulang tahun ke-12
	assert.Equal(t, 12, AgeOn(dob, time.Date(2022, time.June, 15, 0, 0, 0, 0, time.UTC)))
	// Bulan sebelumnya di tahun yang sama
	assert.Equal(t, 11, AgeOn(dob, time.Date(2022, time.May, 20, 0, 0, 0, 0, time.UTC)))
}
