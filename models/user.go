package models

import "time"

// Role adalah set tetap peran user. Dipakai sebagai tipe sendiri supaya
// pengecekan role di-switch secara eksplisit, bukan dibandingkan string lepas.
type Role string

const (
	RoleCustomer     Role = "Customer"
	RoleAdmin        Role = "Admin"
	RoleLaundryStaff Role = "LaundryStaff"
	RoleReceptionist Role = "Receptionist"
)

// ParseRole memvalidasi string role dari input / token.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer:
		return RoleCustomer, true
	case RoleAdmin:
		return RoleAdmin, true
	case RoleLaundryStaff:
		return RoleLaundryStaff, true
	case RoleReceptionist:
		return RoleReceptionist, true
	default:
		return "", false
	}
}

// EmployeeRoles adalah role yang dibuat lewat menu admin (bukan self-register).
var EmployeeRoles = []Role{RoleAdmin, RoleLaundryStaff, RoleReceptionist}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(255);unique;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Gender    string    `gorm:"type:varchar(20);not null" json:"gender"`
	DOB       time.Time `gorm:"not null" json:"dob"`
	Role      Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
