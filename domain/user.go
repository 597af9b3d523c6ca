package domain

import "time"

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type InsuranceInfo struct {
	Provider     string `json:"provider"`
	PolicyNumber string `json:"policy_number"`
	GroupNumber  string `json:"group_number"`
}

// User is the backing account record. Password holds a bcrypt hash and is
// never serialized into responses; callers hand out Profile projections.
type User struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	Password      string         `json:"password,omitempty"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Phone         *string        `json:"phone"`
	DateOfBirth   *string        `json:"date_of_birth"`
	Address       *Address       `json:"address"`
	InsuranceInfo *InsuranceInfo `json:"insurance_info"`
	IsActive      bool           `json:"is_active"`
	EmailVerified bool           `json:"email_verified"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Profile is the redacted user projection persisted for the session and
// returned to callers.
type Profile struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Phone         *string        `json:"phone"`
	DateOfBirth   *string        `json:"date_of_birth"`
	Address       *Address       `json:"address"`
	InsuranceInfo *InsuranceInfo `json:"insurance_info"`
	EmailVerified bool           `json:"email_verified"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Profile strips credential and account-state fields from the user record.
func (u User) Profile() Profile {
	return Profile{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		DateOfBirth:   u.DateOfBirth,
		Address:       u.Address,
		InsuranceInfo: u.InsuranceInfo,
		EmailVerified: u.EmailVerified,
		UpdatedAt:     u.UpdatedAt,
	}
}
