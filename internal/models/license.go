package models

import "time"

// LicenseRecord is one row of the authoritative license registry in the shape
// the reconciliation engine compares against. All fields are kept as strings
// exactly as the source system persists them; normalization happens at
// comparison time, never in storage.
type LicenseRecord struct {
	FullName        string `json:"full_name"`
	DateOfBirth     string `json:"date_of_birth"`
	LicenseNumber   string `json:"license_number"`
	Gender          string `json:"gender"`
	ValidUntil      string `json:"valid_until"`
	FieldOfPractice string `json:"field_of_practice"`
}

// ReferenceLicense is the Postgres-backed form of a registry row, populated by
// the HR bulk-upload endpoint and loaded into the in-memory store at startup.
type ReferenceLicense struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FullName        string    `gorm:"not null" json:"full_name"`
	DateOfBirth     string    `json:"date_of_birth"`
	LicenseNumber   string    `gorm:"uniqueIndex;not null" json:"license_number"`
	Gender          string    `json:"gender"`
	ValidUntil      string    `json:"valid_until"`
	FieldOfPractice string    `json:"field_of_practice"`
	CreatedAt       time.Time `json:"created_at"`
}

// Record converts a stored row into the comparable registry shape.
func (r ReferenceLicense) Record() LicenseRecord {
	return LicenseRecord{
		FullName:        r.FullName,
		DateOfBirth:     r.DateOfBirth,
		LicenseNumber:   r.LicenseNumber,
		Gender:          r.Gender,
		ValidUntil:      r.ValidUntil,
		FieldOfPractice: r.FieldOfPractice,
	}
}
