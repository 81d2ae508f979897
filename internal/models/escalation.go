package models

import "time"

// Escalation is one appended entry of the HR issue log. Rows are never
// updated by this service; HR works the queue elsewhere.
type Escalation struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Date             string    `gorm:"not null" json:"date"`
	EmployeeName     string    `gorm:"not null" json:"employee_name"`
	IssueDescription string    `gorm:"not null" json:"issue_description"`
	Status           string    `gorm:"default:Open" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
