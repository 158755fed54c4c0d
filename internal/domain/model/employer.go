package model

import "time"

// Employer is a party hiring helpers through the agency.
type Employer struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	IC              string    `json:"ic"`
	ContactNumber   string    `json:"contact_number"`
	EmailAddress    string    `json:"email_address,omitempty"`
	PhysicalAddress string    `json:"physical_address"`
	CreatedAt       time.Time `json:"-"`
}

// EmployerSnapshot is the copy of employer fields frozen into a contract.
type EmployerSnapshot struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	IC              string `json:"ic"`
	PhysicalAddress string `json:"physical_address"`
	ContactNumber   string `json:"contact_number"`
}

// Snapshot copies the fields a contract keeps about its employer.
func (e Employer) Snapshot() EmployerSnapshot {
	return EmployerSnapshot{
		ID:              e.ID,
		Name:            e.Name,
		IC:              e.IC,
		PhysicalAddress: e.PhysicalAddress,
		ContactNumber:   e.ContactNumber,
	}
}
