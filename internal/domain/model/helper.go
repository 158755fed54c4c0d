package model

import "time"

// Helper is a worker placed with employers.
type Helper struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DOB         string    `json:"DOB"`
	Age         int       `json:"age,omitempty"`
	EthnicGroup string    `json:"ethicGroup"`
	Nationality string    `json:"Nationality"`
	Skills      []string  `json:"Skills"`
	CreatedAt   time.Time `json:"-"`
}

// HelperSnapshot is the copy of helper fields frozen into a contract.
type HelperSnapshot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h Helper) Snapshot() HelperSnapshot {
	return HelperSnapshot{ID: h.ID, Name: h.Name}
}
