package model

import "time"

// LoanFeeTitle labels every invoice of the default schedule.
const LoanFeeTitle = "Loan Fee"

// Invoice is a single dated line of a loan fee schedule.
type Invoice struct {
	Title  string  `json:"title"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// Contract binds an employer and a helper at a point in time.
// It is never updated after creation.
type Contract struct {
	ID              string           `json:"id"`
	Employer        EmployerSnapshot `json:"employer"`
	Helper          HelperSnapshot   `json:"helper"`
	StartDate       string           `json:"startDate"`
	LoanFeeSchedule []Invoice        `json:"loanFee"`
	CreatedAt       time.Time        `json:"-"`
}
