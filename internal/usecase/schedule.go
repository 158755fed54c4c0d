package usecase

import (
	"time"

	"github.com/polkiloo/mmtc/internal/domain/model"
)

// DateLayout renders dates as "<day> <Mon> <yyyy>", e.g. "7 Mar 2025".
const DateLayout = "2 Jan 2006"

// FormatDate formats t using DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// GenerateInvoices builds a loan fee schedule of one invoice per month starting
// at start. Month i is start advanced by i calendar months; days missing from
// the target month roll over into the next one (31 Jan + 1 month = 3 Mar).
func GenerateInvoices(start time.Time, months int, amount float64) []model.Invoice {
	if months <= 0 {
		return []model.Invoice{}
	}
	invoices := make([]model.Invoice, 0, months)
	for i := 0; i < months; i++ {
		invoices = append(invoices, model.Invoice{
			Title:  model.LoanFeeTitle,
			Date:   FormatDate(start.AddDate(0, i, 0)),
			Amount: amount,
		})
	}
	return invoices
}
