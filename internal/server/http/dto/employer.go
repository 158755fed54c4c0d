package dto

import "github.com/polkiloo/mmtc/internal/domain/model"

// EmployerRequest is the create/update payload. The contact number arrives
// as phone_number and is served back as contact_number.
type EmployerRequest struct {
	Name            string `json:"name" binding:"required"`
	IC              string `json:"ic" binding:"required"`
	PhoneNumber     string `json:"phone_number" binding:"required"`
	EmailAddress    string `json:"email_address"`
	PhysicalAddress string `json:"physical_address" binding:"required"`
}

func (r EmployerRequest) ToModel() model.Employer {
	return model.Employer{
		Name:            r.Name,
		IC:              r.IC,
		ContactNumber:   r.PhoneNumber,
		EmailAddress:    r.EmailAddress,
		PhysicalAddress: r.PhysicalAddress,
	}
}

type EmployersResponse struct {
	Employers []model.Employer `json:"employers"`
}
