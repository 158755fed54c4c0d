package dto

import "github.com/polkiloo/mmtc/internal/domain/model"

// ContractRequest names the parties by case-insensitive name fragments.
type ContractRequest struct {
	EmployerName string `json:"employerName" binding:"required"`
	HelperName   string `json:"helperName" binding:"required"`
}

type ContractsResponse struct {
	Contracts []model.Contract `json:"contracts"`
}
